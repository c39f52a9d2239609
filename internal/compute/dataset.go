package compute

import (
	"runtime"
	"time"
)

// DefaultChunkSize — размер чанка по умолчанию
const DefaultChunkSize = 1000

// Через сколько чанков уступаем планировщику
const chunksPerYield = 5

// DatasetPayload представляет собой полезную нагрузку задачи PROCESS_LARGE_DATASET.
// Элементы — произвольные JSON-объекты, неизвестные поля сохраняются.
type DatasetPayload struct {
	Items     []map[string]any `json:"items"`
	ChunkSize int              `json:"chunkSize"`
}

// ProcessLargeDataset обрабатывает элементы чанками фиксированного размера.
// Каждый выходной элемент — копия входного с добавленными полями
// processed=true и timestamp (epoch millis). Порядок и длина сохраняются.
// После каждого пятого чанка поток уступает управление планировщику,
// чтобы большие наборы данных не монополизировали воркер.
func ProcessLargeDataset(payload DatasetPayload) []map[string]any {
	chunkSize := payload.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	processed := make([]map[string]any, 0, len(payload.Items))
	chunkCount := 0

	for start := 0; start < len(payload.Items); start += chunkSize {
		end := start + chunkSize
		if end > len(payload.Items) {
			end = len(payload.Items)
		}

		for _, item := range payload.Items[start:end] {
			out := make(map[string]any, len(item)+2)
			for k, v := range item {
				out[k] = v
			}
			out["processed"] = true
			out["timestamp"] = time.Now().UnixMilli()
			processed = append(processed, out)
		}

		chunkCount++
		if chunkCount%chunksPerYield == 0 {
			runtime.Gosched()
		}
	}

	return processed
}
