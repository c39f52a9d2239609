package compute

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Dispatcher маршрутизирует задачи к обработчикам через реестр.
// Любой сбой обработчика превращается в сообщение об ошибке:
// диспетчер никогда не роняет цикл обработки задач.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher создает диспетчер поверх реестра обработчиков
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch выполняет одну задачу и возвращает ровно одно сообщение
// с результатом. Неизвестный тип задачи и любые ошибки обработчика
// (включая панику) приходят в едином конверте ERROR.
func (d *Dispatcher) Dispatch(task TaskMessage) (result ResultMessage) {
	defer func() {
		if r := recover(); r != nil {
			result = ErrorResult(fmt.Sprintf("task handler panic: %v", r))
		}
	}()

	handler, err := d.registry.Resolve(task.Type)
	if err != nil {
		if errors.Is(err, ErrUnknownTaskType) {
			return ErrorResult("Unknown task type")
		}
		return ErrorResult(err.Error())
	}

	result, err = handler(task.Data)
	if err != nil {
		return ErrorResult(err.Error())
	}
	return result
}

// handleProcessLargeDataset разбирает полезную нагрузку и запускает
// чанковую обработку набора данных
func handleProcessLargeDataset(data json.RawMessage) (ResultMessage, error) {
	var payload DatasetPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ResultMessage{}, fmt.Errorf("invalid dataset payload: %w", err)
	}
	return ResultMessage{
		Type: ResultDatasetProcessed,
		Data: ProcessLargeDataset(payload),
	}, nil
}

// handleOptimizeImages разбирает полезную нагрузку и считает планы
// оптимизации изображений
func handleOptimizeImages(data json.RawMessage) (ResultMessage, error) {
	var payload ImagesPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ResultMessage{}, fmt.Errorf("invalid images payload: %w", err)
	}
	return ResultMessage{
		Type: ResultImagesOptimized,
		Data: OptimizeImages(payload),
	}, nil
}

// handleCalculateAnalytics разбирает полезную нагрузку и считает аналитику
func handleCalculateAnalytics(data json.RawMessage) (ResultMessage, error) {
	var payload AnalyticsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ResultMessage{}, fmt.Errorf("invalid analytics payload: %w", err)
	}
	return ResultMessage{
		Type: ResultAnalyticsCalculated,
		Data: CalculateAnalytics(payload),
	}, nil
}

// handleSearchProducts разбирает полезную нагрузку и выполняет поиск
func handleSearchProducts(data json.RawMessage) (ResultMessage, error) {
	var payload SearchPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ResultMessage{}, fmt.Errorf("invalid search payload: %w", err)
	}
	return ResultMessage{
		Type: ResultSearchResults,
		Data: SearchProducts(payload),
	}, nil
}
