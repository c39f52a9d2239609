package compute

import (
	"math"
	"strings"
)

// Ограничивающая рамка и политика качества для оптимизации изображений
const (
	maxImageWidth         = 1920.0
	maxImageHeight        = 1080.0
	qualityThresholdBytes = 500000.0
	qualityLarge          = 75
	qualityDefault        = 85
)

// ImagesPayload представляет собой полезную нагрузку задачи OPTIMIZE_IMAGES.
// Дескрипторы — произвольные JSON-объекты, неизвестные поля сохраняются.
type ImagesPayload struct {
	Images []map[string]any `json:"images"`
}

// OptimizedPlan представляет собой план оптимизации одного изображения
type OptimizedPlan struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Quality int    `json:"quality"`
	Format  string `json:"format"`
}

// numberField достает числовое поле из JSON-объекта.
// После json.Unmarshal числа приходят как float64.
func numberField(m map[string]any, key string) float64 {
	if v, ok := m[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return 0
}

// stringField достает строковое поле из JSON-объекта
func stringField(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// planFor вычисляет целевые размеры и политику качества/формата.
// Сначала ширина приводится к maxImageWidth, затем (если нужно)
// высота к maxImageHeight; пропорции сохраняются.
func planFor(width, height, size float64, mimeType string) OptimizedPlan {
	w, h := width, height

	if w > maxImageWidth {
		scale := maxImageWidth / w
		w = maxImageWidth
		h = h * scale
	}
	if h > maxImageHeight {
		scale := maxImageHeight / h
		w = w * scale
		h = maxImageHeight
	}

	quality := qualityDefault
	if size > qualityThresholdBytes {
		quality = qualityLarge
	}

	format := "auto"
	if strings.Contains(mimeType, "png") {
		format = "webp"
	}

	return OptimizedPlan{
		Width:   int(math.Round(w)),
		Height:  int(math.Round(h)),
		Quality: quality,
		Format:  format,
	}
}

// OptimizeImages вычисляет план оптимизации для каждого дескриптора.
// На каждый входной дескриптор ровно один выходной, порядок сохраняется,
// входные объекты не изменяются.
func OptimizeImages(payload ImagesPayload) []map[string]any {
	optimized := make([]map[string]any, 0, len(payload.Images))

	for _, img := range payload.Images {
		out := make(map[string]any, len(img)+1)
		for k, v := range img {
			out[k] = v
		}
		out["optimized"] = planFor(
			numberField(img, "width"),
			numberField(img, "height"),
			numberField(img, "size"),
			stringField(img, "type"),
		)
		optimized = append(optimized, out)
	}

	return optimized
}
