package compute

import "encoding/json"

// Типы входящих задач
const (
	TaskProcessLargeDataset = "PROCESS_LARGE_DATASET"
	TaskOptimizeImages      = "OPTIMIZE_IMAGES"
	TaskCalculateAnalytics  = "CALCULATE_ANALYTICS"
	TaskSearchProducts      = "SEARCH_PRODUCTS"
)

// Типы исходящих результатов
const (
	ResultDatasetProcessed    = "DATASET_PROCESSED"
	ResultImagesOptimized     = "IMAGES_OPTIMIZED"
	ResultAnalyticsCalculated = "ANALYTICS_CALCULATED"
	ResultSearchResults       = "SEARCH_RESULTS"
	ResultError               = "ERROR"
)

// TaskMessage представляет собой входящее сообщение с задачей.
// Data содержит полезную нагрузку, специфичную для типа задачи.
type TaskMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ResultMessage представляет собой исходящее сообщение с результатом.
// На каждую задачу отправляется ровно одно такое сообщение.
// Для ошибок используется единый конверт {type: "ERROR", error: "..."}.
type ResultMessage struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// ErrorResult создает сообщение об ошибке в едином формате
func ErrorResult(message string) ResultMessage {
	return ResultMessage{
		Type:  ResultError,
		Error: message,
	}
}

// KnownTaskType проверяет, поддерживается ли тип задачи
func KnownTaskType(taskType string) bool {
	switch taskType {
	case TaskProcessLargeDataset, TaskOptimizeImages, TaskCalculateAnalytics, TaskSearchProducts:
		return true
	}
	return false
}
