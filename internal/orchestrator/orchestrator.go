package orchestrator

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-compute/internal/compute"
	"storefront-compute/internal/db"
	"storefront-compute/internal/logger"
	"storefront-compute/internal/monitor"
)

// Errors
var (
	ErrUnknownTaskType = errors.New("Unknown task type")
	ErrTaskNotFound    = errors.New("task not found")
)

// TaskResult представляет собой результат выполнения задачи, пришедший от агента
type TaskResult struct {
	ID     int64
	Type   string
	Result string
	Error  string
}

// Монитор метрик оркестратора. Создается явно в main и
// передается сюда через SetMonitor.
var taskMonitor *monitor.Monitor

// SetMonitor подключает монитор метрик к оркестратору
func SetMonitor(m *monitor.Monitor) {
	taskMonitor = m
}

// ProcessTask принимает задачу от клиента: проверяет тип и сохраняет в БД.
// Возвращает созданную задачу.
func ProcessTask(userID int64, taskType string, payload json.RawMessage) (*db.Task, error) {
	if !compute.KnownTaskType(taskType) {
		return nil, ErrUnknownTaskType
	}

	task, err := db.CreateTask(userID, taskType, string(payload))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания задачи в БД: %w", err)
	}

	logger.LogINFO(fmt.Sprintf("Создана задача id=%d type=%s", task.ID, task.Type))
	return task, nil
}

// ProcessTaskResult применяет результат выполнения задачи к записи в БД.
// Непустая ошибка переводит задачу в статус error, иначе устанавливается
// результат и статус completed.
func ProcessTaskResult(result TaskResult) error {
	// Получаем задачу, чтобы проверить ее существование и измерить
	// время от постановки до завершения
	task, err := db.GetTaskByID(result.ID)
	if err != nil {
		if errors.Is(err, db.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("не удалось получить задачу: %w", err)
	}

	failed := result.Error != ""
	if failed {
		if err := db.SetTaskError(result.ID, result.Error); err != nil {
			return fmt.Errorf("ошибка при установке ошибки задачи: %w", err)
		}
	} else {
		if err := db.SetTaskResult(result.ID, result.Result); err != nil {
			return fmt.Errorf("ошибка при установке результата задачи: %w", err)
		}
	}

	if taskMonitor != nil {
		// Сквозная задержка: от создания задачи до прихода результата
		taskMonitor.ObserveTask(task.Type, time.Since(task.CreatedAt), failed)
	}

	logger.LogINFO(fmt.Sprintf("Применен результат задачи id=%d failed=%v", result.ID, failed))
	return nil
}
