package agent

import (
	"encoding/json"
	"fmt"
	"storefront-compute/internal/compute"
	"storefront-compute/internal/logger"
	"storefront-compute/internal/monitor"
	"time"
)

// Глобальный клиент для отправки результатов оркестратору
var globalClient TaskClient

// SetGlobalClient устанавливает глобального клиента для использования воркерами
func SetGlobalClient(client TaskClient) {
	globalClient = client
}

// ExecuteTask выполняет одну задачу через диспетчер и преобразует
// результат в TaskResult для отправки оркестратору.
// На любую задачу возвращается ровно один результат.
func ExecuteTask(task Task, dispatcher *compute.Dispatcher) TaskResult {
	message := compute.TaskMessage{
		Type: task.Type,
		Data: json.RawMessage(task.Payload),
	}

	result := dispatcher.Dispatch(message)

	if result.Type == compute.ResultError {
		return TaskResult{
			ID:    task.ID,
			Type:  result.Type,
			Error: result.Error,
		}
	}

	data, err := json.Marshal(result.Data)
	if err != nil {
		// Результат, который нельзя сериализовать, отправляем как ошибку
		return TaskResult{
			ID:    task.ID,
			Type:  compute.ResultError,
			Error: fmt.Sprintf("failed to marshal result: %v", err),
		}
	}

	return TaskResult{
		ID:     task.ID,
		Type:   result.Type,
		Result: string(data),
	}
}

// Worker обрабатывает поступающие задачи из канала
func Worker(tasksChan chan Task, workerID int, dispatcher *compute.Dispatcher, taskMonitor *monitor.Monitor) {
	for task := range tasksChan {
		logger.INFO.Println("Worker", workerID, "received task:", task.ID, task.Type)

		started := time.Now()
		taskResult := ExecuteTask(task, dispatcher)
		taskMonitor.ObserveTask(task.Type, time.Since(started), taskResult.Error != "")

		if globalClient == nil {
			logger.ERROR.Printf("Worker %d: глобальный клиент не установлен", workerID)
			return
		}

		// gRPC клиенты потокобезопасны по умолчанию
		err := globalClient.SendTaskResult(taskResult)

		if err != nil {
			logger.ERROR.Printf("Worker %d: ошибка отправки результата: %v", workerID, err)
			return
		}
	}
}
