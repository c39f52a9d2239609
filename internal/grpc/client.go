package grpc

import (
	"context"
	"errors"
	"storefront-compute/internal/logger"
	"storefront-compute/proto"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Task представляет собой задачу, полученную от оркестратора
type Task struct {
	ID      int64
	Type    string
	Payload string
}

// TaskResult представляет собой результат выполнения задачи
type TaskResult struct {
	ID     int64
	Type   string
	Result string
	Error  string
}

// GRPCTaskClient представляет gRPC клиент для взаимодействия с оркестратором
type GRPCTaskClient struct {
	conn   *grpc.ClientConn
	client proto.TaskServiceClient
}

// NewGRPCTaskClient создает новый gRPC клиент для взаимодействия с оркестратором
func NewGRPCTaskClient(address string) (*GRPCTaskClient, error) {
	// Устанавливаем соединение с сервером, используя незащищенный канал (для простоты)
	// В продакшене рекомендуется использовать TLS
	conn, err := grpc.Dial(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	// Создаем клиент
	client := proto.NewTaskServiceClient(conn)

	return &GRPCTaskClient{
		conn:   conn,
		client: client,
	}, nil
}

// Close закрывает соединение с сервером
func (c *GRPCTaskClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// GetTask запрашивает задачу от оркестратора.
// Возвращает nil без ошибки, если задач нет.
func (c *GRPCTaskClient) GetTask() (*Task, error) {
	logger.LogINFO("Отправка запроса на получение задачи через gRPC")

	// Создаем контекст с таймаутом
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Отправляем запрос
	resp, err := c.client.GetTask(ctx, &proto.GetTaskRequest{})
	if err != nil {
		logger.LogERROR("Ошибка при получении задачи: " + err.Error())
		return nil, err
	}

	// Если задач нет, возвращаем nil
	if !resp.HasTask {
		return nil, nil
	}

	// Преобразуем ответ в структуру Task
	task := &Task{
		ID:      resp.Id,
		Type:    resp.Type,
		Payload: resp.Payload,
	}

	return task, nil
}

// SendTaskResult отправляет результат выполнения задачи оркестратору
func (c *GRPCTaskClient) SendTaskResult(taskResult TaskResult) error {
	logger.LogINFO("Отправка результата задачи через gRPC")

	// Создаем контекст с таймаутом
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Отправляем запрос
	resp, err := c.client.SendTaskResult(ctx, &proto.TaskResultRequest{
		Id:     taskResult.ID,
		Type:   taskResult.Type,
		Result: taskResult.Result,
		Error:  taskResult.Error,
	})
	if err != nil {
		logger.LogERROR("Ошибка при отправке результата задачи: " + err.Error())
		return err
	}

	// Проверяем успешность операции
	if !resp.Success {
		logger.LogERROR("Сервер сообщил об ошибке: " + resp.Error)
		return errors.New(resp.Error)
	}

	return nil
}
