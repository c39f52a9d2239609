package grpc

import (
	"context"
	"net"
	"storefront-compute/internal/db"
	"storefront-compute/internal/logger"
	"storefront-compute/internal/orchestrator"
	"storefront-compute/proto"

	"google.golang.org/grpc"
)

// OrchestratorService имплементирует TaskServiceServer из сгенерированного кода
type OrchestratorService struct {
	proto.UnimplementedTaskServiceServer
}

// GetTask возвращает задачу для обработки агентом
func (s *OrchestratorService) GetTask(ctx context.Context, req *proto.GetTaskRequest) (*proto.GetTaskResponse, error) {
	logger.LogINFO("gRPC: Запрос на получение задачи от агента")

	// Получаем самую старую задачу в статусе pending
	task, err := db.GetPendingTask()
	if err != nil {
		logger.LogERROR("Ошибка получения задачи: " + err.Error())
		return &proto.GetTaskResponse{
			HasTask: false,
		}, nil
	}

	// Проверяем, есть ли задача
	if task == nil {
		return &proto.GetTaskResponse{
			HasTask: false,
		}, nil
	}

	// Обновляем статус задачи на "обрабатывается"
	err = db.UpdateTaskStatus(task.ID, db.StatusProcessing)
	if err != nil {
		logger.LogERROR("Ошибка обновления статуса задачи: " + err.Error())
		return &proto.GetTaskResponse{
			HasTask: false,
		}, nil
	}

	return &proto.GetTaskResponse{
		HasTask: true,
		Id:      task.ID,
		Type:    task.Type,
		Payload: task.Payload,
	}, nil
}

// SendTaskResult обрабатывает результат выполнения задачи
func (s *OrchestratorService) SendTaskResult(ctx context.Context, req *proto.TaskResultRequest) (*proto.TaskResultResponse, error) {
	logger.LogINFO("gRPC: Получен результат задачи")

	// Преобразуем запрос в структуру TaskResult для оркестратора
	taskResult := orchestrator.TaskResult{
		ID:     req.Id,
		Type:   req.Type,
		Result: req.Result,
		Error:  req.Error,
	}

	// Применяем результат через оркестратор
	err := orchestrator.ProcessTaskResult(taskResult)
	if err != nil {
		logger.LogERROR("Ошибка обработки результата: " + err.Error())
		return &proto.TaskResultResponse{
			Success: false,
			Error:   err.Error(),
		}, nil
	}

	return &proto.TaskResultResponse{
		Success: true,
		Error:   "",
	}, nil
}

// StartGRPCServer запускает gRPC сервер на указанном адресе и возвращает экземпляр сервера
func StartGRPCServer(address string) (*grpc.Server, error) {
	// Создаем TCP слушатель
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	// Создаем новый gRPC сервер
	s := grpc.NewServer()

	// Регистрируем наш сервис на сервере
	proto.RegisterTaskServiceServer(s, &OrchestratorService{})

	logger.LogINFO("gRPC оркестратор запущен на " + address)

	// Запуск в горутине с возможностью graceful shutdown
	go func() {
		if err := s.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			logger.LogERROR("Ошибка запуска gRPC оркестратора: " + err.Error())
		}
	}()

	return s, nil
}
