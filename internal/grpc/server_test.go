package grpc_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"storefront-compute/internal/config"
	"storefront-compute/internal/db"
	grpcserver "storefront-compute/internal/grpc"
	"storefront-compute/proto"
	"testing"
)

func setupTest(t *testing.T) *db.User {
	// Инициализируем конфигурацию
	config.InitConfig("../../.env")

	// Инициализируем тестовую базу данных в памяти с общим доступом
	db.DB, _ = sql.Open("sqlite3", "file:grpc_test?mode=memory&cache=shared")

	// Применяем схему базы данных
	if err := db.ApplySchema(filepath.Join("../../internal/db", "schema.sql")); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		db.CleanupDB()
		db.CloseDB()
	})

	user, err := db.CreateUser("testuser", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// TestGetTask проверяет выдачу задачи агенту и смену статуса
func TestGetTask(t *testing.T) {
	user := setupTest(t)
	service := &grpcserver.OrchestratorService{}

	// Пустая очередь
	resp, err := service.GetTask(context.Background(), &proto.GetTaskRequest{})
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if resp.HasTask {
		t.Error("HasTask = true for empty queue, want false")
	}

	task, err := db.CreateTask(user.ID, "SEARCH_PRODUCTS", `{"products":[],"query":"чехол"}`)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	resp, err = service.GetTask(context.Background(), &proto.GetTaskRequest{})
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if !resp.HasTask {
		t.Fatal("HasTask = false, want true")
	}
	if resp.Id != task.ID {
		t.Errorf("Id = %d, want %d", resp.Id, task.ID)
	}
	if resp.Type != task.Type {
		t.Errorf("Type = %s, want %s", resp.Type, task.Type)
	}
	if resp.Payload != task.Payload {
		t.Errorf("Payload = %s, want %s", resp.Payload, task.Payload)
	}

	// Выданная задача переходит в статус processing и не выдается повторно
	updated, err := db.GetTaskByID(task.ID)
	if err != nil {
		t.Fatalf("GetTaskByID() error = %v", err)
	}
	if updated.Status != db.StatusProcessing {
		t.Errorf("Status = %s, want %s", updated.Status, db.StatusProcessing)
	}

	resp, err = service.GetTask(context.Background(), &proto.GetTaskRequest{})
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if resp.HasTask {
		t.Error("HasTask = true after task was taken, want false")
	}
}

// TestSendTaskResult проверяет прием результата задачи от агента
func TestSendTaskResult(t *testing.T) {
	user := setupTest(t)
	service := &grpcserver.OrchestratorService{}

	task, err := db.CreateTask(user.ID, "CALCULATE_ANALYTICS", `{"orders":[]}`)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	resp, err := service.SendTaskResult(context.Background(), &proto.TaskResultRequest{
		Id:     task.ID,
		Type:   "ANALYTICS_CALCULATED",
		Result: `{"revenue":0}`,
	})
	if err != nil {
		t.Fatalf("SendTaskResult() error = %v", err)
	}
	if !resp.Success {
		t.Fatalf("Success = false: %s", resp.Error)
	}

	updated, err := db.GetTaskByID(task.ID)
	if err != nil {
		t.Fatalf("GetTaskByID() error = %v", err)
	}
	if updated.Status != db.StatusCompleted {
		t.Errorf("Status = %s, want %s", updated.Status, db.StatusCompleted)
	}

	// Результат для несуществующей задачи
	resp, err = service.SendTaskResult(context.Background(), &proto.TaskResultRequest{
		Id:   99999,
		Type: "ANALYTICS_CALCULATED",
	})
	if err != nil {
		t.Fatalf("SendTaskResult() error = %v", err)
	}
	if resp.Success {
		t.Error("Success = true for missing task, want false")
	}
}
