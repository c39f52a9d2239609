package orchestrator_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"storefront-compute/internal/config"
	"storefront-compute/internal/db"
	"storefront-compute/internal/monitor"
	"storefront-compute/internal/orchestrator"
	"testing"
)

func setupTest(t *testing.T) *db.User {
	// Инициализируем конфигурацию
	config.InitConfig("../../.env")

	// Инициализируем тестовую базу данных в памяти с общим доступом
	db.DB, _ = sql.Open("sqlite3", "file:orchestrator_test?mode=memory&cache=shared")

	// Применяем схему базы данных
	if err := db.ApplySchema(filepath.Join("../../internal/db", "schema.sql")); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		orchestrator.SetMonitor(nil)
		db.CleanupDB()
		db.CloseDB()
	})

	user, err := db.CreateUser("testuser", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// TestProcessTask проверяет прием задач оркестратором
func TestProcessTask(t *testing.T) {
	user := setupTest(t)

	payload := json.RawMessage(`{"products":[],"query":"чехол"}`)

	task, err := orchestrator.ProcessTask(user.ID, "SEARCH_PRODUCTS", payload)
	if err != nil {
		t.Fatalf("ProcessTask() error = %v", err)
	}
	if task.Status != db.StatusPending {
		t.Errorf("Status = %s, want %s", task.Status, db.StatusPending)
	}
	if task.Type != "SEARCH_PRODUCTS" {
		t.Errorf("Type = %s, want SEARCH_PRODUCTS", task.Type)
	}
	if task.Payload != string(payload) {
		t.Errorf("Payload = %s, want %s", task.Payload, string(payload))
	}
}

// TestProcessTaskUnknownType проверяет отклонение неизвестного типа задачи
func TestProcessTaskUnknownType(t *testing.T) {
	user := setupTest(t)

	_, err := orchestrator.ProcessTask(user.ID, "MINE_BITCOIN", json.RawMessage(`{}`))
	if !errors.Is(err, orchestrator.ErrUnknownTaskType) {
		t.Errorf("ProcessTask() error = %v, want %v", err, orchestrator.ErrUnknownTaskType)
	}
}

// TestProcessTaskResult проверяет применение результата выполнения задачи
func TestProcessTaskResult(t *testing.T) {
	user := setupTest(t)

	m := monitor.NewMonitor(nil)
	m.Start()
	defer m.Stop()
	orchestrator.SetMonitor(m)

	task, err := orchestrator.ProcessTask(user.ID, "OPTIMIZE_IMAGES", json.RawMessage(`{"images":[]}`))
	if err != nil {
		t.Fatalf("ProcessTask() error = %v", err)
	}

	result := orchestrator.TaskResult{
		ID:     task.ID,
		Type:   task.Type,
		Result: `{"type":"IMAGES_OPTIMIZED","data":[]}`,
	}
	if err := orchestrator.ProcessTaskResult(result); err != nil {
		t.Fatalf("ProcessTaskResult() error = %v", err)
	}

	updated, err := db.GetTaskByID(task.ID)
	if err != nil {
		t.Fatalf("GetTaskByID() error = %v", err)
	}
	if updated.Status != db.StatusCompleted {
		t.Errorf("Status = %s, want %s", updated.Status, db.StatusCompleted)
	}
	if updated.Result == nil || *updated.Result != result.Result {
		t.Errorf("Result = %v, want %s", updated.Result, result.Result)
	}

	// Монитор должен зафиксировать выполнение задачи
	snapshot, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	stats, ok := snapshot["OPTIMIZE_IMAGES"]
	if !ok {
		t.Fatal("Snapshot() has no stats for OPTIMIZE_IMAGES")
	}
	if stats.Count != 1 || stats.Errors != 0 {
		t.Errorf("stats = %+v, want Count=1 Errors=0", stats)
	}
}

// TestProcessTaskResultError проверяет перевод задачи в статус ошибки
func TestProcessTaskResultError(t *testing.T) {
	user := setupTest(t)

	task, err := orchestrator.ProcessTask(user.ID, "CALCULATE_ANALYTICS", json.RawMessage(`{"orders":[]}`))
	if err != nil {
		t.Fatalf("ProcessTask() error = %v", err)
	}

	result := orchestrator.TaskResult{
		ID:    task.ID,
		Type:  task.Type,
		Error: "invalid analytics payload",
	}
	if err := orchestrator.ProcessTaskResult(result); err != nil {
		t.Fatalf("ProcessTaskResult() error = %v", err)
	}

	updated, err := db.GetTaskByID(task.ID)
	if err != nil {
		t.Fatalf("GetTaskByID() error = %v", err)
	}
	if updated.Status != db.StatusError {
		t.Errorf("Status = %s, want %s", updated.Status, db.StatusError)
	}
	if updated.ErrorMessage == nil || *updated.ErrorMessage != result.Error {
		t.Errorf("ErrorMessage = %v, want %s", updated.ErrorMessage, result.Error)
	}
}

// TestProcessTaskResultNotFound проверяет результат для несуществующей задачи
func TestProcessTaskResultNotFound(t *testing.T) {
	setupTest(t)

	err := orchestrator.ProcessTaskResult(orchestrator.TaskResult{ID: 99999, Type: "SEARCH_PRODUCTS"})
	if !errors.Is(err, orchestrator.ErrTaskNotFound) {
		t.Errorf("ProcessTaskResult() error = %v, want %v", err, orchestrator.ErrTaskNotFound)
	}
}
