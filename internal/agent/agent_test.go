package agent_test

import (
	"encoding/json"
	"storefront-compute/internal/agent"
	"storefront-compute/internal/compute"
	"storefront-compute/internal/config"
	"storefront-compute/internal/logger"
	"storefront-compute/internal/monitor"
	"strings"
	"sync"
	"testing"
)

// fakeClient собирает результаты задач вместо отправки их оркестратору
type fakeClient struct {
	mu      sync.Mutex
	results []agent.TaskResult
}

func (f *fakeClient) GetTask() (*agent.Task, error) { return nil, nil }

func (f *fakeClient) SendTaskResult(result agent.TaskResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, result)
	return nil
}

func (f *fakeClient) Close() error { return nil }

func newDispatcher() *compute.Dispatcher {
	registry := compute.DefaultRegistry(compute.RetryPolicy{MaxAttempts: 1})
	return compute.NewDispatcher(registry)
}

// TestExecuteTask проверяет выполнение задачи через диспетчер
func TestExecuteTask(t *testing.T) {
	dispatcher := newDispatcher()

	task := agent.Task{
		ID:      1,
		Type:    "PROCESS_LARGE_DATASET",
		Payload: `{"items":[{"id":1},{"id":2}]}`,
	}

	result := agent.ExecuteTask(task, dispatcher)

	if result.ID != task.ID {
		t.Errorf("ID = %d, want %d", result.ID, task.ID)
	}
	if result.Error != "" {
		t.Fatalf("Error = %s, want empty", result.Error)
	}
	if result.Type != "DATASET_PROCESSED" {
		t.Errorf("Type = %s, want DATASET_PROCESSED", result.Type)
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(result.Result), &items); err != nil {
		t.Fatalf("Failed to unmarshal result: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0]["processed"] != true {
		t.Error("item is not marked processed")
	}
}

// TestExecuteTaskUnknownType проверяет обработку неизвестного типа задачи
func TestExecuteTaskUnknownType(t *testing.T) {
	dispatcher := newDispatcher()

	task := agent.Task{
		ID:      2,
		Type:    "FOO",
		Payload: `{}`,
	}

	result := agent.ExecuteTask(task, dispatcher)

	if result.Type != compute.ResultError {
		t.Errorf("Type = %s, want %s", result.Type, compute.ResultError)
	}
	if result.Error != "Unknown task type" {
		t.Errorf("Error = %q, want %q", result.Error, "Unknown task type")
	}
}

// TestExecuteTaskInvalidPayload проверяет обработку некорректной полезной нагрузки
func TestExecuteTaskInvalidPayload(t *testing.T) {
	dispatcher := newDispatcher()

	task := agent.Task{
		ID:      3,
		Type:    "SEARCH_PRODUCTS",
		Payload: `{"products":"not-an-array"}`,
	}

	result := agent.ExecuteTask(task, dispatcher)

	if result.Type != compute.ResultError {
		t.Errorf("Type = %s, want %s", result.Type, compute.ResultError)
	}
	if result.Error == "" {
		t.Error("Error is empty, want payload error")
	}
}

// TestWorker проверяет цикл воркера: получение задач из канала и отправку результатов
func TestWorker(t *testing.T) {
	config.InitConfig("../../.env")
	config.AppConfig.AgentLogFilePath = ""
	logger.InitAgentLogger()

	client := &fakeClient{}
	agent.SetGlobalClient(client)
	t.Cleanup(func() { agent.SetGlobalClient(nil) })

	taskMonitor := monitor.NewMonitor(nil)
	taskMonitor.Start()
	defer taskMonitor.Stop()

	dispatcher := newDispatcher()

	tasksChan := make(chan agent.Task, 2)
	tasksChan <- agent.Task{ID: 1, Type: "OPTIMIZE_IMAGES", Payload: `{"images":[{"id":1,"width":100,"height":100,"size":1000,"type":"image/jpeg"}]}`}
	tasksChan <- agent.Task{ID: 2, Type: "FOO", Payload: `{}`}
	close(tasksChan)

	done := make(chan struct{})
	go func() {
		agent.Worker(tasksChan, 1, dispatcher, taskMonitor)
		close(done)
	}()
	<-done

	client.mu.Lock()
	defer client.mu.Unlock()

	if len(client.results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(client.results))
	}

	byID := make(map[int64]agent.TaskResult)
	for _, r := range client.results {
		byID[r.ID] = r
	}

	if byID[1].Type != "IMAGES_OPTIMIZED" {
		t.Errorf("task 1 Type = %s, want IMAGES_OPTIMIZED", byID[1].Type)
	}
	if !strings.Contains(byID[1].Result, `"optimized"`) {
		t.Errorf("task 1 Result = %s, want optimized plan", byID[1].Result)
	}
	if byID[2].Error != "Unknown task type" {
		t.Errorf("task 2 Error = %q, want %q", byID[2].Error, "Unknown task type")
	}

	// Монитор должен зафиксировать обе задачи, одну из них как ошибку
	snapshot, err := taskMonitor.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snapshot["FOO"].Errors != 1 {
		t.Errorf("FOO errors = %d, want 1", snapshot["FOO"].Errors)
	}
	if snapshot["OPTIMIZE_IMAGES"].Count != 1 {
		t.Errorf("OPTIMIZE_IMAGES count = %d, want 1", snapshot["OPTIMIZE_IMAGES"].Count)
	}
}
