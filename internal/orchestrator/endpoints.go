package orchestrator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"storefront-compute/internal/auth"
	"storefront-compute/internal/db"
	"storefront-compute/internal/logger"
	"storefront-compute/internal/monitor"
	"strconv"

	"github.com/gorilla/mux"
)

type CreateTaskRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type CreateTaskResponse struct {
	ID int64 `json:"id"`
}

// TaskResponse представляет собой задачу в ответах API.
// Result отдается как сырой JSON, чтобы клиент получил структуру результата.
type TaskResponse struct {
	ID     int64           `json:"id"`
	Type   string          `json:"type"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// taskToResponse преобразует запись БД в ответ API
func taskToResponse(task *db.Task) TaskResponse {
	resp := TaskResponse{
		ID:     task.ID,
		Type:   task.Type,
		Status: task.Status,
	}
	if task.Result != nil {
		resp.Result = json.RawMessage(*task.Result)
	}
	if task.ErrorMessage != nil {
		resp.Error = *task.ErrorMessage
	}
	return resp
}

// HandleCreateTask принимает новую вычислительную задачу (POST /api/v1/tasks)
func HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.RequireAuth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var request CreateTaskRequest
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	logger.LogINFO(fmt.Sprintf("Received create task request: %v", request.Type))

	task, err := ProcessTask(userID, request.Type, request.Data)
	if err != nil {
		if errors.Is(err, ErrUnknownTaskType) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := CreateTaskResponse{
		ID: task.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// HandleGetTasks возвращает все задачи пользователя (GET /api/v1/tasks)
func HandleGetTasks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, err := auth.RequireAuth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	logger.LogINFO("Received get tasks request")
	tasks, err := db.GetUserTasks(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tasksResponse := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		tasksResponse[i] = taskToResponse(task)
	}

	err = json.NewEncoder(w).Encode(tasksResponse)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// HandleGetTaskByID возвращает задачу по id (GET /api/v1/tasks/{id})
func HandleGetTaskByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, err := auth.RequireAuth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"] // получаем параметр id из URL

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Неверный id", http.StatusBadRequest)
		return
	}

	logger.LogINFO(fmt.Sprintf("Received get task by id request: %v", id))

	task, err := db.GetTaskByID(id)
	if err != nil {
		if errors.Is(err, db.ErrTaskNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Задачи других пользователей не раскрываем
	if task.UserID != userID {
		http.Error(w, db.ErrTaskNotFound.Error(), http.StatusNotFound)
		return
	}

	err = json.NewEncoder(w).Encode(taskToResponse(task))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// HandleGetStats возвращает метрики выполнения задач (GET /api/v1/stats)
func HandleGetStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if taskMonitor == nil {
		http.Error(w, "метрики не включены", http.StatusServiceUnavailable)
		return
	}

	snapshot, err := taskMonitor.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	response := struct {
		UptimeMS int64                        `json:"uptime_ms"`
		Tasks    map[string]monitor.TaskStats `json:"tasks"`
	}{
		UptimeMS: taskMonitor.Uptime().Milliseconds(),
		Tasks:    snapshot,
	}

	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
