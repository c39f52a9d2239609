package db

import (
	"time"
)

// User представляет пользователя в системе
type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"` // Не включается в JSON сериализацию
	CreatedAt    time.Time `json:"created_at"`
}

// Task представляет вычислительную задачу витрины
type Task struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Type         string    `json:"type"`
	Payload      string    `json:"payload"`
	Status       string    `json:"status"`
	Result       *string   `json:"result"`
	ErrorMessage *string   `json:"error_message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Статусы задач
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)
