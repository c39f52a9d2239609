package db

import (
	"database/sql"
	"errors"
	"time"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

// CreateTask создает новую задачу в базе данных
func CreateTask(userID int64, taskType, payload string) (*Task, error) {
	DbMutex.Lock()
	defer DbMutex.Unlock()

	res, err := DB.Exec(
		"INSERT INTO tasks (user_id, type, payload, status) VALUES (?, ?, ?, ?)",
		userID, taskType, payload, StatusPending,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:        id,
		UserID:    userID,
		Type:      taskType,
		Payload:   payload,
		Status:    StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// scanTask читает одну задачу из строки результата запроса
func scanTask(scan func(dest ...any) error) (*Task, error) {
	var task Task
	var createdAtStr, updatedAtStr string
	var result sql.NullString
	var errorMessage sql.NullString

	err := scan(
		&task.ID, &task.UserID, &task.Type, &task.Payload, &task.Status,
		&result, &errorMessage, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	if result.Valid {
		val := result.String
		task.Result = &val
	}
	if errorMessage.Valid {
		val := errorMessage.String
		task.ErrorMessage = &val
	}

	task.CreatedAt = parseTimestamp(createdAtStr)
	task.UpdatedAt = parseTimestamp(updatedAtStr)

	return &task, nil
}

// GetTaskByID получает задачу по ID
func GetTaskByID(id int64) (*Task, error) {
	DbMutex.Lock()
	defer DbMutex.Unlock()

	row := DB.QueryRow(
		`SELECT id, user_id, type, payload, status, result,
         error_message, created_at, updated_at
         FROM tasks WHERE id = ?`,
		id,
	)

	task, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// GetUserTasks получает все задачи пользователя
func GetUserTasks(userID int64) ([]*Task, error) {
	DbMutex.Lock()
	defer DbMutex.Unlock()

	rows, err := DB.Query(
		`SELECT id, user_id, type, payload, status, result,
         error_message, created_at, updated_at
         FROM tasks
         WHERE user_id = ?
         ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetPendingTask получает самую старую задачу в статусе pending.
// Возвращает nil без ошибки, если очередь пуста.
func GetPendingTask() (*Task, error) {
	DbMutex.Lock()
	defer DbMutex.Unlock()

	row := DB.QueryRow(
		`SELECT id, user_id, type, payload, status, result,
         error_message, created_at, updated_at
         FROM tasks
         WHERE status = ?
         ORDER BY created_at ASC, id ASC
         LIMIT 1`,
		StatusPending,
	)

	task, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

// UpdateTaskStatus обновляет статус задачи
func UpdateTaskStatus(id int64, status string) error {
	DbMutex.Lock()
	defer DbMutex.Unlock()

	_, err := DB.Exec(
		"UPDATE tasks SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	)
	return err
}

// SetTaskResult устанавливает результат задачи и статус completed
func SetTaskResult(id int64, result string) error {
	DbMutex.Lock()
	defer DbMutex.Unlock()

	_, err := DB.Exec(
		`UPDATE tasks
         SET result = ?, status = ?, updated_at = CURRENT_TIMESTAMP
         WHERE id = ?`,
		result, StatusCompleted, id,
	)
	return err
}

// SetTaskError устанавливает ошибку задачи и статус error
func SetTaskError(id int64, errorMessage string) error {
	DbMutex.Lock()
	defer DbMutex.Unlock()

	_, err := DB.Exec(
		`UPDATE tasks
         SET error_message = ?, status = ?, updated_at = CURRENT_TIMESTAMP
         WHERE id = ?`,
		errorMessage, StatusError, id,
	)
	return err
}
