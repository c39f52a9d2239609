package agent

// Task представляет собой задачу для выполнения
type Task struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Payload string `json:"payload"`
}

// TaskResult представляет собой результат выполнения задачи
type TaskResult struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Result string `json:"result"`
	Error  string `json:"error"`
}
