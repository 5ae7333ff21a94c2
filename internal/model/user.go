package model

// User описывает пользователя трекера и ссылку на его текущую активную задачу.
// ActiveTaskID равен nil, если активной задачи нет.
type User struct {
	ID           int64  `json:"id"`
	UserName     string `json:"user_name"`
	ActiveTaskID *int64 `json:"active_task_id,omitempty"`
}
