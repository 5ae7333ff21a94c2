// Package model содержит доменные структуры для пользователей, задач и отчёта.
package model

import "time"

// TaskStatus представляет статус задачи в доменной модели.
type TaskStatus string

const (
	// StatusActive означает, что задача взята в работу и ещё не завершена.
	StatusActive TaskStatus = "active"
	// StatusFinished означает, что задача завершена чекаутом; состояние терминальное.
	StatusFinished TaskStatus = "finished"
)

// Task описывает единицу работы пользователя с временными метками начала и конца.
// EndTime заполняется только при переходе в статус finished.
type Task struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	TaskName  string     `json:"task_name"`
	Status    TaskStatus `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}
