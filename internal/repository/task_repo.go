package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-tracker-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// TaskRepo реализует репозиторий задач на базе PostgreSQL.
type TaskRepo struct {
	db *Postgres
}

// NewTaskRepo создаёт новый экземпляр TaskRepo c переданным подключением к PostgreSQL.
func NewTaskRepo(db *Postgres) *TaskRepo {
	return &TaskRepo{db: db}
}

// CreateTask создаёт задачу в статусе active с переданным временем старта
// и возвращает её с присвоенным идентификатором.
func (r *TaskRepo) CreateTask(ctx context.Context, userID int64, taskName string, startTime time.Time) (model.Task, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO tasks (user_id, task_name, status, start_time)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, task_name, status, start_time, end_time
`, userID, taskName, string(model.StatusActive), startTime)

	return scanTask(row)
}

// GetTask возвращает задачу по идентификатору.
// Если задача не найдена, возвращает ErrTaskNotFound.
func (r *TaskRepo) GetTask(ctx context.Context, taskID int64) (model.Task, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
SELECT id, user_id, task_name, status, start_time, end_time
FROM tasks
WHERE id = $1
`, taskID)

	return scanTask(row)
}

// FinishTask переводит задачу в статус finished и устанавливает время
// завершения. Если задача не найдена, возвращает ErrTaskNotFound.
func (r *TaskRepo) FinishTask(ctx context.Context, taskID int64, endTime time.Time) error {
	q := r.db.GetQueryExecutor(ctx)

	cmdTag, err := q.Exec(ctx, `
UPDATE tasks
SET status = $2,
    end_time = $3
WHERE id = $1
`, taskID, string(model.StatusFinished), endTime)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// StreamFinishedTasks выгружает завершённые задачи, отсортированные сначала
// по имени пользователя, затем по времени старта, и отдаёт их по одной в
// yield. Результат не материализуется целиком: строки читаются по курсору,
// поэтому память ограничена независимо от размера отчёта. Ошибка yield
// прерывает выгрузку.
func (r *TaskRepo) StreamFinishedTasks(ctx context.Context, yield func(model.ReportRow) error) error {
	rows, err := r.db.Pool.Query(ctx, `
SELECT u.user_name, t.task_name, t.start_time, t.end_time
FROM users u
JOIN tasks t ON t.user_id = u.id
WHERE t.status = $1
ORDER BY u.user_name, t.start_time
`, string(model.StatusFinished))
	if err != nil {
		return fmt.Errorf("query finished tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userName  string
			taskName  string
			startTime time.Time
			endTime   time.Time
		)
		if err := rows.Scan(&userName, &taskName, &startTime, &endTime); err != nil {
			return fmt.Errorf("scan finished task: %w", err)
		}
		row := model.ReportRow{
			UserName: userName,
			TaskName: taskName,
			Duration: endTime.Sub(startTime),
		}
		if err := yield(row); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows error: %w", err)
	}
	return nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	var status string
	if err := row.Scan(&t.ID, &t.UserID, &t.TaskName, &status, &t.StartTime, &t.EndTime); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, ErrTaskNotFound
		}
		return model.Task{}, fmt.Errorf("scan task: %w", err)
	}
	t.Status = model.TaskStatus(status)
	return t, nil
}
