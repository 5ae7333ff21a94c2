package repository

import (
	"context"
	"errors"
	"fmt"

	"task-tracker-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepo реализует репозиторий пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// LockUserByName читает пользователя по имени под эксклюзивной блокировкой
// строки (FOR UPDATE). Конкурентные чекины/чекауты одного пользователя
// сериализуются на этой блокировке до конца транзакции; если строки нет,
// блокировать нечего и возвращается ErrUserNotFound.
func (r *UserRepo) LockUserByName(ctx context.Context, userName string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
SELECT id, user_name, active_task_id
FROM users
WHERE user_name = $1
FOR UPDATE
`, userName)

	var u model.User
	if err := row.Scan(&u.ID, &u.UserName, &u.ActiveTaskID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("lock user: %w", err)
	}
	return u, nil
}

// CreateUser создаёт пользователя без активной задачи и возвращает его
// с присвоенным идентификатором.
func (r *UserRepo) CreateUser(ctx context.Context, userName string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO users (user_name)
VALUES ($1)
RETURNING id, user_name, active_task_id
`, userName)

	var u model.User
	if err := row.Scan(&u.ID, &u.UserName, &u.ActiveTaskID); err != nil {
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// SetActiveTask устанавливает или сбрасывает (taskID == nil) ссылку на
// активную задачу пользователя. Если пользователь не найден, возвращает
// ErrUserNotFound.
func (r *UserRepo) SetActiveTask(ctx context.Context, userID int64, taskID *int64) error {
	q := r.db.GetQueryExecutor(ctx)

	cmdTag, err := q.Exec(ctx, `
UPDATE users
SET active_task_id = $2
WHERE id = $1
`, userID, taskID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
