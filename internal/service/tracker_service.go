// Package service содержит бизнес-логику чекина/чекаута задач и построения отчёта.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-tracker-service/internal/model"
	"task-tracker-service/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository описывает контракт репозитория пользователей для бизнес-слоя.
// LockUserByName обязан брать эксклюзивную блокировку строки до конца транзакции.
type UserRepository interface {
	LockUserByName(ctx context.Context, userName string) (model.User, error)
	CreateUser(ctx context.Context, userName string) (model.User, error)
	SetActiveTask(ctx context.Context, userID int64, taskID *int64) error
}

// TaskRepository описывает контракт репозитория задач для бизнес-слоя.
type TaskRepository interface {
	CreateTask(ctx context.Context, userID int64, taskName string, startTime time.Time) (model.Task, error)
	GetTask(ctx context.Context, taskID int64) (model.Task, error)
	FinishTask(ctx context.Context, taskID int64, endTime time.Time) error
}

// TrackerService инкапсулирует машину состояний задач: у пользователя в любой
// момент не больше одной активной задачи, и active_task_id пользователя
// непуст ровно тогда, когда такая задача существует. Инвариант защищается
// блокировкой строки пользователя внутри транзакции.
type TrackerService struct {
	userRepo  UserRepository
	taskRepo  TaskRepository
	txManager TransactionManager
}

// NewTrackerService создаёт новый сервис чекина/чекаута задач.
func NewTrackerService(userRepo UserRepository, taskRepo TaskRepository, txManager TransactionManager) *TrackerService {
	return &TrackerService{
		userRepo:  userRepo,
		taskRepo:  taskRepo,
		txManager: txManager,
	}
}

// CheckIn создаёт новую активную задачу для пользователя и возвращает её
// идентификатор. Незнакомое имя заводит пользователя тут же, в той же
// транзакции. Если активная задача уже есть, возвращает DUPLICATE_ACTIVE_TASK
// и новую задачу не создаёт.
//
// Чтение-проверка-запись выполняется под блокировкой строки пользователя:
// из конкурентных чекинов одного имени побеждает ровно один, остальные
// видят уже установленный active_task_id.
func (s *TrackerService) CheckIn(ctx context.Context, userName, taskName string) (int64, error) {
	if userName == "" || taskName == "" {
		return 0, ErrDomain(CodeEmptyField, "Either user or task is an empty string.")
	}

	var taskID int64

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		user, errTx := s.userRepo.LockUserByName(ctx, userName)
		if errTx != nil {
			if !errors.Is(errTx, repository.ErrUserNotFound) {
				return errTx
			}
			// Первый чекин — заводим пользователя сразу, чтобы у него
			// появился идентификатор
			user, errTx = s.userRepo.CreateUser(ctx, userName)
			if errTx != nil {
				return errTx
			}
		}

		if user.ActiveTaskID != nil {
			return ErrDomain(CodeDuplicateActiveTask, fmt.Sprintf("%s already has an active task.", userName))
		}

		task, errTx := s.taskRepo.CreateTask(ctx, user.ID, taskName, time.Now().UTC())
		if errTx != nil {
			return errTx
		}

		if errTx := s.userRepo.SetActiveTask(ctx, user.ID, &task.ID); errTx != nil {
			return errTx
		}

		taskID = task.ID
		return nil
	})
	if err != nil {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return 0, appErr
		}
		return 0, ErrInternal("failed to check in task", err)
	}

	return taskID, nil
}

// CheckOut завершает текущую активную задачу пользователя: статус finished,
// end_time = now, ссылка active_task_id сбрасывается. Для неизвестного имени
// возвращает USER_NOT_FOUND, при отсутствии активной задачи — NO_ACTIVE_TASK.
//
// Строка пользователя берётся под ту же блокировку, что и в CheckIn, поэтому
// из двух конкурентных чекаутов одного пользователя второй увидит уже
// завершённую задачу.
func (s *TrackerService) CheckOut(ctx context.Context, userName string) error {
	if userName == "" {
		return ErrDomain(CodeEmptyField, "User is an empty string.")
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		user, errTx := s.userRepo.LockUserByName(ctx, userName)
		if errTx != nil {
			if errors.Is(errTx, repository.ErrUserNotFound) {
				return ErrDomain(CodeUserNotFound, fmt.Sprintf("%s not found.", userName))
			}
			return errTx
		}

		if user.ActiveTaskID == nil {
			return ErrDomain(CodeNoActiveTask, fmt.Sprintf("%s doesn't have an active task.", userName))
		}

		task, errTx := s.taskRepo.GetTask(ctx, *user.ActiveTaskID)
		if errTx != nil {
			return errTx
		}
		if task.Status == model.StatusFinished {
			return ErrDomain(CodeNoActiveTask, fmt.Sprintf("%s doesn't have an active task.", userName))
		}

		if errTx := s.taskRepo.FinishTask(ctx, task.ID, time.Now().UTC()); errTx != nil {
			return errTx
		}

		return s.userRepo.SetActiveTask(ctx, user.ID, nil)
	})
	if err != nil {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return ErrInternal("failed to check out task", err)
	}

	return nil
}
