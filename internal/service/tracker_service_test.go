package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"task-tracker-service/internal/model"
	"task-tracker-service/internal/repository"
	"task-tracker-service/internal/service"
	"task-tracker-service/internal/service/mocks"
)

func ptrInt64(v int64) *int64 {
	return &v
}

// runTx прогоняет замыкание транзакции напрямую, без реальной БД.
func runTx(txManager *mocks.TransactionManager) {
	txManager.On("RunInTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestTrackerService_CheckIn(t *testing.T) {
	tests := []struct {
		name       string
		userName   string
		taskName   string
		setupMocks func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager)
		wantTaskID int64
		wantCode   string
	}{
		{
			name:     "Success: new user is created lazily",
			userName: "Bob",
			taskName: "Eat banana",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
				runTx(tm)
				ur.On("LockUserByName", mock.Anything, "Bob").
					Return(model.User{}, repository.ErrUserNotFound)
				ur.On("CreateUser", mock.Anything, "Bob").
					Return(model.User{ID: 1, UserName: "Bob"}, nil)
				tr.On("CreateTask", mock.Anything, int64(1), "Eat banana", mock.AnythingOfType("time.Time")).
					Return(model.Task{ID: 10, UserID: 1, TaskName: "Eat banana", Status: model.StatusActive}, nil)
				ur.On("SetActiveTask", mock.Anything, int64(1), ptrInt64(10)).Return(nil)
			},
			wantTaskID: 10,
		},
		{
			name:     "Success: existing user without active task",
			userName: "Bob",
			taskName: "Call Mary",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
				runTx(tm)
				ur.On("LockUserByName", mock.Anything, "Bob").
					Return(model.User{ID: 1, UserName: "Bob"}, nil)
				tr.On("CreateTask", mock.Anything, int64(1), "Call Mary", mock.AnythingOfType("time.Time")).
					Return(model.Task{ID: 11, UserID: 1, TaskName: "Call Mary", Status: model.StatusActive}, nil)
				ur.On("SetActiveTask", mock.Anything, int64(1), ptrInt64(11)).Return(nil)
			},
			wantTaskID: 11,
		},
		{
			name:     "Fail: user already has an active task",
			userName: "Bob",
			taskName: "Call Mary",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
				runTx(tm)
				ur.On("LockUserByName", mock.Anything, "Bob").
					Return(model.User{ID: 1, UserName: "Bob", ActiveTaskID: ptrInt64(10)}, nil)
				// Задача не создаётся
			},
			wantCode: service.CodeDuplicateActiveTask,
		},
		{
			name:     "Fail: empty user",
			userName: "",
			taskName: "Eat banana",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
				// Репозитории не должны вызываться
			},
			wantCode: service.CodeEmptyField,
		},
		{
			name:     "Fail: empty task",
			userName: "Bob",
			taskName: "",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
			},
			wantCode: service.CodeEmptyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			tr := new(mocks.TaskRepository)
			tm := new(mocks.TransactionManager)
			tt.setupMocks(ur, tr, tm)

			svc := service.NewTrackerService(ur, tr, tm)
			taskID, err := svc.CheckIn(context.Background(), tt.userName, tt.taskName)

			if tt.wantCode != "" {
				assert.Error(t, err)
				appErr, ok := err.(*service.AppError)
				if assert.True(t, ok, "expected *service.AppError, got %T", err) {
					assert.Equal(t, tt.wantCode, appErr.Code)
					assert.Equal(t, 400, appErr.Status)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTaskID, taskID)
			}

			ur.AssertExpectations(t)
			tr.AssertExpectations(t)
			tm.AssertExpectations(t)
		})
	}
}

func TestTrackerService_CheckOut(t *testing.T) {
	tests := []struct {
		name       string
		userName   string
		setupMocks func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager)
		wantCode   string
	}{
		{
			name:     "Success",
			userName: "Bob",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
				runTx(tm)
				ur.On("LockUserByName", mock.Anything, "Bob").
					Return(model.User{ID: 1, UserName: "Bob", ActiveTaskID: ptrInt64(10)}, nil)
				tr.On("GetTask", mock.Anything, int64(10)).
					Return(model.Task{ID: 10, UserID: 1, TaskName: "Eat banana", Status: model.StatusActive}, nil)
				tr.On("FinishTask", mock.Anything, int64(10), mock.AnythingOfType("time.Time")).Return(nil)
				ur.On("SetActiveTask", mock.Anything, int64(1), (*int64)(nil)).Return(nil)
			},
		},
		{
			name:     "Fail: user not found",
			userName: "Bob",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
				runTx(tm)
				ur.On("LockUserByName", mock.Anything, "Bob").
					Return(model.User{}, repository.ErrUserNotFound)
			},
			wantCode: service.CodeUserNotFound,
		},
		{
			name:     "Fail: no active task",
			userName: "Bob",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
				runTx(tm)
				ur.On("LockUserByName", mock.Anything, "Bob").
					Return(model.User{ID: 1, UserName: "Bob"}, nil)
			},
			wantCode: service.CodeNoActiveTask,
		},
		{
			name:     "Fail: linked task already finished",
			userName: "Bob",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
				runTx(tm)
				ur.On("LockUserByName", mock.Anything, "Bob").
					Return(model.User{ID: 1, UserName: "Bob", ActiveTaskID: ptrInt64(10)}, nil)
				tr.On("GetTask", mock.Anything, int64(10)).
					Return(model.Task{ID: 10, UserID: 1, Status: model.StatusFinished}, nil)
			},
			wantCode: service.CodeNoActiveTask,
		},
		{
			name:     "Fail: empty user",
			userName: "",
			setupMocks: func(ur *mocks.UserRepository, tr *mocks.TaskRepository, tm *mocks.TransactionManager) {
			},
			wantCode: service.CodeEmptyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			tr := new(mocks.TaskRepository)
			tm := new(mocks.TransactionManager)
			tt.setupMocks(ur, tr, tm)

			svc := service.NewTrackerService(ur, tr, tm)
			err := svc.CheckOut(context.Background(), tt.userName)

			if tt.wantCode != "" {
				assert.Error(t, err)
				appErr, ok := err.(*service.AppError)
				if assert.True(t, ok, "expected *service.AppError, got %T", err) {
					assert.Equal(t, tt.wantCode, appErr.Code)
				}
			} else {
				assert.NoError(t, err)
			}

			ur.AssertExpectations(t)
			tr.AssertExpectations(t)
			tm.AssertExpectations(t)
		})
	}
}
