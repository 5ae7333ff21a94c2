package service

import (
	"fmt"
	"net/http"
)

// Коды доменных ошибок трекера. Все они означают некорректный с точки зрения
// домена запрос и отдаются клиенту со статусом 400; инфраструктурные сбои
// в эту таксономию не входят и уходят наружу как INTERNAL.
const (
	CodeEmptyField          = "EMPTY_FIELD"
	CodeDuplicateActiveTask = "DUPLICATE_ACTIVE_TASK"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeNoActiveTask        = "NO_ACTIVE_TASK"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrDomain конструирует AppError для доменных ошибок трекера
// (пустое поле, дубль активной задачи, нет пользователя, нет активной задачи).
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrInternal оборачивает инфраструктурную ошибку в AppError со статусом 500.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
