package http

import (
	"task-tracker-service/internal/service"
)

// ValidateCheckInRequest /checkin/ — тело запроса.
// Сервис повторяет эту проверку сам, но валидация здесь отсекает
// некорректные запросы до бизнес-слоя.
func ValidateCheckInRequest(req checkInRequest) error {
	if req.User == "" || req.Task == "" {
		return service.ErrDomain(service.CodeEmptyField, "Either user or task is an empty string.")
	}
	return nil
}

// ValidateCheckOutRequest /checkout/ — тело запроса
func ValidateCheckOutRequest(req checkOutRequest) error {
	if req.User == "" {
		return service.ErrDomain(service.CodeEmptyField, "User is an empty string.")
	}
	return nil
}
