// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type checkInRequest struct {
	User string `json:"user"`
	Task string `json:"task"`
}

type checkInResponse struct {
	TaskID int64 `json:"taskId"`
}

type checkOutRequest struct {
	User string `json:"user"`
}
