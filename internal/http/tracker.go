package http

import (
	"encoding/json"
	"net/http"

	"task-tracker-service/internal/service"
)

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	const handlerName = "check_in"

	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCheckInRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	taskID, err := h.Tracker.CheckIn(ctx, req.User, req.Task)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := checkInResponse{TaskID: taskID}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	const handlerName = "check_out"

	var req checkOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCheckOutRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Tracker.CheckOut(ctx, req.User); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{}`))
}
