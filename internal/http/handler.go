package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"task-tracker-service/internal/model"
	"task-tracker-service/internal/service"
)

// TrackerService описывает контракт сервиса чекина/чекаута для HTTP-слоя.
type TrackerService interface {
	CheckIn(ctx context.Context, userName, taskName string) (int64, error)
	CheckOut(ctx context.Context, userName string) error
}

// ReportService описывает контракт сервиса отчёта для HTTP-слоя.
type ReportService interface {
	Build(ctx context.Context) (*model.Report, error)
}

type Handler struct {
	Tracker TrackerService
	Reports ReportService
	Log     *slog.Logger
}

func NewHandler(tracker TrackerService, reports ReportService, log *slog.Logger) *Handler {
	return &Handler{
		Tracker: tracker,
		Reports: reports,
		Log:     log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", h.handleHealth)

	r.Post("/checkin/", h.handleCheckIn)
	r.Post("/checkout/", h.handleCheckOut)
	r.Get("/report/", h.handleReport)

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
