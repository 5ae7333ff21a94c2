package http_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "task-tracker-service/internal/http"
	"task-tracker-service/internal/http/mocks"
	"task-tracker-service/internal/model"
	"task-tracker-service/internal/service"
)

func newTestHandler(tracker *mocks.TrackerService, reports *mocks.ReportService) *httpapi.Handler {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return httpapi.NewHandler(tracker, reports, logger)
}

func TestHandler_CheckIn(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockBehavior   func(tracker *mocks.TrackerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"user": "Bob", "task": "Eat banana"}`,
			mockBehavior: func(tracker *mocks.TrackerService) {
				tracker.On("CheckIn", mock.Anything, "Bob", "Eat banana").Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"taskId":1}`,
		},
		{
			name: "Bad Request: Invalid JSON",
			body: `{"user": "Bob`,
			mockBehavior: func(tracker *mocks.TrackerService) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: Empty user",
			body: `{"user": "", "task": "Eat banana"}`,
			mockBehavior: func(tracker *mocks.TrackerService) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: Empty task",
			body: `{"user": "Bob", "task": ""}`,
			mockBehavior: func(tracker *mocks.TrackerService) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: Duplicate active task",
			body: `{"user": "Bob", "task": "Call Mary"}`,
			mockBehavior: func(tracker *mocks.TrackerService) {
				tracker.On("CheckIn", mock.Anything, "Bob", "Call Mary").
					Return(int64(0), service.ErrDomain(service.CodeDuplicateActiveTask, "Bob already has an active task."))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := new(mocks.TrackerService)
			reports := new(mocks.ReportService)
			tt.mockBehavior(tracker)

			h := newTestHandler(tracker, reports)

			req := httptest.NewRequest("POST", "/checkin/", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			tracker.AssertExpectations(t)
		})
	}
}

func TestHandler_CheckOut(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockBehavior   func(tracker *mocks.TrackerService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"user": "Bob"}`,
			mockBehavior: func(tracker *mocks.TrackerService) {
				tracker.On("CheckOut", mock.Anything, "Bob").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Bad Request: Invalid JSON",
			body: `{"user": "broken`,
			mockBehavior: func(tracker *mocks.TrackerService) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: Empty user",
			body: `{"user": ""}`,
			mockBehavior: func(tracker *mocks.TrackerService) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: User not found",
			body: `{"user": "Bob"}`,
			mockBehavior: func(tracker *mocks.TrackerService) {
				tracker.On("CheckOut", mock.Anything, "Bob").
					Return(service.ErrDomain(service.CodeUserNotFound, "Bob not found."))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: No active task",
			body: `{"user": "Bob"}`,
			mockBehavior: func(tracker *mocks.TrackerService) {
				tracker.On("CheckOut", mock.Anything, "Bob").
					Return(service.ErrDomain(service.CodeNoActiveTask, "Bob doesn't have an active task."))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := new(mocks.TrackerService)
			reports := new(mocks.ReportService)
			tt.mockBehavior(tracker)

			h := newTestHandler(tracker, reports)

			req := httptest.NewRequest("POST", "/checkout/", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tracker.AssertExpectations(t)
		})
	}
}

func TestHandler_Report(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		report := model.NewReport()
		report.Add("Bob", model.TaskEntry{TaskName: "Eat banana", Duration: "0 minutes"})
		report.Add("Mary", model.TaskEntry{TaskName: "Call Bob", Duration: "1 hours1 minutes"})

		tracker := new(mocks.TrackerService)
		reports := new(mocks.ReportService)
		reports.On("Build", mock.Anything).Return(report, nil)

		h := newTestHandler(tracker, reports)

		req := httptest.NewRequest("GET", "/report/", nil)
		w := httptest.NewRecorder()

		h.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"Bob":[{"Eat banana":"0 minutes"}],"Mary":[{"Call Bob":"1 hours1 minutes"}]}`,
			w.Body.String())
		reports.AssertExpectations(t)
	})

	t.Run("No Content: empty report", func(t *testing.T) {
		tracker := new(mocks.TrackerService)
		reports := new(mocks.ReportService)
		reports.On("Build", mock.Anything).Return(model.NewReport(), nil)

		h := newTestHandler(tracker, reports)

		req := httptest.NewRequest("GET", "/report/", nil)
		w := httptest.NewRecorder()

		h.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		reports.AssertExpectations(t)
	})

	t.Run("Internal Error", func(t *testing.T) {
		tracker := new(mocks.TrackerService)
		reports := new(mocks.ReportService)
		reports.On("Build", mock.Anything).
			Return(nil, service.ErrInternal("failed to build report", assert.AnError))

		h := newTestHandler(tracker, reports)

		req := httptest.NewRequest("GET", "/report/", nil)
		w := httptest.NewRecorder()

		h.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		reports.AssertExpectations(t)
	})
}
