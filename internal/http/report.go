package http

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	const handlerName = "report"

	ctx := r.Context()
	report, err := h.Reports.Build(ctx)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	// Пустой отчёт — это не пустой объект, а явный сигнал "нет содержимого"
	if report.Len() == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}
