package handlers

import (
	"fmt"
	"net/http"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/dto"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/validation"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/export"
)

type ExportHandler struct {
	engine *export.Engine
}

func NewExportHandler(engine *export.Engine) *ExportHandler {
	return &ExportHandler{engine: engine}
}

// Export handles GET /api/v1/admin/export. Query parameters pre_user_id,
// table_id, start_date and end_date (YYYY-MM-DD) each narrow the result;
// all are optional. The response streams as a CSV attachment.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var filter export.Filter

	q := r.URL.Query()
	if raw := q.Get("pre_user_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid pre_user_id"})
			return
		}
		filter.PreUserID = &id
	}
	if raw := q.Get("table_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid table_id"})
			return
		}
		filter.TableID = &id
	}
	if raw := q.Get("start_date"); raw != "" {
		t, ok := validation.ParseDate(raw)
		if !ok {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start_date, want YYYY-MM-DD"})
			return
		}
		filter.StartDate = &t
	}
	if raw := q.Get("end_date"); raw != "" {
		t, ok := validation.ParseDate(raw)
		if !ok {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end_date, want YYYY-MM-DD"})
			return
		}
		filter.EndDate = &t
	}

	rows, err := h.engine.ExportFiltered(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Export failed"})
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)

	_ = export.WriteCSV(w, rows)
}
