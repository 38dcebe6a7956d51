package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/export"
)

// loadScheduleForExport 读取待导出的坐班表，出错时直接写响应并返回 nil
func (h *Handler) loadScheduleForExport(w http.ResponseWriter, r *http.Request) *domain.ScheduleRecord {
	yearMonth := r.Context().Value(YearMonthCtx).(YearMonth)

	record, err := h.repository.GetMonthlySchedule(yearMonth.Year, yearMonth.Month)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "该月份还没有保存坐班表")
		default:
			h.internalServerError(w, r, err)
		}
		return nil
	}

	return record
}

func (h *Handler) ExportScheduleCSV(w http.ResponseWriter, r *http.Request) {
	record := h.loadScheduleForExport(w, r)
	if record == nil {
		return
	}

	data, err := export.BuildCSV(record.Roster)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filename := export.Filename(record.Year, record.Month, "csv")
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) ExportScheduleXLSX(w http.ResponseWriter, r *http.Request) {
	record := h.loadScheduleForExport(w, r)
	if record == nil {
		return
	}

	data, err := export.BuildXLSX(record.Roster)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filename := export.Filename(record.Year, record.Month, "xlsx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		h.logInternalServerError(r, err)
	}
}
