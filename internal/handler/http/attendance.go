package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
	"github.com/fieldops/presence-backend-go/internal/handler/http/response"
	"github.com/fieldops/presence-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	GetDaily(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode mark request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor, err := jwt.ActorID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if req.ID != nil {
		response.SuccessWithMessage(w, "Attendance record updated", result)
		return
	}
	response.Created(w, "Attendance record created", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// GetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetMonthly(r.Context(), monthlyFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDaily implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	filter := attendance.DailyFilter{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.attendanceService.GetDaily(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// monthlyFilterFromQuery parses the shared user_id/month/year/scope query
// parameters. Non-numeric month or year is left zero for the filter's own
// validation to report.
func monthlyFilterFromQuery(r *http.Request) attendance.MonthlyFilter {
	q := r.URL.Query()

	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))

	return attendance.MonthlyFilter{
		UserID: q.Get("user_id"),
		Month:  month,
		Year:   year,
		Scope:  q.Get("scope"),
	}
}
