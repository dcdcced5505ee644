package attendance

import (
	"time"

	"github.com/fieldops/presence-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MarkAttendanceRequest is the upsert payload for one attendance record.
// ID set means update, absent means create.
type MarkAttendanceRequest struct {
	ID            *string `json:"id,omitempty"`
	UserID        string  `json:"user_id"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Presence      string  `json:"presence"`
	Type          string  `json:"type"`
	ProjectID     *string `json:"project_id,omitempty"`
	WorkingHours  float64 `json:"working_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// Validate checks field shape only; the record invariants are enforced by
// the domain validator on the draft this request produces.
func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Presence(r.Presence).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "presence",
			Message: "presence must be one of: present, absent, paid_leave",
		})
	}

	if r.Type == "" {
		r.Type = string(TypeNormal) // Default type
	}
	if !RecordType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: normal, project",
		})
	}

	if r.ID != nil && validator.IsEmpty(*r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must not be empty when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Draft converts a validated request into a domain draft.
func (r *MarkAttendanceRequest) Draft() Draft {
	day, _ := validator.IsValidDate(r.Date)
	return Draft{
		ID:            r.ID,
		UserID:        r.UserID,
		Date:          day,
		Presence:      Presence(r.Presence),
		Type:          RecordType(r.Type),
		ProjectID:     r.ProjectID,
		WorkingHours:  r.WorkingHours,
		OvertimeHours: r.OvertimeHours,
	}
}

// MonthlyFilter selects one worker's calendar month and partition.
type MonthlyFilter struct {
	UserID string `json:"user_id"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
	Scope  string `json:"scope"` // all, normal, project
}

func (f *MonthlyFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(f.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if _, err := ParseScope(f.Scope); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "scope",
			Message: "scope must be one of: all, normal, project",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedScope returns the scope of a validated filter, defaulting to all.
func (f *MonthlyFilter) ParsedScope() Scope {
	scope, err := ParseScope(f.Scope)
	if err != nil {
		return ScopeAll
	}
	return scope
}

// DailyFilter selects one calendar day across all workers.
type DailyFilter struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (f *DailyFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(f.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Day returns the parsed day of a validated filter.
func (f *DailyFilter) Day() time.Time {
	day, _ := validator.IsValidDate(f.Date)
	return day
}

// ========================================
// RESPONSE DTOs
// ========================================

type RecordResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      *string `json:"user_name,omitempty"`
	Date          string  `json:"date"`
	Presence      string  `json:"presence"`
	Type          string  `json:"type"`
	ProjectID     *string `json:"project_id,omitempty"`
	ProjectName   *string `json:"project_name,omitempty"`
	WorkingHours  float64 `json:"working_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	MarkedBy      string  `json:"marked_by"`
	MarkedAt      string  `json:"marked_at"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		UserName:      r.UserName,
		Date:          DateKey(r.Date),
		Presence:      string(r.Presence),
		Type:          string(r.Type),
		ProjectID:     r.ProjectID,
		ProjectName:   r.ProjectName,
		WorkingHours:  r.WorkingHours,
		OvertimeHours: r.OvertimeHours,
		MarkedBy:      r.MarkedBy,
		MarkedAt:      r.MarkedAt.Format(time.RFC3339),
	}
}

func NewRecordResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordResponse(r))
	}
	return out
}

type DayStateResponse struct {
	Date         string `json:"date"`
	Badge        string `json:"badge"`
	HasPaidLeave bool   `json:"has_paid_leave"`
	HasPresent   bool   `json:"has_present"`
	HasAbsent    bool   `json:"has_absent"`
	RecordCount  int    `json:"record_count"`
}

func NewDayStateResponse(s DayState) DayStateResponse {
	return DayStateResponse{
		Date:         DateKey(s.Date),
		Badge:        string(s.Badge),
		HasPaidLeave: s.HasPaidLeave,
		HasPresent:   s.HasPresent,
		HasAbsent:    s.HasAbsent,
		RecordCount:  s.RecordCount,
	}
}

type ScopeTotalsResponse struct {
	PresentDays   int     `json:"present_days"`
	WorkingHours  float64 `json:"working_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

type MonthlySummaryResponse struct {
	Overall       ScopeTotalsResponse `json:"overall"`
	Normal        ScopeTotalsResponse `json:"normal"`
	Project       ScopeTotalsResponse `json:"project"`
	PaidLeaveDays int                 `json:"paid_leave_days"`
}

func NewMonthlySummaryResponse(m MonthlySummary) MonthlySummaryResponse {
	convert := func(t ScopeTotals) ScopeTotalsResponse {
		return ScopeTotalsResponse{
			PresentDays:   t.PresentDays,
			WorkingHours:  t.WorkingHours,
			OvertimeHours: t.OvertimeHours,
		}
	}
	return MonthlySummaryResponse{
		Overall:       convert(m.Overall),
		Normal:        convert(m.Normal),
		Project:       convert(m.Project),
		PaidLeaveDays: m.PaidLeaveDays,
	}
}

type MonthlyAttendanceResponse struct {
	UserID  string                 `json:"user_id"`
	Month   int                    `json:"month"`
	Year    int                    `json:"year"`
	Scope   string                 `json:"scope"`
	Records []RecordResponse       `json:"records"`
	Days    []DayStateResponse     `json:"days"`
	Summary MonthlySummaryResponse `json:"summary"`
}

type WorkerDayResponse struct {
	UserID   string           `json:"user_id"`
	UserName string           `json:"user_name"`
	Day      DayStateResponse `json:"day"`
	Records  []RecordResponse `json:"records"`
}

type DailyAttendanceResponse struct {
	Date    string              `json:"date"`
	Workers []WorkerDayResponse `json:"workers"`
}
