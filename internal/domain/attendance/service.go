package attendance

import (
	"context"
)

// Service defines the business flows around attendance records. Every
// mutating call takes the acting operator as an explicit markedBy parameter;
// there is no ambient current user.
type Service interface {
	// Mark upserts one attendance record: normalize, validate (including
	// the one-paid-leave-per-day check against the day's other records),
	// then persist. No write happens on a validation failure.
	Mark(ctx context.Context, markedBy string, req MarkAttendanceRequest) (RecordResponse, error)

	// Delete removes a record; ErrRecordNotFound when another operator got
	// there first, in which case callers should re-fetch the affected scope.
	Delete(ctx context.Context, id string) error

	// GetMonthly returns one worker's month: raw records filtered to the
	// requested scope, per-day merged states, and the full monthly summary.
	GetMonthly(ctx context.Context, filter MonthlyFilter) (MonthlyAttendanceResponse, error)

	// GetDaily returns every active worker's state for one calendar day,
	// including workers with no records (empty day state).
	GetDaily(ctx context.Context, filter DailyFilter) (DailyAttendanceResponse, error)
}
