package attendance

import (
	"errors"
	"testing"

	"github.com/fieldops/presence-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequest_Validate(t *testing.T) {
	t.Parallel()

	req := MarkAttendanceRequest{
		UserID:       "worker-1",
		Date:         "2024-05-13",
		Presence:     "present",
		WorkingHours: 8,
	}

	require.NoError(t, req.Validate())
	// missing type defaults to normal
	assert.Equal(t, string(TypeNormal), req.Type)
}

func TestMarkAttendanceRequest_Validate_CollectsFieldErrors(t *testing.T) {
	t.Parallel()

	req := MarkAttendanceRequest{
		UserID:   "",
		Date:     "13/05/2024",
		Presence: "holiday",
	}

	err := req.Validate()

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	m := errs.ToMap()
	assert.Contains(t, m, "user_id")
	assert.Contains(t, m, "date")
	assert.Contains(t, m, "presence")
}

func TestMarkAttendanceRequest_Draft(t *testing.T) {
	t.Parallel()

	req := MarkAttendanceRequest{
		UserID:       "worker-1",
		Date:         "2024-05-13",
		Presence:     "present",
		Type:         "project",
		ProjectID:    strPtr("proj-7"),
		WorkingHours: 6,
	}
	require.NoError(t, req.Validate())

	d := req.Draft()
	assert.Equal(t, day("2024-05-13"), d.Date)
	assert.Equal(t, PresencePresent, d.Presence)
	assert.Equal(t, TypeProject, d.Type)
}

func TestMonthlyFilter_Validate(t *testing.T) {
	t.Parallel()

	valid := MonthlyFilter{UserID: "worker-1", Month: 5, Year: 2024, Scope: "project"}
	require.NoError(t, valid.Validate())
	assert.Equal(t, ScopeProject, valid.ParsedScope())

	empty := MonthlyFilter{UserID: "worker-1", Month: 5, Year: 2024}
	require.NoError(t, empty.Validate())
	assert.Equal(t, ScopeAll, empty.ParsedScope())

	bad := MonthlyFilter{UserID: "", Month: 0, Year: 1800, Scope: "weekend"}
	err := bad.Validate()

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 4)
}

func TestDailyFilter_Validate(t *testing.T) {
	t.Parallel()

	valid := DailyFilter{Date: "2024-05-13"}
	require.NoError(t, valid.Validate())
	assert.Equal(t, day("2024-05-13"), valid.Day())

	bad := DailyFilter{Date: "yesterday"}
	assert.Error(t, bad.Validate())
}
