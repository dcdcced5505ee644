package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func presentDraft() Draft {
	return Draft{
		UserID:       "worker-1",
		Date:         day("2024-05-13"),
		Presence:     PresencePresent,
		Type:         TypeNormal,
		WorkingHours: 8,
	}
}

func TestValidate_AcceptsPresentNormalRecord(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	got, err := Validate(d, nil)

	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestValidate_AcceptsPresentProjectRecord(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.Type = TypeProject
	d.ProjectID = strPtr("proj-7")
	d.OvertimeHours = 2.5

	got, err := Validate(d, nil)

	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestValidate_RejectsPaidLeaveAgainstProject(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.Presence = PresencePaidLeave
	d.Type = TypeProject
	d.ProjectID = strPtr("proj-7")
	d.WorkingHours = 0

	_, err := Validate(d, nil)

	var ruleErr *RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, RuleInvalidLeaveProject, ruleErr.Rule)
}

func TestValidate_NormalizesHoursOnAbsentRecord(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.Presence = PresenceAbsent
	d.WorkingHours = 8
	d.OvertimeHours = 1

	got, err := Validate(d, nil)

	require.NoError(t, err)
	assert.Zero(t, got.WorkingHours)
	assert.Zero(t, got.OvertimeHours)
}

func TestCheck_RejectsHoursOnAbsentRecord(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.Presence = PresenceAbsent
	d.WorkingHours = 8

	err := Check(d, nil)

	var ruleErr *RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, RuleNonZeroHoursOnAbsence, ruleErr.Rule)
}

func TestValidate_RejectsHoursOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		working  float64
		overtime float64
	}{
		{"working above cap", 25, 0},
		{"negative working", -1, 0},
		{"negative overtime", 8, -0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := presentDraft()
			d.WorkingHours = tt.working
			d.OvertimeHours = tt.overtime

			_, err := Validate(d, nil)

			var ruleErr *RuleError
			require.ErrorAs(t, err, &ruleErr)
			assert.Equal(t, RuleHoursOutOfRange, ruleErr.Rule)
		})
	}
}

func TestValidate_AcceptsBoundaryHours(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.WorkingHours = MaxWorkingHours

	_, err := Validate(d, nil)
	require.NoError(t, err)

	d.WorkingHours = 0
	_, err = Validate(d, nil)
	require.NoError(t, err)
}

func TestValidate_RejectsProjectRecordWithoutReference(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.Type = TypeProject
	d.ProjectID = nil

	_, err := Validate(d, nil)

	var ruleErr *RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, RuleMissingProjectReference, ruleErr.Rule)

	d.ProjectID = strPtr("")
	_, err = Validate(d, nil)
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, RuleMissingProjectReference, ruleErr.Rule)
}

func TestValidate_RejectsSecondPaidLeaveOnSameDate(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.Presence = PresencePaidLeave
	d.WorkingHours = 0

	sameDay := []Record{
		{ID: "rec-1", UserID: d.UserID, Date: d.Date, Presence: PresencePaidLeave, Type: TypeNormal},
	}

	_, err := Validate(d, sameDay)

	var ruleErr *RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, RuleDuplicatePaidLeave, ruleErr.Rule)
}

func TestValidate_AllowsPaidLeaveUpdateOfItself(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.ID = strPtr("rec-1")
	d.Presence = PresencePaidLeave
	d.WorkingHours = 0

	sameDay := []Record{
		{ID: "rec-1", UserID: d.UserID, Date: d.Date, Presence: PresencePaidLeave, Type: TypeNormal},
	}

	_, err := Validate(d, sameDay)
	require.NoError(t, err)
}

func TestValidate_AllowsPaidLeaveNextToPresentRecord(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.Presence = PresencePaidLeave
	d.WorkingHours = 0

	sameDay := []Record{
		{ID: "rec-2", UserID: d.UserID, Date: d.Date, Presence: PresencePresent, Type: TypeNormal, WorkingHours: 4},
	}

	_, err := Validate(d, sameDay)
	require.NoError(t, err)
}

func TestNormalize_ClearsProjectOnNormalType(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.ProjectID = strPtr("proj-7")

	got := Normalize(d)
	assert.Nil(t, got.ProjectID)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	drafts := []Draft{
		presentDraft(),
		{UserID: "w", Date: day("2024-05-01"), Presence: PresenceAbsent, Type: TypeNormal, WorkingHours: 3},
		{UserID: "w", Date: day("2024-05-01"), Presence: PresencePaidLeave, Type: TypeNormal, OvertimeHours: 1},
		{UserID: "w", Date: day("2024-05-01"), Presence: PresencePresent, Type: TypeProject, ProjectID: strPtr("p")},
	}

	for _, d := range drafts {
		once := Normalize(d)
		twice := Normalize(once)
		assert.Equal(t, once, twice)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	d := presentDraft()
	d.Presence = PresenceAbsent
	d.WorkingHours = 5
	before := d

	_, err := Validate(d, nil)

	require.NoError(t, err)
	assert.Equal(t, before, d)
}
