package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthRec(date string, presence Presence, recordType RecordType, working, overtime float64) Record {
	return Record{
		UserID:        "worker-1",
		Date:          day(date),
		Presence:      presence,
		Type:          recordType,
		WorkingHours:  working,
		OvertimeHours: overtime,
	}
}

func TestSummarize_EmptyMonthYieldsZeroTotals(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil)

	assert.Equal(t, MonthlySummary{}, summary)
}

func TestSummarize_SplitsHoursPerPartition(t *testing.T) {
	t.Parallel()

	records := []Record{
		monthRec("2024-05-01", PresencePresent, TypeNormal, 8, 0),
		monthRec("2024-05-02", PresencePresent, TypeProject, 6, 2),
		monthRec("2024-05-03", PresencePresent, TypeNormal, 7.5, 1),
	}

	summary := Summarize(records)

	assert.Equal(t, 15.5, summary.Normal.WorkingHours)
	assert.Equal(t, 1.0, summary.Normal.OvertimeHours)
	assert.Equal(t, 6.0, summary.Project.WorkingHours)
	assert.Equal(t, 2.0, summary.Project.OvertimeHours)
	assert.Equal(t, 21.5, summary.Overall.WorkingHours)
	assert.Equal(t, 3.0, summary.Overall.OvertimeHours)
}

func TestSummarize_PresentDaysCountDistinctDates(t *testing.T) {
	t.Parallel()

	// two present records on the same date, one normal and one project
	records := []Record{
		monthRec("2024-05-01", PresencePresent, TypeNormal, 4, 0),
		monthRec("2024-05-01", PresencePresent, TypeProject, 4, 0),
		monthRec("2024-05-02", PresencePresent, TypeNormal, 8, 0),
	}

	summary := Summarize(records)

	assert.Equal(t, 2, summary.Overall.PresentDays)
	assert.Equal(t, 2, summary.Normal.PresentDays)
	assert.Equal(t, 1, summary.Project.PresentDays)
}

func TestSummarize_OverallDaysAtLeastEachPartition(t *testing.T) {
	t.Parallel()

	records := []Record{
		monthRec("2024-05-01", PresencePresent, TypeNormal, 8, 0),
		monthRec("2024-05-02", PresencePresent, TypeProject, 8, 0),
		monthRec("2024-05-03", PresencePresent, TypeProject, 8, 0),
	}

	summary := Summarize(records)

	assert.GreaterOrEqual(t, summary.Overall.PresentDays, summary.Normal.PresentDays)
	assert.GreaterOrEqual(t, summary.Overall.PresentDays, summary.Project.PresentDays)
	assert.Equal(t, 3, summary.Overall.PresentDays)
}

func TestSummarize_PaidLeaveContributesNoHoursOrDays(t *testing.T) {
	t.Parallel()

	records := []Record{
		monthRec("2024-05-01", PresencePresent, TypeNormal, 8, 0),
		monthRec("2024-05-02", PresencePaidLeave, TypeNormal, 0, 0),
		monthRec("2024-05-03", PresencePaidLeave, TypeNormal, 0, 0),
	}

	summary := Summarize(records)

	assert.Equal(t, 1, summary.Overall.PresentDays)
	assert.Equal(t, 8.0, summary.Overall.WorkingHours)
	assert.Equal(t, 2, summary.PaidLeaveDays)
}

func TestSummarize_AbsentRecordsAddNothing(t *testing.T) {
	t.Parallel()

	records := []Record{
		monthRec("2024-05-01", PresenceAbsent, TypeNormal, 0, 0),
		monthRec("2024-05-02", PresenceAbsent, TypeProject, 0, 0),
	}

	summary := Summarize(records)

	assert.Zero(t, summary.Overall.PresentDays)
	assert.Zero(t, summary.Overall.WorkingHours)
	assert.Zero(t, summary.PaidLeaveDays)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	t.Parallel()

	records := []Record{
		monthRec("2024-05-01", PresencePresent, TypeNormal, 8, 0),
		monthRec("2024-05-01", PresencePresent, TypeProject, 2, 1),
		monthRec("2024-05-02", PresencePaidLeave, TypeNormal, 0, 0),
		monthRec("2024-05-03", PresenceAbsent, TypeNormal, 0, 0),
	}

	forward := Summarize(records)

	reversed := make([]Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}
	backward := Summarize(reversed)

	assert.Equal(t, forward, backward)
}

func TestForScope_PicksPartitionTotals(t *testing.T) {
	t.Parallel()

	summary := MonthlySummary{
		Overall: ScopeTotals{PresentDays: 5},
		Normal:  ScopeTotals{PresentDays: 3},
		Project: ScopeTotals{PresentDays: 2},
	}

	assert.Equal(t, summary.Overall, summary.ForScope(ScopeAll))
	assert.Equal(t, summary.Normal, summary.ForScope(ScopeNormal))
	assert.Equal(t, summary.Project, summary.ForScope(ScopeProject))
}

func TestParseScope(t *testing.T) {
	t.Parallel()

	scope, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeAll, scope)

	scope, err = ParseScope("project")
	require.NoError(t, err)
	assert.Equal(t, ScopeProject, scope)

	_, err = ParseScope("weekend")
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestFilterByScope(t *testing.T) {
	t.Parallel()

	records := []Record{
		monthRec("2024-05-01", PresencePresent, TypeNormal, 8, 0),
		monthRec("2024-05-02", PresencePresent, TypeProject, 6, 0),
		monthRec("2024-05-03", PresencePaidLeave, TypeNormal, 0, 0),
	}

	assert.Len(t, FilterByScope(records, ScopeAll), 3)
	assert.Len(t, FilterByScope(records, ScopeProject), 1)

	// paid leave is stored normal-typed and travels with the normal partition
	normal := FilterByScope(records, ScopeNormal)
	assert.Len(t, normal, 2)
	for _, r := range normal {
		assert.Equal(t, TypeNormal, r.Type)
	}
}

func TestDateKey(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-03", DateKey(d))
}
