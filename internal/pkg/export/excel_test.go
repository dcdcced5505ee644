package export

import (
	"testing"
	"time"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMonthlyWorkbook_RendersRecordsAndTotals(t *testing.T) {
	t.Parallel()

	projectName := "Harbor Expansion"
	records := []attendance.Record{
		{
			ID:           "rec-1",
			UserID:       "worker-1",
			Date:         time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC),
			Presence:     attendance.PresencePresent,
			Type:         attendance.TypeProject,
			ProjectName:  &projectName,
			WorkingHours: 6,
			MarkedBy:     "admin-1",
		},
	}
	summary := attendance.Summarize(records)

	buf, err := MonthlyWorkbook("Dewi Lestari", 2024, time.May, records, summary)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Attendance", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Attendance 2024-05", title)

	name, err := f.GetCellValue("Attendance", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Dewi Lestari", name)

	date, err := f.GetCellValue("Attendance", "A4")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-13", date)

	project, err := f.GetCellValue("Attendance", "D4")
	require.NoError(t, err)
	assert.Equal(t, projectName, project)
}

func TestMonthlyWorkbook_EmptyMonth(t *testing.T) {
	t.Parallel()

	buf, err := MonthlyWorkbook("Dewi Lestari", 2024, time.January, nil, attendance.MonthlySummary{})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestMonthlySummaryPDF_ProducesDocument(t *testing.T) {
	t.Parallel()

	summary := attendance.MonthlySummary{
		Overall:       attendance.ScopeTotals{PresentDays: 20, WorkingHours: 160},
		Normal:        attendance.ScopeTotals{PresentDays: 15, WorkingHours: 120},
		Project:       attendance.ScopeTotals{PresentDays: 5, WorkingHours: 40},
		PaidLeaveDays: 2,
	}

	buf, err := MonthlySummaryPDF("Dewi Lestari", 2024, time.May, summary)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", buf.String()[:4])
}
