package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

// MonthlyWorkbook renders one worker's month as a spreadsheet: one row per
// record, followed by the per-scope totals block. Pure presentation; no
// invariants of its own.
func MonthlyWorkbook(userName string, year int, month time.Month, records []attendance.Record, summary attendance.MonthlySummary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Attendance %04d-%02d", year, int(month)))
	f.SetCellValue(sheet, "B1", userName)

	headers := []string{"Date", "Presence", "Type", "Project", "Working Hours", "Overtime Hours", "Marked By"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c3", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 4
	for _, rec := range records {
		projectName := ""
		if rec.ProjectName != nil {
			projectName = *rec.ProjectName
		} else if rec.ProjectID != nil {
			projectName = *rec.ProjectID
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), attendance.DateKey(rec.Date))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), string(rec.Presence))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), string(rec.Type))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), projectName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), rec.WorkingHours)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), rec.OvertimeHours)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), rec.MarkedBy)
		rowNum++
	}

	rowNum++ // blank separator row
	totals := []struct {
		label string
		t     attendance.ScopeTotals
	}{
		{"Overall", summary.Overall},
		{"Normal", summary.Normal},
		{"Project", summary.Project},
	}
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "Totals")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), "Present Days")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), "Working Hours")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), "Overtime Hours")
	rowNum++
	for _, row := range totals {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.t.PresentDays)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.t.WorkingHours)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.t.OvertimeHours)
		rowNum++
	}
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "Paid Leave Days")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), summary.PaidLeaveDays)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf, nil
}
