package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
	"github.com/jung-kurt/gofpdf/v2"
)

// MonthlySummaryPDF renders the printable monthly summary for one worker.
func MonthlySummaryPDF(userName string, year int, month time.Month, summary attendance.MonthlySummary) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Monthly Attendance Summary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, fmt.Sprintf("Worker: %s", userName))
	pdf.Ln(8)
	pdf.Cell(40, 10, fmt.Sprintf("Period: %04d-%02d", year, int(month)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(50, 10, "Scope")
	pdf.Cell(45, 10, "Present Days")
	pdf.Cell(45, 10, "Working Hours")
	pdf.Cell(45, 10, "Overtime Hours")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	rows := []struct {
		label string
		t     attendance.ScopeTotals
	}{
		{"Overall", summary.Overall},
		{"Normal", summary.Normal},
		{"Project", summary.Project},
	}
	for _, row := range rows {
		pdf.Cell(50, 8, row.label)
		pdf.Cell(45, 8, fmt.Sprintf("%d", row.t.PresentDays))
		pdf.Cell(45, 8, fmt.Sprintf("%.2f", row.t.WorkingHours))
		pdf.Cell(45, 8, fmt.Sprintf("%.2f", row.t.OvertimeHours))
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.Cell(50, 8, "Paid Leave Days")
	pdf.Cell(45, 8, fmt.Sprintf("%d", summary.PaidLeaveDays))
	pdf.Ln(12)

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 10, fmt.Sprintf("Generated at: %s", time.Now().Format("02 January 2006 15:04:05")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing pdf: %w", err)
	}
	return &buf, nil
}
