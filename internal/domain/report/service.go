package report

import (
	"context"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
)

// File is a rendered export ready to stream to the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Service renders the monthly export sinks. Both are pure presentations of
// the monthly summary and the raw records; they impose no extra invariants.
type Service interface {
	// MonthlyExcel renders one row per record plus a totals block.
	MonthlyExcel(ctx context.Context, filter attendance.MonthlyFilter) (File, error)

	// MonthlyPDF renders the printable summary.
	MonthlyPDF(ctx context.Context, filter attendance.MonthlyFilter) (File, error)
}
