package report

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
	"github.com/fieldops/presence-backend-go/internal/domain/report"
	"github.com/fieldops/presence-backend-go/internal/domain/user"
	"github.com/fieldops/presence-backend-go/internal/pkg/export"
)

type ReportServiceImpl struct {
	records attendance.Repository
	users   user.Repository
}

func NewReportService(records attendance.Repository, users user.Repository) report.Service {
	return &ReportServiceImpl{
		records: records,
		users:   users,
	}
}

// monthData fetches and aggregates everything both sinks need.
func (s *ReportServiceImpl) monthData(ctx context.Context, filter attendance.MonthlyFilter) (user.User, []attendance.Record, attendance.MonthlySummary, error) {
	if err := filter.Validate(); err != nil {
		return user.User{}, nil, attendance.MonthlySummary{}, err
	}

	worker, err := s.users.GetByID(ctx, filter.UserID)
	if err != nil {
		return user.User{}, nil, attendance.MonthlySummary{}, err
	}

	records, err := s.records.ListByUserAndMonth(ctx, filter.UserID, filter.Year, time.Month(filter.Month))
	if err != nil {
		return user.User{}, nil, attendance.MonthlySummary{}, fmt.Errorf("failed to get attendance data: %w", err)
	}

	summary := attendance.Summarize(records)
	scoped := attendance.FilterByScope(records, filter.ParsedScope())

	return worker, scoped, summary, nil
}

// MonthlyExcel implements report.Service.
func (s *ReportServiceImpl) MonthlyExcel(ctx context.Context, filter attendance.MonthlyFilter) (report.File, error) {
	worker, records, summary, err := s.monthData(ctx, filter)
	if err != nil {
		return report.File{}, err
	}

	buf, err := export.MonthlyWorkbook(worker.FullName, filter.Year, time.Month(filter.Month), records, summary)
	if err != nil {
		return report.File{}, err
	}

	return report.File{
		Name:        fmt.Sprintf("attendance_%04d-%02d_%s.xlsx", filter.Year, filter.Month, worker.ID),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// MonthlyPDF implements report.Service.
func (s *ReportServiceImpl) MonthlyPDF(ctx context.Context, filter attendance.MonthlyFilter) (report.File, error) {
	worker, _, summary, err := s.monthData(ctx, filter)
	if err != nil {
		return report.File{}, err
	}

	buf, err := export.MonthlySummaryPDF(worker.FullName, filter.Year, time.Month(filter.Month), summary)
	if err != nil {
		return report.File{}, err
	}

	return report.File{
		Name:        fmt.Sprintf("attendance_%04d-%02d_%s.pdf", filter.Year, filter.Month, worker.ID),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}
