package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
	"github.com/fieldops/presence-backend-go/internal/domain/project"
	"github.com/fieldops/presence-backend-go/internal/domain/user"
	"github.com/fieldops/presence-backend-go/internal/pkg/cache"
	"github.com/fieldops/presence-backend-go/internal/pkg/database"
	"github.com/fieldops/presence-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	repo     attendance.Repository
	users    user.Repository
	projects project.Repository
	cache    *cache.MonthCache

	// runTx wraps the duplicate-check-then-write section of Mark; the
	// partial unique index on paid-leave records backs it against races.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	repo attendance.Repository,
	users user.Repository,
	projects project.Repository,
	monthCache *cache.MonthCache,
) attendance.Service {
	return &AttendanceServiceImpl{
		repo:     repo,
		users:    users,
		projects: projects,
		cache:    monthCache,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Mark implements attendance.Service.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, markedBy string, req attendance.MarkAttendanceRequest) (attendance.RecordResponse, error) {
	if markedBy == "" {
		return attendance.RecordResponse{}, fmt.Errorf("markedBy is required for every mutating call")
	}

	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	draft := req.Draft()

	if _, err := s.users.GetByID(ctx, draft.UserID); err != nil {
		return attendance.RecordResponse{}, err
	}

	var saved attendance.Record
	var previous *attendance.Record

	err := s.runTx(ctx, func(ctx context.Context) error {
		sameDay, err := s.repo.ListByUserAndDate(ctx, draft.UserID, draft.Date)
		if err != nil {
			return err
		}

		normalized, err := attendance.Validate(draft, sameDay)
		if err != nil {
			return err
		}

		if normalized.ProjectID != nil {
			if _, err := s.projects.GetByID(ctx, *normalized.ProjectID); err != nil {
				return err
			}
		}

		rec := attendance.Record{
			UserID:        normalized.UserID,
			Date:          normalized.Date,
			Presence:      normalized.Presence,
			Type:          normalized.Type,
			ProjectID:     normalized.ProjectID,
			WorkingHours:  normalized.WorkingHours,
			OvertimeHours: normalized.OvertimeHours,
			MarkedBy:      markedBy,
			MarkedAt:      time.Now().UTC(),
		}

		if normalized.ID != nil {
			existing, err := s.repo.GetByID(ctx, *normalized.ID)
			if err != nil {
				return err
			}
			previous = &existing

			rec.ID = *normalized.ID
			saved, err = s.repo.Update(ctx, rec)
			return err
		}

		saved, err = s.repo.Create(ctx, rec)
		return err
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	s.cache.Invalidate(ctx, saved.UserID, saved.Date.Year(), saved.Date.Month())
	if previous != nil && !previous.SameDayAs(saved.Date) {
		// An edit may move a record across months; drop the old key too.
		s.cache.Invalidate(ctx, previous.UserID, previous.Date.Year(), previous.Date.Month())
	}

	return attendance.NewRecordResponse(saved), nil
}

// Delete implements attendance.Service.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, rec.UserID, rec.Date.Year(), rec.Date.Month())
	return nil
}

// GetMonthly implements attendance.Service.
func (s *AttendanceServiceImpl) GetMonthly(ctx context.Context, filter attendance.MonthlyFilter) (attendance.MonthlyAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}
	scope := filter.ParsedScope()
	month := time.Month(filter.Month)

	records, err := s.repo.ListByUserAndMonth(ctx, filter.UserID, filter.Year, month)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	var summary attendance.MonthlySummary
	if cached := s.cache.Summary(ctx, filter.UserID, filter.Year, month); cached != nil {
		summary = *cached
	} else {
		summary = attendance.Summarize(records)
		s.cache.Store(ctx, filter.UserID, filter.Year, month, summary)
	}

	scoped := attendance.FilterByScope(records, scope)

	return attendance.MonthlyAttendanceResponse{
		UserID:  filter.UserID,
		Month:   filter.Month,
		Year:    filter.Year,
		Scope:   string(scope),
		Records: attendance.NewRecordResponses(scoped),
		Days:    dayStates(scoped),
		Summary: attendance.NewMonthlySummaryResponse(summary),
	}, nil
}

// GetDaily implements attendance.Service.
func (s *AttendanceServiceImpl) GetDaily(ctx context.Context, filter attendance.DailyFilter) (attendance.DailyAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}
	day := filter.Day()

	records, err := s.repo.ListByDate(ctx, day)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	workers, err := s.users.List(ctx)
	if err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	byUser := make(map[string][]attendance.Record)
	for _, rec := range records {
		byUser[rec.UserID] = append(byUser[rec.UserID], rec)
	}

	rows := make([]attendance.WorkerDayResponse, 0, len(workers))
	for _, w := range workers {
		recs := byUser[w.ID]
		rows = append(rows, attendance.WorkerDayResponse{
			UserID:   w.ID,
			UserName: w.FullName,
			Day:      attendance.NewDayStateResponse(attendance.ResolveDay(day, recs)),
			Records:  attendance.NewRecordResponses(recs),
		})
	}

	return attendance.DailyAttendanceResponse{
		Date:    attendance.DateKey(day),
		Workers: rows,
	}, nil
}

// dayStates merges a month's records into one state per calendar day,
// ordered by date.
func dayStates(records []attendance.Record) []attendance.DayStateResponse {
	grouped := attendance.GroupByDate(records)

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	states := make([]attendance.DayStateResponse, 0, len(keys))
	for _, key := range keys {
		recs := grouped[key]
		states = append(states, attendance.NewDayStateResponse(
			attendance.ResolveDay(recs[0].Date, recs),
		))
	}
	return states
}
