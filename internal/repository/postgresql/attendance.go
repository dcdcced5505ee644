package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldops/presence-backend-go/internal/domain/attendance"
	"github.com/fieldops/presence-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const recordColumns = `
	a.id, a.user_id, a.date, a.presence, a.type, a.project_id,
	a.working_hours, a.overtime_hours, a.marked_by, a.marked_at,
	u.full_name AS user_name,
	p.name AS project_name
`

const recordJoins = `
	FROM attendance_records a
	LEFT JOIN users u ON u.id = a.user_id
	LEFT JOIN projects p ON p.id = a.project_id
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.Presence, &rec.Type, &rec.ProjectID,
		&rec.WorkingHours, &rec.OvertimeHours, &rec.MarkedBy, &rec.MarkedAt,
		&rec.UserName, &rec.ProjectName,
	)
	return rec, err
}

func (a *attendanceRepository) collect(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, user_id, date, presence, type, project_id,
			working_hours, overtime_hours, marked_by, marked_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING marked_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Date,
		rec.Presence,
		rec.Type,
		rec.ProjectID,
		rec.WorkingHours,
		rec.OvertimeHours,
		rec.MarkedBy,
		rec.MarkedAt,
	).Scan(&rec.MarkedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records SET
			date = $2,
			presence = $3,
			type = $4,
			project_id = $5,
			working_hours = $6,
			overtime_hours = $7,
			marked_by = $8,
			marked_at = $9
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.Date,
		rec.Presence,
		rec.Type,
		rec.ProjectID,
		rec.WorkingHours,
		rec.OvertimeHours,
		rec.MarkedBy,
		rec.MarkedAt,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return rec, nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + recordColumns + recordJoins + ` WHERE a.id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// ListByUserAndDate implements attendance.Repository.
func (a *attendanceRepository) ListByUserAndDate(ctx context.Context, userID string, day time.Time) ([]attendance.Record, error) {
	query := `SELECT ` + recordColumns + recordJoins + `
		WHERE a.user_id = $1 AND a.date = $2
		ORDER BY a.marked_at
	`
	return a.collect(ctx, query, userID, day)
}

// ListByUserAndMonth implements attendance.Repository.
func (a *attendanceRepository) ListByUserAndMonth(ctx context.Context, userID string, year int, month time.Month) ([]attendance.Record, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := `SELECT ` + recordColumns + recordJoins + `
		WHERE a.user_id = $1 AND a.date >= $2 AND a.date < $3
		ORDER BY a.date, a.marked_at
	`
	return a.collect(ctx, query, userID, monthStart, nextMonth)
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, day time.Time) ([]attendance.Record, error) {
	query := `SELECT ` + recordColumns + recordJoins + `
		WHERE a.date = $1
		ORDER BY u.full_name, a.marked_at
	`
	return a.collect(ctx, query, day)
}
