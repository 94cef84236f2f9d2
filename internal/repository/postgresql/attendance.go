package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opshr/workforce-automation/internal/domain/attendance"
	"github.com/opshr/workforce-automation/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ExistsForDate(ctx context.Context, employeeID string, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM attendances
			WHERE employee_id = $1 AND date = $2
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, day.Format("2006-01-02")).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

// InsertIfAbsent relies on the uk_employee_date unique constraint on
// (employee_id, date). ON CONFLICT DO NOTHING makes the insert atomic with
// respect to concurrent automation runs; a conflicting insert reports
// AlreadyExists instead of failing.
func (r *attendanceRepository) InsertIfAbsent(ctx context.Context, record attendance.Attendance) (attendance.InsertResult, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, check_in, check_out, working_minutes, status,
			is_late, late_minutes, is_early_departure, early_departure_minutes,
			overtime_minutes, break_duration, notes, is_manual_entry, location
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT ON CONSTRAINT uk_employee_date DO NOTHING
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date.Format("2006-01-02"), record.CheckIn, record.CheckOut,
		record.WorkingMinutes, record.Status,
		record.IsLate, record.LateMinutes, record.IsEarlyDeparture, record.EarlyDepartureMinutes,
		record.OvertimeMinutes, record.BreakDuration, record.Notes, record.IsManualEntry, record.Location,
	).Scan(&id)
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row when the record already exists.
		if err == pgx.ErrNoRows {
			return attendance.AlreadyExists, nil
		}
		return "", fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return attendance.Inserted, nil
}

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) attendance.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) IsHoliday(ctx context.Context, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Holidays match on calendar day regardless of stored time-of-day.
	query := `
		SELECT EXISTS(
			SELECT 1 FROM holidays
			WHERE date::date = $1
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, day.Format("2006-01-02")).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}
