package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/opshr/workforce-automation/internal/domain/leave"
	"github.com/opshr/workforce-automation/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) HasApprovedLeaveOn(ctx context.Context, employeeID string, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Inclusive on both ends of the application's date range.
	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_applications
			WHERE employee_id = $1
				AND status = 'approved'
				AND start_date::date <= $2
				AND end_date::date >= $2
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, day.Format("2006-01-02")).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}

	return exists, nil
}
