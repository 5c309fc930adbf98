package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/leave"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// HasApprovedLeave implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) HasApprovedLeave(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status = 'approved'
			  AND start_date <= $2
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}
	return exists, nil
}
