package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/schedule"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/database"
)

type workShiftRepository struct {
	db *database.DB
}

func NewWorkShiftRepository(db *database.DB) schedule.WorkShiftRepository {
	return &workShiftRepository{db: db}
}

// GetByID implements schedule.WorkShiftRepository. The per-weekday flags are
// stored as seven boolean columns and folded into the ISO-weekday map.
func (r *workShiftRepository) GetByID(ctx context.Context, id string) (schedule.WorkShift, error) {
	query := `
		SELECT id, name,
			   monday, tuesday, wednesday, thursday, friday, saturday, sunday,
			   created_at, updated_at
		FROM work_shifts
		WHERE id = $1
	`

	var (
		shift schedule.WorkShift
		days  [7]bool
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&shift.ID, &shift.Name,
		&days[0], &days[1], &days[2], &days[3], &days[4], &days[5], &days[6],
		&shift.CreatedAt, &shift.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkShift{}, fmt.Errorf("work shift %s not found: %w", id, err)
		}
		return schedule.WorkShift{}, fmt.Errorf("failed to get work shift: %w", err)
	}

	shift.Days = make(map[int]bool, 7)
	for i, working := range days {
		shift.Days[i+1] = working
	}

	return shift, nil
}
