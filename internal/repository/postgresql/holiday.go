package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/holiday"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// IsHoliday implements holiday.HolidayRepository.
func (r *holidayRepository) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}
	return exists, nil
}
