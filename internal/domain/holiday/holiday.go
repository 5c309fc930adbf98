package holiday

import (
	"context"
	"time"
)

type Holiday struct {
	ID   string
	Name string
	Date time.Time
	Type string // regular, special
}

// HolidayRepository is the read-only holiday calendar collaborator.
type HolidayRepository interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}
