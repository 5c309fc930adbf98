package schedule

import "context"

// WorkShiftRepository is the read-only shift calendar collaborator.
type WorkShiftRepository interface {
	GetByID(ctx context.Context, id string) (WorkShift, error)
}
