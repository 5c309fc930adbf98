package importjob

import (
	"context"
	"time"
)

type ImportJobRepository interface {
	// Create persists the job in the processing state.
	Create(ctx context.Context, job ImportJob) (ImportJob, error)

	// Finish records the terminal state, counters, errors and completion
	// timestamp.
	Finish(ctx context.Context, job ImportJob) error

	GetByID(ctx context.Context, id string) (ImportJob, error)

	List(ctx context.Context, limit, offset int) ([]ImportJob, int64, error)

	// HasOverlappingPeriod reports whether a non-failed job's declared period
	// overlaps [start, end].
	HasOverlappingPeriod(ctx context.Context, start, end time.Time) (bool, error)
}
