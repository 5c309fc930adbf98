package attendance

import (
	"context"
	"io"
	"time"
)

// ImportService is the batch ingestion pipeline: one readable tabular file
// in, one terminal import-job state out.
type ImportService interface {
	// Import runs the full pipeline. It returns an error only on
	// unrecoverable setup failure; row-level failures are accumulated in the
	// result instead.
	Import(ctx context.Context, file io.Reader, opts ImportOptions) (ImportResult, error)

	// DetectPeriod scans the date column only, without full row processing,
	// for UI pre-fill. Returns nil when the file has no parsable dates.
	DetectPeriod(ctx context.Context, file io.Reader, filename string) (*PeriodDetection, error)

	// CheckPeriodOverlap rejects a declared period that overlaps an already
	// recorded import. Callers must invoke it before Import; the pipeline
	// itself holds no lock.
	CheckPeriodOverlap(ctx context.Context, start, end *time.Time) error

	// List retrieves persisted attendance records.
	List(ctx context.Context, filter ListFilter) (ListRecordsResponse, error)
}
