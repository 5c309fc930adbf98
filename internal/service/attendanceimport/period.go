package attendanceimport

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/tabular"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/timeparse"
)

// DetectPeriod implements attendance.ImportService. It scans only the date
// columns of the file and reports the min/max distinct dates found, or nil
// when no row carries a parsable date.
func (s *ImportServiceImpl) DetectPeriod(ctx context.Context, file io.Reader, filename string) (*attendance.PeriodDetection, error) {
	rows, err := tabular.Read(file, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrFileUnreadable, err)
	}

	headerIdx := tabular.ResolveHeaderRow(rows)
	data := tabular.MapRows(rows, headerIdx)

	seen := make(map[time.Time]struct{})
	var minDate, maxDate time.Time

	for _, row := range data {
		raw := row.Get(dateColumns...)
		if raw == "" {
			continue
		}
		date, ok := timeparse.ParseDate(raw)
		if !ok || date.Before(attendance.MinBusinessDate) {
			continue
		}
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}
		if len(seen) == 1 {
			minDate, maxDate = date, date
			continue
		}
		if date.Before(minDate) {
			minDate = date
		}
		if date.After(maxDate) {
			maxDate = date
		}
	}

	if len(seen) == 0 {
		return nil, nil
	}

	return &attendance.PeriodDetection{
		PeriodStart: minDate,
		PeriodEnd:   maxDate,
		TotalDates:  len(seen),
	}, nil
}
