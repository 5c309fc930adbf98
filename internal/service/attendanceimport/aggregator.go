package attendanceimport

import (
	"fmt"
	"sort"
	"time"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/tabular"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/timeparse"
)

// unknownIdentifier is the sentinel grouping key for rows that carry no
// identifier column. Unidentified rows for the same date intentionally merge
// under it; the merge is surfaced through the UnknownMergedRows counter.
const unknownIdentifier = "unknown"

var (
	dateColumns = []string{"date", "punch_date", "attendance_date", "work_date"}
	idColumns   = []string{"person_id", "biometric_id", "employee_id", "emp_id"}
	nameColumns = []string{"person_name", "employee_name", "name", "full_name"}
)

// punchGroup aggregates all rows belonging to one (identifier, date) pair
// during a single import run.
type punchGroup struct {
	Identifier string
	Date       time.Time
	Name       string

	TimeIn   *timeparse.Clock
	TimeOut  *timeparse.Clock
	BreakOut *timeparse.Clock
	BreakIn  *timeparse.Clock
	Punches  []string

	StatusHint      string
	HolidayTypeHint string
	VerifyType      string
	Source          string
	Timezone        string
	Department      string
	Position        string

	Rows []int
}

type aggregateStats struct {
	Total         int
	Skipped       int
	Failed        int
	UnknownMerged int
	Errors        []string
}

// aggregateRows runs the row classifier and punch aggregator: it discards
// blank rows, repeated header rows and rows without identity+date, then
// groups the remainder by (identifier, date).
func aggregateRows(rows []tabular.Row) ([]*punchGroup, aggregateStats) {
	groups := make(map[string]*punchGroup)
	var stats aggregateStats

	for _, row := range rows {
		stats.Total++

		if row.Blank() || isHeaderEcho(row) {
			stats.Skipped++
			continue
		}

		identifier := row.Get(idColumns...)
		name := row.Get(nameColumns...)
		dateRaw := row.Get(dateColumns...)

		if (identifier == "" && name == "") || dateRaw == "" {
			stats.Skipped++
			continue
		}

		date, ok := timeparse.ParseDate(dateRaw)
		if !ok {
			stats.Failed++
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: unparsable date %q", row.Number, dateRaw))
			continue
		}

		if identifier == "" {
			identifier = unknownIdentifier
			stats.UnknownMerged++
		}

		key := identifier + "|" + date.Format("2006-01-02")
		g, exists := groups[key]
		if !exists {
			g = &punchGroup{Identifier: identifier, Date: date}
			groups[key] = g
		}
		g.Rows = append(g.Rows, row.Number)

		if g.Name == "" {
			g.Name = name
		}

		// Explicit in/out columns win outright; later rows for the same key
		// overwrite each field independently.
		explicit := false
		if v := row.Get("time_in"); v != "" {
			explicit = true
			if c, ok := timeparse.ParseClock(v); ok {
				g.TimeIn = &c
			}
		}
		if v := row.Get("time_out"); v != "" {
			explicit = true
			if c, ok := timeparse.ParseClock(v); ok {
				g.TimeOut = &c
			}
		}
		if v := row.Get("break_out"); v != "" {
			if c, ok := timeparse.ParseClock(v); ok {
				g.BreakOut = &c
			}
		}
		if v := row.Get("break_in"); v != "" {
			if c, ok := timeparse.ParseClock(v); ok {
				g.BreakIn = &c
			}
		}

		if !explicit {
			if v := row.Get("attendance_record"); v != "" {
				g.Punches = append(g.Punches, v)
			}
		}

		setIfPresent(&g.StatusHint, row.Get("status"))
		setIfPresent(&g.HolidayTypeHint, row.Get("holiday_type"))
		setIfPresent(&g.VerifyType, row.Get("verify_type"))
		setIfPresent(&g.Source, row.Get("source"))
		setIfPresent(&g.Timezone, row.Get("timezone"))
		setIfPresent(&g.Department, row.Get("department"))
		setIfPresent(&g.Position, row.Get("position"))
	}

	ordered := make([]*punchGroup, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].Identifier < ordered[j].Identifier
	})

	return ordered, stats
}

// reduce collapses the raw punch list into first/last clock times. Explicit
// in/out values always take precedence over punches.
func (g *punchGroup) reduce() {
	if len(g.Punches) == 0 || g.TimeIn != nil || g.TimeOut != nil {
		return
	}

	type parsedPunch struct {
		raw   string
		clock timeparse.Clock
		ok    bool
	}
	parsed := make([]parsedPunch, len(g.Punches))
	allParsed := true
	for i, raw := range g.Punches {
		c, ok := timeparse.ParseClock(raw)
		parsed[i] = parsedPunch{raw: raw, clock: c, ok: ok}
		if !ok {
			allParsed = false
		}
	}

	if allParsed {
		sort.Slice(parsed, func(i, j int) bool {
			return parsed[i].clock.Seconds() < parsed[j].clock.Seconds()
		})
	} else {
		// String-lexicographic fallback keeps the reduction deterministic
		// when some punches are unparsable.
		sort.Slice(parsed, func(i, j int) bool {
			return parsed[i].raw < parsed[j].raw
		})
	}

	if first := parsed[0]; first.ok {
		c := first.clock
		g.TimeIn = &c
	}
	if last := parsed[len(parsed)-1]; last.ok {
		c := last.clock
		g.TimeOut = &c
	}
}

// isHeaderEcho detects a repeated header row: data cells whose values are
// themselves known column names under those same columns.
func isHeaderEcho(row tabular.Row) bool {
	matches := 0
	for column, value := range row.Values {
		if tabular.NormalizeHeader(value) == column && tabular.IsCandidateHeader(column) {
			matches++
		}
	}
	return matches >= 2
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
