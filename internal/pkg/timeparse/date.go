package timeparse

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// serialEpoch is the spreadsheet date-serial epoch. The 1899-12-30 convention
// absorbs the historical 1900 leap-year quirk so that modern serials convert
// exactly.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts is the ordered list of explicit layouts tried before falling
// back to permissive parsing. Month/day variants come first because biometric
// exports in the wild overwhelmingly use them.
var dateLayouts = []string{
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDate converts a raw cell value into a UTC start-of-day calendar date.
// Numeric values are treated as spreadsheet date serials. Returns false when
// every strategy fails; callers treat that as a row failure.
func ParseDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		if serial < 1 {
			return time.Time{}, false
		}
		// AddDate walks the calendar day by day, so month lengths and leap
		// years stay exact across the whole serial range.
		return serialEpoch.AddDate(0, 0, int(serial)), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return startOfDay(t), true
		}
	}

	if t, err := dateparse.ParseAny(v); err == nil {
		return startOfDay(t), true
	}

	return time.Time{}, false
}

// DateToSerial is the inverse of the serial branch of ParseDate.
func DateToSerial(date time.Time) int {
	d := startOfDay(date)
	return int(d.Sub(serialEpoch).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
