package timeparse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clock is a canonical time of day, independent of any calendar date.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Seconds returns the offset from midnight.
func (c Clock) Seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// At anchors the clock time on the given calendar date in UTC.
func (c Clock) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, c.Second, 0, time.UTC)
}

func (c Clock) Before(other Clock) bool { return c.Seconds() < other.Seconds() }

func (c Clock) After(other Clock) bool { return c.Seconds() > other.Seconds() }

var (
	nullTokens = map[string]struct{}{
		"":    {},
		"-":   {},
		"--":  {},
		"n/a": {},
		"na":  {},
	}

	// A bare M/D (or M-D) token is a date cell that lost its year through
	// spreadsheet formatting, never a real time.
	bareMonthDay = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}$`)

	clockLayouts = []string{
		"15:04:05",
		"15:04",
		"3:04:05 PM",
		"3:04 PM",
		"3:04PM",
		"2006-01-02 15:04:05",
		"01/02/2006 15:04:05",
		"01/02/2006 15:04",
	}
)

// ParseClock converts a raw cell value into a time of day. Empty and null-ish
// tokens, mis-rendered date cells and unparsable values all return false; the
// caller must treat that as "punch not usable", not as an error.
func ParseClock(value string) (Clock, bool) {
	v := strings.TrimSpace(value)
	if _, ok := nullTokens[strings.ToLower(v)]; ok {
		return Clock{}, false
	}

	if looksLikeDate(v) {
		return Clock{}, false
	}

	if f, err := strconv.ParseFloat(v, 64); err == nil {
		if f < 0 {
			return Clock{}, false
		}
		// Values >= 1 are date+time serials; only the fractional day part
		// carries the time.
		frac := f - math.Floor(f)
		secs := int(math.Round(frac * 86400))
		secs %= 86400
		return Clock{Hour: secs / 3600, Minute: secs % 3600 / 60, Second: secs % 60}, true
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, true
		}
	}

	return Clock{}, false
}

// looksLikeDate flags values that indicate an upstream spreadsheet formatting
// error: CJK date glyphs from terminal exports, or a bare month/day token.
func looksLikeDate(v string) bool {
	if strings.ContainsAny(v, "年月日") {
		return true
	}
	return bareMonthDay.MatchString(v)
}
