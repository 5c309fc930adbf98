package timeparse

import (
	"strconv"
	"testing"
	"time"
)

func TestParseDate_Serial(t *testing.T) {
	cases := []struct {
		serial string
		want   string
	}{
		{"44927", "2023-01-01"},
		{"44926", "2022-12-31"},
		{"45352", "2024-03-01"}, // day after leap day
		{"45351", "2024-02-29"},
		{"36526", "2000-01-01"},
		{"44927.75", "2023-01-01"}, // time fraction ignored for the date
	}
	for _, c := range cases {
		got, ok := ParseDate(c.serial)
		if !ok {
			t.Fatalf("ParseDate(%q) failed", c.serial)
		}
		if got.Format("2006-01-02") != c.want {
			t.Errorf("ParseDate(%q) = %s, want %s", c.serial, got.Format("2006-01-02"), c.want)
		}
	}
}

func TestDateToSerial_RoundTrip(t *testing.T) {
	// Boundaries that historically produce off-by-one drift with approximate
	// arithmetic: year ends, leap days, century years.
	serials := []int{36526, 36585, 36586, 44196, 44197, 44926, 44927, 45351, 45352, 47484}
	for _, serial := range serials {
		date, ok := ParseDate(strconv.Itoa(serial))
		if !ok {
			t.Fatalf("ParseDate(%d) failed", serial)
		}
		if got := DateToSerial(date); got != serial {
			t.Errorf("DateToSerial(ParseDate(%d)) = %d", serial, got)
		}
	}
}

func TestParseDate_TextFormats(t *testing.T) {
	want := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)
	inputs := []string{
		"03/05/2023",
		"3/5/2023",
		"2023-03-05",
		"2023-03-05 14:30:00",
		"03/05/2023 14:30",
		"Mar 5, 2023",
		"March 5, 2023",
	}
	for _, input := range inputs {
		got, ok := ParseDate(input)
		if !ok {
			t.Fatalf("ParseDate(%q) failed", input)
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestParseDate_PermissiveFallback(t *testing.T) {
	got, ok := ParseDate("May 8, 2009 5:57:51 PM")
	if !ok {
		t.Fatal("expected fallback parser to accept the value")
	}
	if !got.Equal(time.Date(2009, time.May, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected UTC start of day 2009-05-08, got %s", got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "0.5", "-3"} {
		if _, ok := ParseDate(input); ok {
			t.Errorf("ParseDate(%q) unexpectedly succeeded", input)
		}
	}
}
