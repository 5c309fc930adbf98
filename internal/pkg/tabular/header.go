package tabular

import "strings"

// maxHeaderScan bounds the search for a header row buried under banner rows
// or merged-cell titles.
const maxHeaderScan = 10

// candidateHeaders are the normalized column names that identify a header row.
var candidateHeaders = map[string]struct{}{
	"date":              {},
	"punch_date":        {},
	"attendance_date":   {},
	"work_date":         {},
	"employee_id":       {},
	"emp_id":            {},
	"person_id":         {},
	"biometric_id":      {},
	"person_name":       {},
	"employee_name":     {},
	"name":              {},
	"full_name":         {},
	"time_in":           {},
	"time_out":          {},
	"attendance_record": {},
	"status":            {},
}

// NormalizeHeader lower-cases, trims, and replaces spaces and hyphens with
// underscores so heterogeneous exports map onto one column vocabulary.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// IsCandidateHeader reports whether a normalized cell names a known column.
func IsCandidateHeader(normalized string) bool {
	_, ok := candidateHeaders[normalized]
	return ok
}

// ResolveHeaderRow locates the header row. Phase one checks row 0; phase two
// scans up to the next nine rows for the first row containing any candidate
// column. When nothing matches, row 0 is used as a best-effort fallback
// rather than failing the whole import.
func ResolveHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > maxHeaderScan {
		limit = maxHeaderScan
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if IsCandidateHeader(NormalizeHeader(cell)) {
				return i
			}
		}
	}
	return 0
}

// Row is one data row keyed by normalized header name. Number is the 1-based
// position in the source file, for error messages.
type Row struct {
	Number int
	Values map[string]string
}

// Get returns the first non-empty value among the given columns.
func (r Row) Get(columns ...string) string {
	for _, col := range columns {
		if v := strings.TrimSpace(r.Values[col]); v != "" {
			return v
		}
	}
	return ""
}

// Blank reports whether every cell in the row is empty.
func (r Row) Blank() bool {
	for _, v := range r.Values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// MapRows converts the raw rows beneath the header row into keyed rows,
// mapping cells to normalized header names positionally.
func MapRows(rows [][]string, headerIdx int) []Row {
	if headerIdx >= len(rows) {
		return nil
	}

	headers := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		headers[i] = NormalizeHeader(h)
	}

	mapped := make([]Row, 0, len(rows)-headerIdx-1)
	for i := headerIdx + 1; i < len(rows); i++ {
		values := make(map[string]string, len(headers))
		for j, header := range headers {
			if header == "" {
				continue
			}
			if j < len(rows[i]) {
				values[header] = rows[i][j]
			} else {
				values[header] = ""
			}
		}
		mapped = append(mapped, Row{Number: i + 1, Values: values})
	}
	return mapped
}
