package tabular

import (
	"strconv"
	"time"

	"taxidash/domain/core"
)

// RawRow represents one data row as header keyed string values.
type RawRow map[string]string

// Table represents one loaded flat-file dataset.
type Table struct {
	Headers []string // Column headers, in file order
	Rows    []RawRow // Data rows
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// StringColumn returns the named column as strings, in row order.
func (t *Table) StringColumn(name string) ([]string, error) {
	if !t.HasColumn(name) {
		return nil, core.NewColumnError(name, core.ErrColumnNotFound)
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[name]
	}
	return out, nil
}

// FloatColumn parses the named column as float64 values. Non-numeric cells
// fail the whole column; the input format is trusted, so this is a fatal
// condition for the caller's section.
func (t *Table) FloatColumn(name string) ([]float64, error) {
	if !t.HasColumn(name) {
		return nil, core.NewColumnError(name, core.ErrColumnNotFound)
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		v, err := strconv.ParseFloat(row[name], 64)
		if err != nil {
			return nil, core.NewColumnError(name, core.ErrNonNumeric)
		}
		out[i] = v
	}
	return out, nil
}

// timestampLayouts are tried in order when parsing date-time columns. The
// source files use a space separated ISO-8601 form without a zone.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// TimeColumn parses the named column as timestamps.
func (t *Table) TimeColumn(name string) ([]time.Time, error) {
	if !t.HasColumn(name) {
		return nil, core.NewColumnError(name, core.ErrColumnNotFound)
	}
	out := make([]time.Time, len(t.Rows))
	for i, row := range t.Rows {
		ts, err := parseTimestamp(row[name])
		if err != nil {
			return nil, core.NewColumnError(name, err)
		}
		out[i] = ts
	}
	return out, nil
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
