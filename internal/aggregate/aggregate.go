// Package aggregate groups body dimensions into the counts and total lengths
// shown in a parts list.
package aggregate

import (
	"fmt"
	"strconv"

	"github.com/dbsmedya/partlist/internal/body"
)

// KeySeparator joins formatted dimensions into grouping keys.
const KeySeparator = " x "

// FormatFunc renders an internal length value for display.
type FormatFunc func(value float64) string

// DetailRow is one visible body in traversal order, with its dimensions
// sorted smallest first and already formatted.
type DetailRow struct {
	Component string
	Body      string
	X         string
	Y         string
	Z         string
}

// DimensionKey is the grouping key for identical bodies: "x x y x z".
func (r DetailRow) DimensionKey() string {
	return r.X + KeySeparator + r.Y + KeySeparator + r.Z
}

// FootprintKey is the grouping key of the two smaller dimensions: "x x y".
func (r DetailRow) FootprintKey() string {
	return r.X + KeySeparator + r.Y
}

// Result is the outcome of one aggregation pass.
type Result struct {
	DetailRows         []DetailRow
	CountsByDimension  map[string]int
	LengthsByFootprint map[string]float64
	HiddenCount        int
}

// Aggregate walks records once, in order. Hidden bodies are only counted.
// A malformed visible record, or a formatted length that does not read back
// as a number, aborts the whole pass.
func Aggregate(records []body.Record, format FormatFunc) (*Result, error) {
	if format == nil {
		return nil, fmt.Errorf("aggregate: format function is required")
	}

	res := &Result{
		DetailRows:         make([]DetailRow, 0, len(records)),
		CountsByDimension:  make(map[string]int),
		LengthsByFootprint: make(map[string]float64),
	}

	for i, rec := range records {
		if !rec.Visible {
			res.HiddenCount++
			continue
		}

		dims, err := rec.Dimensions()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		row := DetailRow{
			Component: rec.ComponentName,
			Body:      rec.BodyName,
			X:         format(dims[0]),
			Y:         format(dims[1]),
			Z:         format(dims[2]),
		}

		length, err := strconv.ParseFloat(row.Z, 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: formatted length %q of body %q is not numeric: %w",
				i, row.Z, rec.BodyName, err)
		}

		res.DetailRows = append(res.DetailRows, row)
		res.LengthsByFootprint[row.FootprintKey()] += length
		res.CountsByDimension[row.DimensionKey()]++
	}

	return res, nil
}

// VisibleCount returns the number of bodies that made it into the lists.
func (r *Result) VisibleCount() int {
	return len(r.DetailRows)
}

// TotalCount returns the number of records the result was built from.
func (r *Result) TotalCount() int {
	return len(r.DetailRows) + r.HiddenCount
}
