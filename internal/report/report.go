// Package report renders an aggregation result as the "Total materials used"
// summary: a body list, counts per dimension and total length per footprint.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dbsmedya/partlist/internal/aggregate"
)

// DefaultTitle is the dialog title of the summary.
const DefaultTitle = "Total materials used"

// CountRow is one line of the counts table.
type CountRow struct {
	Dimensions string
	Count      int
}

// LengthRow is one line of the lengths table.
type LengthRow struct {
	Dimensions string
	Total      float64
}

// Report is the data every renderer draws from.
type Report struct {
	Title       string
	Unit        string
	Rows        []aggregate.DetailRow
	Counts      []CountRow
	Lengths     []LengthRow
	HiddenCount int
}

// Renderer writes a Report in one output format.
type Renderer interface {
	Render(w io.Writer, rpt *Report) error
}

// New builds a Report from an aggregation result, ordering the grouped
// tables with order.
func New(res *aggregate.Result, unit, title string, order aggregate.SortOrder) *Report {
	if title == "" {
		title = DefaultTitle
	}
	rpt := &Report{
		Title:       title,
		Unit:        unit,
		Rows:        res.DetailRows,
		HiddenCount: res.HiddenCount,
	}

	counts := res.Counts(order)
	rpt.Counts = make([]CountRow, 0, counts.Len())
	for el := counts.Front(); el != nil; el = el.Next() {
		rpt.Counts = append(rpt.Counts, CountRow{Dimensions: el.Key, Count: el.Value})
	}

	lengths := res.Lengths(order)
	rpt.Lengths = make([]LengthRow, 0, lengths.Len())
	for el := lengths.Front(); el != nil; el = el.Next() {
		rpt.Lengths = append(rpt.Lengths, LengthRow{Dimensions: el.Key, Total: el.Value})
	}

	return rpt
}

// HiddenNote is the trailing note about excluded bodies, or "" when none
// were hidden.
func HiddenNote(hidden int) string {
	if hidden <= 0 {
		return ""
	}
	noun := "bodies"
	if hidden == 1 {
		noun = "body"
	}
	return fmt.Sprintf("Note: %d hidden %s excluded from the lists", hidden, noun)
}

// FormatTotal prints a summed length the way the summary always has:
// shortest round-trip digits, always with a fractional part ("13.0"),
// switching to exponent form below 1e-4 and from 1e16 up.
func FormatTotal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
