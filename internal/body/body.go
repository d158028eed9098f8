// Package body defines the body records enumerated from a CAD design.
package body

import (
	"fmt"
	"math"
	"sort"
)

// Point is a corner of a bounding box, in internal length units (cm).
type Point struct {
	X, Y, Z float64
}

// BoundingBox is the axis-aligned box enclosing a body.
type BoundingBox struct {
	Min Point
	Max Point
}

// Record describes one solid body in traversal order.
// Box is nil when the source could not provide one.
type Record struct {
	ComponentName string
	BodyName      string
	Box           *BoundingBox
	Visible       bool
}

// Design is what a source enumerates: the design name, the unit the design
// displays lengths in, and its bodies in traversal order.
type Design struct {
	Name         string
	DefaultUnits string
	Records      []Record
}

// MalformedError reports a body record that violates the input contract.
type MalformedError struct {
	Component string
	Body      string
	Reason    string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed body %q in component %q: %s", e.Body, e.Component, e.Reason)
}

// Dimensions returns the extent of the bounding box along each axis, sorted
// ascending, so the result does not depend on the body's orientation.
func (r Record) Dimensions() ([3]float64, error) {
	var dims [3]float64

	if r.Box == nil {
		return dims, r.malformed("missing bounding box")
	}

	mins := [3]float64{r.Box.Min.X, r.Box.Min.Y, r.Box.Min.Z}
	maxs := [3]float64{r.Box.Max.X, r.Box.Max.Y, r.Box.Max.Z}
	axes := [3]string{"x", "y", "z"}

	for i := range dims {
		if !isFinite(mins[i]) || !isFinite(maxs[i]) {
			return dims, r.malformed(fmt.Sprintf("non-finite %s coordinate", axes[i]))
		}
		if maxs[i] < mins[i] {
			return dims, r.malformed(fmt.Sprintf("%s max %g is below min %g", axes[i], maxs[i], mins[i]))
		}
		dims[i] = maxs[i] - mins[i]
	}

	sort.Float64s(dims[:])
	return dims, nil
}

// Validate checks the record against the input contract without computing
// anything else.
func (r Record) Validate() error {
	_, err := r.Dimensions()
	return err
}

func (r Record) malformed(reason string) error {
	return &MalformedError{Component: r.ComponentName, Body: r.BodyName, Reason: reason}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CountVisible returns the number of visible and hidden records.
func CountVisible(records []Record) (visible, hidden int) {
	for _, r := range records {
		if r.Visible {
			visible++
		} else {
			hidden++
		}
	}
	return visible, hidden
}
