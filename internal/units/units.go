// Package units formats internal length values (centimetres) in a design's
// display unit.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Internal is the unit body coordinates are stored in.
const Internal = "cm"

// perCentimetre converts one internal unit into each display unit.
var perCentimetre = map[string]float64{
	"mm": 10,
	"cm": 1,
	"m":  0.01,
	"in": 1 / 2.54,
	"ft": 1 / 30.48,
}

// Supported returns the display units in a stable order.
func Supported() []string {
	return []string{"mm", "cm", "m", "in", "ft"}
}

// Formatter renders lengths in one display unit with fixed precision and no
// unit suffix, so the text parses back as a number.
type Formatter struct {
	unit      string
	factor    float64
	precision int
}

// NewFormatter returns a Formatter for unit. Unit names are case-insensitive.
func NewFormatter(unit string, precision int) (*Formatter, error) {
	unit = strings.ToLower(strings.TrimSpace(unit))
	factor, ok := perCentimetre[unit]
	if !ok {
		return nil, fmt.Errorf("unsupported length unit %q (supported: %s)", unit, strings.Join(Supported(), ", "))
	}
	if precision < 0 {
		return nil, fmt.Errorf("precision cannot be negative: %d", precision)
	}
	return &Formatter{unit: unit, factor: factor, precision: precision}, nil
}

// Resolve picks the display unit: the configured one if set, else the
// design's default, else the internal unit.
func Resolve(configured, designDefault string) string {
	if configured != "" {
		return configured
	}
	if designDefault != "" {
		return designDefault
	}
	return Internal
}

// Unit returns the display unit label.
func (f *Formatter) Unit() string {
	return f.unit
}

// Convert returns v in the display unit.
func (f *Formatter) Convert(v float64) float64 {
	return v * f.factor
}

// Format converts v and prints it with the configured precision.
func (f *Formatter) Format(v float64) string {
	s := strconv.FormatFloat(f.Convert(v), 'f', f.precision, 64)
	if isNegativeZero(s) {
		s = s[1:]
	}
	return s
}

// isNegativeZero reports strings like "-0" or "-0.00".
func isNegativeZero(s string) bool {
	return strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == ""
}
