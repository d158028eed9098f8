package aggregate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// SortOrder selects how grouping keys are ordered for display.
type SortOrder string

const (
	// SortLexical orders keys as plain strings, so "10.0 x 1.0" comes before
	// "2.0 x 1.0". This is the historical report layout.
	SortLexical SortOrder = "lexical"
	// SortNumeric compares each " x "-separated field as a number.
	SortNumeric SortOrder = "numeric"
)

// ParseSortOrder maps a config value to a SortOrder. Empty means lexical.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "", SortLexical:
		return SortLexical, nil
	case SortNumeric:
		return SortNumeric, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}

// Counts returns CountsByDimension with keys in display order.
func (r *Result) Counts(order SortOrder) *orderedmap.OrderedMap[string, int] {
	out := orderedmap.NewOrderedMap[string, int]()
	for _, k := range sortedKeys(r.CountsByDimension, order) {
		out.Set(k, r.CountsByDimension[k])
	}
	return out
}

// Lengths returns LengthsByFootprint with keys in display order.
func (r *Result) Lengths(order SortOrder) *orderedmap.OrderedMap[string, float64] {
	out := orderedmap.NewOrderedMap[string, float64]()
	for _, k := range sortedKeys(r.LengthsByFootprint, order) {
		out.Set(k, r.LengthsByFootprint[k])
	}
	return out
}

func sortedKeys[V any](m map[string]V, order SortOrder) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	if order == SortNumeric {
		sort.Slice(keys, func(i, j int) bool { return numericLess(keys[i], keys[j]) })
	} else {
		sort.Strings(keys)
	}
	return keys
}

// numericLess compares keys field by field. Fields that do not parse fall
// back to string comparison for that field.
func numericLess(a, b string) bool {
	fa := strings.Split(a, KeySeparator)
	fb := strings.Split(b, KeySeparator)

	for i := 0; i < len(fa) && i < len(fb); i++ {
		na, errA := strconv.ParseFloat(fa[i], 64)
		nb, errB := strconv.ParseFloat(fb[i], 64)
		if errA != nil || errB != nil {
			if fa[i] != fb[i] {
				return fa[i] < fb[i]
			}
			continue
		}
		if na != nb {
			return na < nb
		}
	}
	if len(fa) != len(fb) {
		return len(fa) < len(fb)
	}
	return a < b
}
