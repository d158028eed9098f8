// Package sqlutil quotes MySQL identifiers taken from configuration.
package sqlutil

import (
	"regexp"
	"strings"
)

// QuoteIdentifier wraps a single identifier in backticks, doubling any
// embedded backtick. "my`table" -> "`my``table`".
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// Only letters, digits and underscore are accepted for configured names.
var validIdentifierRegex = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// IsValidIdentifier reports whether name is a plain identifier.
func IsValidIdentifier(name string) bool {
	return validIdentifierRegex.MatchString(name)
}

// QuoteTableName validates and quotes a table name that may be qualified
// with a schema ("inventory.bodies" -> "`inventory`.`bodies`").
func QuoteTableName(name string) (string, error) {
	parts := strings.Split(name, ".")
	if len(parts) > 2 {
		return "", &InvalidIdentifierError{Name: name}
	}

	quoted := make([]string, len(parts))
	for i, p := range parts {
		if !IsValidIdentifier(p) {
			return "", &InvalidIdentifierError{Name: name}
		}
		quoted[i] = QuoteIdentifier(p)
	}
	return strings.Join(quoted, "."), nil
}

// InvalidIdentifierError is returned when a configured name cannot be used
// as a table identifier.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return "invalid identifier: " + e.Name + " (use letters, digits and underscores, optionally schema.table)"
}
