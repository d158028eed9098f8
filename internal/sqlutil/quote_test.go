package sqlutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"bodies", "`bodies`"},
		{"my`table", "`my``table`"},
		{"", "``"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteIdentifier(tt.input))
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"bodies", "cad_bodies", "Bodies2026", "_tmp"}
	for _, name := range valid {
		assert.True(t, IsValidIdentifier(name), name)
	}

	invalid := []string{"", "bodies;", "my table", "bo-dies", "a.b", "x`y"}
	for _, name := range invalid {
		assert.False(t, IsValidIdentifier(name), name)
	}
}

func TestQuoteTableName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"plain", "bodies", "`bodies`", false},
		{"qualified", "inventory.bodies", "`inventory`.`bodies`", false},
		{"too many parts", "a.b.c", "", true},
		{"empty schema", ".bodies", "", true},
		{"injection", "bodies; DROP TABLE x", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QuoteTableName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidIdentifierError
				assert.True(t, errors.As(err, &invalid))
				assert.Equal(t, tt.input, invalid.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
