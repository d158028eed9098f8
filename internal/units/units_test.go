package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatter(t *testing.T) {
	for _, u := range Supported() {
		t.Run(u, func(t *testing.T) {
			f, err := NewFormatter(u, 2)
			require.NoError(t, err)
			assert.Equal(t, u, f.Unit())
		})
	}

	f, err := NewFormatter(" MM ", 1)
	require.NoError(t, err)
	assert.Equal(t, "mm", f.Unit())

	_, err = NewFormatter("yd", 2)
	assert.ErrorContains(t, err, `unsupported length unit "yd"`)

	_, err = NewFormatter("mm", -1)
	assert.Error(t, err)
}

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		unit      string
		precision int
		value     float64 // centimetres
		expected  string
	}{
		{"cm passthrough", "cm", 2, 1.8, "1.80"},
		{"mm", "mm", 1, 1.8, "18.0"},
		{"m", "m", 3, 250, "2.500"},
		{"inches", "in", 2, 2.54, "1.00"},
		{"feet", "ft", 2, 30.48, "1.00"},
		{"zero precision rounds", "mm", 0, 1.86, "19"},
		{"zero", "cm", 2, 0, "0.00"},
		{"negative zero", "cm", 1, -0.01, "0.0"},
		{"negative value", "cm", 1, -2.5, "-2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormatter(tt.unit, tt.precision)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Format(tt.value))
		})
	}
}

func TestFormatter_Convert(t *testing.T) {
	f, err := NewFormatter("mm", 2)
	require.NoError(t, err)
	assert.InDelta(t, 25.4, f.Convert(2.54), 1e-9)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "mm", Resolve("mm", "in"))
	assert.Equal(t, "in", Resolve("", "in"))
	assert.Equal(t, "cm", Resolve("", ""))
}
