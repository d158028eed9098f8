package cmd

import (
	"bytes"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandStructure(t *testing.T) {
	assert.Equal(t, "validate [assembly-file]", validateCmd.Use)
	assert.Contains(t, validateCmd.Short, "Validate")
	assert.Contains(t, validateCmd.Long, "Checks performed")
	assert.Contains(t, validateCmd.Long, "partlist validate")
	assert.NotNil(t, validateCmd.RunE)
}

func runValidateCapture(t *testing.T, args []string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	defer validateCmd.SetOut(nil)

	err := runValidate(validateCmd, args)
	return color.ClearCode(buf.String()), err
}

func TestRunValidate_Valid(t *testing.T) {
	resetFlags(t)
	assembly := writeFile(t, "cabinet.yaml", cabinetYAML)

	out, err := runValidateCapture(t, []string{assembly})
	require.NoError(t, err)

	assert.Contains(t, out, "✅ Configuration is valid")
	assert.Contains(t, out, `✅ Design "Cabinet": 6 bodies enumerated`)
	assert.Contains(t, out, "✅ Display unit: mm")
	assert.Contains(t, out, "✅ All visible bodies have valid bounding boxes")
	assert.Contains(t, out, "=== Validation Complete ===")
}

func TestRunValidate_MalformedBodies(t *testing.T) {
	resetFlags(t)
	assembly := writeFile(t, "broken.yaml", `
design: Broken
root:
  name: Frame
  bodies:
    - name: Good
      bounding_box: {min: [0, 0, 0], max: [1, 1, 1]}
    - name: Inverted
      bounding_box: {min: [0, 3, 0], max: [1, 2, 1]}
    - name: Ignored
      visible: false
      bounding_box: {min: [9, 0, 0], max: [1, 1, 1]}
`)

	out, err := runValidateCapture(t, []string{assembly})
	require.Error(t, err)

	assert.Contains(t, out, `❌ malformed body "Inverted" in component "Frame": y max 2 is below min 3`)
	assert.NotContains(t, out, "Ignored", "hidden bodies are not checked")
	assert.NotContains(t, out, "Validation Complete")
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	resetFlags(t)
	sortOrder = "random"

	out, err := runValidateCapture(t, []string{writeFile(t, "cabinet.yaml", cabinetYAML)})
	require.Error(t, err)
	assert.Contains(t, out, "❌ invalid configuration")
}

func TestRunValidate_UnitFlagOverride(t *testing.T) {
	resetFlags(t)
	lengthUnit = "IN"

	out, err := runValidateCapture(t, []string{writeFile(t, "cabinet.yaml", cabinetYAML)})
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Display unit: in")
}
