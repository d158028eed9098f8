package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const cabinetYAML = `
design: Cabinet
units: mm
root:
  name: Cabinet
  bodies:
    - name: Side Left
      bounding_box: {min: [0, 0, 0], max: [1.8, 30, 200]}
    - name: Side Right
      bounding_box: {min: [78.2, 0, 0], max: [80, 30, 200]}
    - name: Back
      visible: false
      bounding_box: {min: [0, 30, 0], max: [80, 30.4, 200]}
occurrences:
  - name: Shelf:1
    component: Shelf
  - name: Shelf:2
    component: Shelf
  - name: Plinth:1
    component: Plinth
components:
  - name: Shelf
    bodies:
      - name: Board
        bounding_box: {min: [1.8, 0, 40], max: [78.2, 28, 41.8]}
  - name: Plinth
    bodies:
      - name: Kick
        bounding_box: {min: [0, 0, 0], max: [80, 2, 8]}
`

// resetFlags restores every persistent flag variable after the test.
func resetFlags(t *testing.T) {
	t.Helper()
	saved := struct {
		cfgFile, logLevel, logFormat, lengthUnit, format, output, sortOrder string
		precision                                                           int
		standalone                                                          bool
	}{cfgFile, logLevel, logFormat, lengthUnit, format, output, sortOrder, precision, standalone}

	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	logLevel = "error"

	t.Cleanup(func() {
		cfgFile = saved.cfgFile
		logLevel = saved.logLevel
		logFormat = saved.logFormat
		lengthUnit = saved.lengthUnit
		format = saved.format
		output = saved.output
		sortOrder = saved.sortOrder
		precision = saved.precision
		standalone = saved.standalone
		rootCmd.SetArgs(nil)
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
