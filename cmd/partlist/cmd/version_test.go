package cmd

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandStructure(t *testing.T) {
	assert.NotNil(t, versionCmd)
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotNil(t, versionCmd.Run)
}

func TestRunVersion(t *testing.T) {
	originalVersion, originalCommit := Version, Commit
	defer func() {
		Version, Commit = originalVersion, originalCommit
	}()

	Version = "1.2.3"
	Commit = "abc123"

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	runVersion(versionCmd, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "partlist version 1.2.3", lines[0])
	assert.Equal(t, "  Commit: abc123", lines[1])
	assert.Contains(t, lines[2], runtime.Version())
	assert.Contains(t, lines[3], runtime.GOOS+"/"+runtime.GOARCH)
}
