package quick

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LixenWraith/daylog"
)

// The logger is process-wide, so a single test owns initialization.
func TestQuick(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init("directory="+dir, "level=debug"))
	assert.Equal(t, daylog.LevelDebug, daylog.MinLevel())

	// Later initialization does not reconfigure
	require.NoError(t, Init("level=error"))
	assert.Equal(t, daylog.LevelDebug, daylog.MinLevel())

	Trace("filtered")
	Debug("answer=", 42)
	Info("ready")
	Warn("slow")
	Error(os.ErrNotExist)
	ErrorStack("stacked")

	data, err := os.ReadFile(daylog.Path())
	require.NoError(t, err)
	content := string(data)

	assert.NotContains(t, content, "filtered")
	assert.Contains(t, content, "[DEBUG] ")
	assert.Contains(t, content, " quick.TestQuick:")
	assert.Contains(t, content, "-| answer=42\n")
	assert.Contains(t, content, "-| file does not exist\n")

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "    0: "), last)
	assert.Contains(t, last, "quick.TestQuick")
}

func TestInit_BadStatement(t *testing.T) {
	assert.Error(t, Init("colour=blue"))
}

func TestSprint(t *testing.T) {
	assert.Equal(t, "answer=42", sprint{"answer=", 42}.String())
	assert.Equal(t, "a b", sprint{"a", "b"}.String())
	assert.Equal(t, "1 2", sprint{1, 2}.String())
	assert.Empty(t, sprint{}.String())
}
