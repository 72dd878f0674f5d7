package quick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LixenWraith/daylog"
)

func TestParseKeyValue(t *testing.T) {
	key, value, err := parseKeyValue("  level = debug ")
	require.NoError(t, err)
	assert.Equal(t, "level", key)
	assert.Equal(t, "debug", value)

	for _, bad := range []string{"level", "a=b=c", "=x", ""} {
		_, _, err := parseKeyValue(bad)
		assert.Error(t, err, bad)
	}
}

func TestConfig(t *testing.T) {
	cfg, err := config("directory=./My Logs", "LEVEL=warn", "stack_capture=NONE", "sync_writes=true")
	require.NoError(t, err)

	assert.Equal(t, &daylog.Config{
		Directory:    "./My Logs",
		Level:        daylog.LevelWarn,
		StackCapture: daylog.StackNone,
		SyncWrites:   true,
	}, cfg)
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"max_size_mb=10"}},
		{"bad level", []string{"level=loud"}},
		{"bad bool", []string{"sync_writes=maybe"}},
		{"bad format", []string{"level"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config(tt.args...)
			assert.Error(t, err)
		})
	}
}
