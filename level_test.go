package daylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Label(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "[TRACE]"},
		{LevelDebug, "[DEBUG]"},
		{LevelInfo, "[INFO ]"},
		{LevelWarn, "[WARN ]"},
		{LevelError, "[ERROR]"},
		{Level(0), "[     ]"},
		{Level(42), "[     ]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.Label())
		assert.Len(t, tt.level.Label(), 7)
	}
}

func TestLevel_Ordering(t *testing.T) {
	assert.Less(t, LevelTrace, LevelDebug)
	assert.Less(t, LevelDebug, LevelInfo)
	assert.Less(t, LevelInfo, LevelWarn)
	assert.Less(t, LevelWarn, LevelError)
	assert.Equal(t, Level(1), LevelTrace)
	assert.Equal(t, Level(5), LevelError)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "TRACE", LevelTrace.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"levelwarn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"LevelError", LevelError, false},
		{"3", LevelInfo, false},
		{"0", 0, true},
		{"6", 0, true},
		{"verbose", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLevel_TextRoundTrip(t *testing.T) {
	text, err := LevelWarn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warn", string(text))

	var level Level
	require.NoError(t, level.UnmarshalText([]byte("error")))
	assert.Equal(t, LevelError, level)

	assert.Error(t, level.UnmarshalText([]byte("loud")))
	_, err = Level(9).MarshalText()
	assert.Error(t, err)
}
