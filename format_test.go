package daylog

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDateAndTimestampStrings(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.Local)

	assert.Equal(t, "20240307", dateString(ts))
	assert.Equal(t, "2024/03/07 09:05:03", timestampString(ts))
}

func TestSerializer_Serialize(t *testing.T) {
	ts := time.Date(2024, time.December, 31, 23, 59, 59, 0, time.Local)

	s := newSerializer()
	line := s.serialize(LevelError, ts, "main", 11, "boom now")

	assert.Equal(t, "[ERROR] 2024/12/31 23:59:59 main:11 -| boom now\n", string(line))
}

func TestSerializer_UnknownLevel(t *testing.T) {
	ts := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	s := newSerializer()
	line := s.serialize(Level(7), ts, "f", 1, "x")

	assert.Equal(t, "[     ] 2024/01/01 00:00:00 f:1 -| x\n", string(line))
}

func TestSerializer_AppendFrames(t *testing.T) {
	s := newSerializer()
	// innermost first, as returned by a StackCapturer
	out := s.appendFrames([]string{"inner", "middle", "outer"})

	assert.Equal(t, "    2: outer\n    1: middle\n    0: inner\n", string(out))
}

func TestFormatBody(t *testing.T) {
	body, truncated := formatBody("x=%d %s", []any{5, "y"})
	assert.Equal(t, "x=5 y", body)
	assert.False(t, truncated)

	// Without args the template is used verbatim
	body, truncated = formatBody("100% done", nil)
	assert.Equal(t, "100% done", body)
	assert.False(t, truncated)
}

func TestFormatBody_Truncates(t *testing.T) {
	long := strings.Repeat("a", maxLineBytes*2)

	body, truncated := formatBody("%s", []any{long})

	assert.True(t, truncated)
	assert.Len(t, body, maxLineBytes)
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// "é" is two bytes, so an odd limit falls inside a rune
	s := strings.Repeat("é", 10)

	out, truncated := truncate(s, 5)

	assert.True(t, truncated)
	assert.Equal(t, "éé", out)
	assert.True(t, utf8.ValidString(out))

	out, truncated = truncate("short", 10)
	assert.False(t, truncated)
	assert.Equal(t, "short", out)
}

func TestShortFuncName(t *testing.T) {
	assert.Equal(t, "main.main", shortFuncName("main.main"))
	assert.Equal(t, "daylog.(*loggerState).write", shortFuncName("github.com/LixenWraith/daylog.(*loggerState).write"))
	assert.Equal(t, "???", shortFuncName(""))
}
