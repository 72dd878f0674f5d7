package daylog

import (
	"fmt"
	"path"
	"strconv"
	"time"
	"unicode/utf8"
)

const (
	dateLayout      = "20060102"
	timestampLayout = "2006/01/02 15:04:05"

	// maxLineBytes caps the formatted message body of a single entry.
	maxLineBytes = 4096
)

// now is the clock used for file names and timestamps.
var now = time.Now

// dateString renders t as YYYYMMDD in local time.
func dateString(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// timestampString renders t as YYYY/MM/DD HH:MM:SS in local time.
func timestampString(t time.Time) string {
	return t.Local().Format(timestampLayout)
}

// serializer builds one complete log entry, main line plus optional frame lines,
// so that the entry can be written with a single call while the file lock is held.
type serializer struct {
	buf []byte
}

// newSerializer creates a serializer with room for a typical entry.
func newSerializer() *serializer {
	return &serializer{
		buf: make([]byte, 0, 256),
	}
}

// serialize appends "<LABEL> <TIMESTAMP> <FUNCTION>:<LINE> -| <BODY>\n".
func (s *serializer) serialize(level Level, ts time.Time, function string, line int, body string) []byte {
	s.buf = append(s.buf, level.Label()...)
	s.buf = append(s.buf, ' ')
	s.buf = ts.Local().AppendFormat(s.buf, timestampLayout)
	s.buf = append(s.buf, ' ')
	s.buf = append(s.buf, function...)
	s.buf = append(s.buf, ':')
	s.buf = strconv.AppendInt(s.buf, int64(line), 10)
	s.buf = append(s.buf, " -| "...)
	s.buf = append(s.buf, body...)
	s.buf = append(s.buf, '\n')
	return s.buf
}

// appendFrames writes captured frames outermost first. frames arrives innermost first;
// the outermost frame is numbered len(frames)-1 and the innermost 0.
func (s *serializer) appendFrames(frames []string) []byte {
	for i := len(frames) - 1; i >= 0; i-- {
		s.buf = append(s.buf, "    "...)
		s.buf = strconv.AppendInt(s.buf, int64(i), 10)
		s.buf = append(s.buf, ": "...)
		s.buf = append(s.buf, frames[i]...)
		s.buf = append(s.buf, '\n')
	}
	return s.buf
}

// formatBody substitutes args into the printf-style template and truncates the result.
// A template without args is used verbatim.
func formatBody(format string, args []any) (body string, truncated bool) {
	body = format
	if len(args) > 0 {
		body = fmt.Sprintf(format, args...)
	}
	return truncate(body, maxLineBytes)
}

// truncate shortens s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) (string, bool) {
	if len(s) <= max {
		return s, false
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut], true
}

// shortFuncName strips the import path from a fully qualified function name,
// leaving e.g. "main.main" or "server.(*Server).Run".
func shortFuncName(full string) string {
	if full == "" {
		return "???"
	}
	return path.Base(full)
}
