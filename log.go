package daylog

import (
	"runtime"
)

// directDepth is the number of frames between write and the user's code when a
// package-level logging function calls write directly.
const directDepth = 2

// write filters, formats and appends one entry. depth counts the frames from write
// up to the frame that is reported as the call site and used as the innermost
// stack frame. An empty function is resolved from that frame.
//
// Formatting and stack capture run before the file lock is taken; only the write
// and flush are serialized. Nothing is ever reported to the caller.
func (s *loggerState) write(depth int, level Level, withStack bool, function string, line int, format string, args []any) {
	if !s.initialized.Load() {
		s.dropped.Add(1)
		return
	}
	if int64(level) < s.minLevel.Load() {
		return
	}

	defer func() {
		if recover() != nil {
			s.dropped.Add(1)
		}
	}()

	if function == "" {
		var pcs [1]uintptr
		// +1 skips runtime.Callers
		if runtime.Callers(depth+1, pcs[:]) > 0 {
			frame, _ := runtime.CallersFrames(pcs[:]).Next()
			function = shortFuncName(frame.Function)
			line = frame.Line
		}
	}

	body, truncated := formatBody(format, args)
	if truncated {
		s.truncated.Add(1)
	}

	ser := newSerializer()
	entry := ser.serialize(level, now(), function, line, body)
	if withStack {
		// Captured before the lock; the frames still go out in the same write as the line
		if frames := safeCapture(s.capturer, depth); len(frames) > 0 {
			entry = ser.appendFrames(frames)
		}
	}

	if err := s.file.write(entry); err != nil {
		s.writeErrors.Add(1)
		return
	}
	s.written.Add(1)
}
