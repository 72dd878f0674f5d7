package daylog

import (
	"bytes"
	"fmt"
	"path"
	"runtime"
	"runtime/debug"
	"strings"
)

// maxStackDepth is the maximum number of frames captured for one entry.
const maxStackDepth = 24

// Stack capture modes accepted by Config.StackCapture.
const (
	StackFrames = "frames" // symbol name, file:line and program counter per frame
	StackText   = "text"   // raw entries from the runtime's textual backtrace
	StackNone   = "none"   // stack capture disabled
)

// StackCapturer collects a description of the current goroutine's call stack.
// Capture returns at most maxStackDepth frames, innermost first, starting skip frames
// above the function that called Capture. Implementations never fail: when nothing
// can be captured they return nil.
type StackCapturer interface {
	Capture(skip int) []string
}

// newStackCapturer selects the capturer for mode and probes it once.
// A capturer that produces no frames is replaced by the no-op capturer.
func newStackCapturer(mode string) StackCapturer {
	var c StackCapturer
	switch mode {
	case StackNone:
		return noopCapturer{}
	case StackText:
		c = textCapturer{}
	default:
		c = framesCapturer{}
	}
	if len(safeCapture(c, 0)) == 0 {
		return noopCapturer{}
	}
	return c
}

// safeCapture calls c.Capture, discarding anything a misbehaving capturer panics with.
// skip is relative to the caller of safeCapture.
func safeCapture(c StackCapturer, skip int) (frames []string) {
	defer func() {
		if recover() != nil {
			frames = nil
		}
	}()
	return c.Capture(skip + 1)
}

// framesCapturer resolves program counters through the runtime symbol table.
type framesCapturer struct{}

func (framesCapturer) Capture(skip int) []string {
	pc := make([]uintptr, maxStackDepth)
	// +2 skips runtime.Callers and Capture itself
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make([]string, 0, n)
	for len(out) < maxStackDepth {
		frame, more := frames.Next()
		// runtime.goexit is the goroutine entry trampoline, not a call
		if frame.Function == "runtime.goexit" {
			break
		}
		out = append(out, fmt.Sprintf("%s %s:%d 0x%x",
			frame.Function, path.Base(frame.File), frame.Line, frame.PC))
		if !more {
			break
		}
	}
	return out
}

// textCapturer parses the textual backtrace produced by runtime/debug.Stack.
type textCapturer struct{}

func (textCapturer) Capture(skip int) []string {
	entries := parseBacktrace(debug.Stack())
	// +2 skips debug.Stack and Capture itself
	skip += 2
	if skip >= len(entries) {
		return nil
	}
	entries = entries[skip:]
	if len(entries) > maxStackDepth {
		entries = entries[:maxStackDepth]
	}
	return entries
}

// parseBacktrace turns a "goroutine N [running]:" dump into one entry per frame,
// joining each function line with the indented file:line line that follows it.
// The "created by" trailer names the spawning goroutine and is not a frame.
func parseBacktrace(stack []byte) []string {
	lines := strings.Split(string(bytes.TrimSpace(stack)), "\n")
	var entries []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line == "" || strings.HasPrefix(line, "goroutine ") || strings.HasPrefix(line, "\t") {
			continue
		}
		if strings.HasPrefix(line, "created by ") {
			if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "\t") {
				i++
			}
			continue
		}
		entry := line
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "\t") {
			entry += " " + strings.TrimSpace(lines[i+1])
			i++
		}
		entries = append(entries, entry)
	}
	return entries
}

// noopCapturer is used when stack capture is disabled or unavailable.
type noopCapturer struct{}

func (noopCapturer) Capture(int) []string { return nil }
