// Package quick wraps daylog for programs that do not want to manage initialization.
// Every call initializes the logger with daylog.DefaultConfig if nothing else has.
// Messages are built like fmt.Sprint.
package quick

import (
	"fmt"

	"github.com/LixenWraith/daylog"
)

// callDepth skips output and the exported quick function so that daylog.Output
// reports the quick caller.
const callDepth = 3

// sprint defers fmt.Sprint until the entry has passed the level filter.
type sprint []any

func (s sprint) String() string {
	return fmt.Sprint([]any(s)...)
}

// Init initializes the logger from "key=value" statements,
// e.g. quick.Init("directory=./logs", "level=debug").
// Keys not given take their default values.
func Init(args ...string) error {
	cfg, err := config(args...)
	if err != nil {
		return err
	}
	return daylog.InitWithConfig(cfg)
}

func output(level daylog.Level, withStack bool, args []any) {
	if !daylog.EnsureInitialized() {
		return
	}
	daylog.Output(callDepth, level, withStack, "%v", sprint(args))
}

// Trace logs a trace message.
func Trace(args ...any) {
	output(daylog.LevelTrace, false, args)
}

// Debug logs a debug message.
func Debug(args ...any) {
	output(daylog.LevelDebug, false, args)
}

// Info logs an info message.
func Info(args ...any) {
	output(daylog.LevelInfo, false, args)
}

// Warn logs a warning message.
func Warn(args ...any) {
	output(daylog.LevelWarn, false, args)
}

// Error logs an error message.
func Error(args ...any) {
	output(daylog.LevelError, false, args)
}

// TraceStack is Trace with the caller's stack.
func TraceStack(args ...any) {
	output(daylog.LevelTrace, true, args)
}

// DebugStack is Debug with the caller's stack.
func DebugStack(args ...any) {
	output(daylog.LevelDebug, true, args)
}

// InfoStack is Info with the caller's stack.
func InfoStack(args ...any) {
	output(daylog.LevelInfo, true, args)
}

// WarnStack is Warn with the caller's stack.
func WarnStack(args ...any) {
	output(daylog.LevelWarn, true, args)
}

// ErrorStack is Error with the caller's stack.
func ErrorStack(args ...any) {
	output(daylog.LevelError, true, args)
}
