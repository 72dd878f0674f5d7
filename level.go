package daylog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is the severity of a log entry. Higher values are more severe.
type Level int64

// Log level constants. Entries below the configured minimum are discarded.
const (
	LevelTrace Level = 1
	LevelDebug Level = 2
	LevelInfo  Level = 3
	LevelWarn  Level = 4
	LevelError Level = 5
)

// Label returns the fixed-width bracketed label written at the start of each line.
func (l Level) Label() string {
	switch l {
	case LevelTrace:
		return "[TRACE]"
	case LevelDebug:
		return "[DEBUG]"
	case LevelInfo:
		return "[INFO ]"
	case LevelWarn:
		return "[WARN ]"
	case LevelError:
		return "[ERROR]"
	default:
		return "[     ]"
	}
}

// String makes Level satisfy the fmt.Stringer interface.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelError
}

// MarshalText lets levels be written to TOML and YAML files by name.
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("invalid level: %d", int64(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText accepts any form understood by ParseLevel.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// ParseLevel converts a level name to its Level constant.
// Accepts "debug" and "leveldebug" style names in any case, and the numeric form "1".."5".
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "level")
	switch name {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	if n, err := strconv.ParseInt(name, 10, 64); err == nil && Level(n).valid() {
		return Level(n), nil
	}
	return 0, fmt.Errorf("invalid level: %s", s)
}
