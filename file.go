package daylog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrDirectory is returned when the log directory is missing and cannot be created.
	ErrDirectory = errors.New("log directory unavailable")
	// ErrFileOpen is returned when the day's log file cannot be opened for append.
	ErrFileOpen = errors.New("log file unavailable")
)

// ensureDirectory creates dir if it does not exist. Only the last path element is
// created; a missing parent is an error.
func ensureDirectory(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrDirectory, dir)
		}
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrDirectory, err)
	}

	if err := os.Mkdir(dir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %w", ErrDirectory, err)
	}
	return nil
}

// logFilePath returns <dir>/<YYYYMMDD>.log for the local date of t.
func logFilePath(dir string, t time.Time) string {
	return filepath.Join(dir, dateString(t)+".log")
}

// openLogFile opens the log file for day t in append mode, creating it if missing.
func openLogFile(dir string, t time.Time) (*os.File, error) {
	file, err := os.OpenFile(
		logFilePath(dir, t),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	return file, nil
}
