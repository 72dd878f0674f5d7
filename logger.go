package daylog

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// loggerState is the process-wide logger. Fields set during initialization are
// published by initialized.Store(true) and never change afterwards.
type loggerState struct {
	initMu      sync.Mutex
	initialized atomic.Bool
	disabled    atomic.Bool // set when default initialization failed in ensureInitialized

	file     *lockedFile
	capturer StackCapturer
	minLevel atomic.Int64

	written     atomic.Uint64
	dropped     atomic.Uint64
	truncated   atomic.Uint64
	writeErrors atomic.Uint64
}

// std is the single logger instance behind the package-level functions.
var std = &loggerState{}

// Stats is a snapshot of the logger counters.
type Stats struct {
	Written     uint64 // entries appended to the file
	Dropped     uint64 // entries discarded because the logger was not initialized or formatting failed
	Truncated   uint64 // entries whose body exceeded the maximum length
	WriteErrors uint64 // entries lost to write or flush failures
}

// initLogger sets up the directory, stack capturer and day file.
// Once it succeeds, later calls return nil without changing anything.
func (s *loggerState) initLogger(cfg *Config) error {
	if s.initialized.Load() {
		return nil
	}

	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.initialized.Load() {
		return nil
	}

	cfg = mergeConfig(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := ensureDirectory(cfg.Directory); err != nil {
		return fmt.Errorf("failed to prepare log directory: %w", err)
	}

	// Capture problems only disable stack output, they never fail initialization
	capturer := newStackCapturer(cfg.StackCapture)

	file, err := openLogFile(cfg.Directory, now())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	s.file = newLockedFile(file, cfg.SyncWrites)
	s.capturer = capturer
	s.minLevel.Store(int64(cfg.Level))
	s.initialized.Store(true)
	return nil
}

// ensureInitialized initializes with DefaultConfig if needed.
// A failed attempt disables further attempts so logging calls stay cheap.
func (s *loggerState) ensureInitialized() bool {
	if s.disabled.Load() {
		return false
	}
	if s.initialized.Load() {
		return true
	}

	if err := s.initLogger(nil); err != nil {
		s.disabled.Store(true)
		return false
	}
	return true
}

func (s *loggerState) path() string {
	if !s.initialized.Load() {
		return ""
	}
	return s.file.name()
}

func (s *loggerState) stats() Stats {
	return Stats{
		Written:     s.written.Load(),
		Dropped:     s.dropped.Load(),
		Truncated:   s.truncated.Load(),
		WriteErrors: s.writeErrors.Load(),
	}
}
