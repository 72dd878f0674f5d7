package daylog

// Init initializes the process-wide logger: it creates dir if missing (one level only),
// opens <dir>/<YYYYMMDD>.log for append and sets the minimum level.
// Calls after a successful Init return nil and change nothing.
func Init(dir string, level Level) error {
	return std.initLogger(&Config{Directory: dir, Level: level})
}

// InitLogger is Init reporting success as a bool.
func InitLogger(dir string, level Level) bool {
	return Init(dir, level) == nil
}

// InitWithConfig initializes the logger from cfg. Zero-valued fields take their
// DefaultConfig values.
func InitWithConfig(cfg *Config) error {
	return std.initLogger(cfg)
}

// EnsureInitialized checks if the logger is initialized, and initializes with defaults if not.
// Returns false if the logger cannot be initialized; the attempt is not repeated.
func EnsureInitialized() bool {
	return std.ensureInitialized()
}

// IsInitialized reports whether Init has succeeded.
func IsInitialized() bool {
	return std.initialized.Load()
}

// MinLevel returns the configured minimum level, or 0 before initialization.
func MinLevel() Level {
	return Level(std.minLevel.Load())
}

// Path returns the path of the open log file, or "" before initialization.
func Path() string {
	return std.path()
}

// GetStats returns a snapshot of the logger counters.
func GetStats() Stats {
	return std.stats()
}

// Log is the write primitive: it appends one entry attributed to function:line.
// If function is empty the caller of Log is used. withStack appends the caller's stack.
func Log(level Level, withStack bool, function string, line int, format string, args ...any) {
	std.write(directDepth, level, withStack, function, line, format, args)
}

// Output is for wrappers around the logger. calldepth is the number of frames to skip
// when resolving the call site; 1 reports the caller of Output.
func Output(calldepth int, level Level, withStack bool, format string, args ...any) {
	std.write(calldepth+1, level, withStack, "", 0, format, args)
}

// Trace logs a printf-style message at trace level.
func Trace(format string, args ...any) {
	std.write(directDepth, LevelTrace, false, "", 0, format, args)
}

// Debug logs a printf-style message at debug level.
func Debug(format string, args ...any) {
	std.write(directDepth, LevelDebug, false, "", 0, format, args)
}

// Info logs a printf-style message at info level.
func Info(format string, args ...any) {
	std.write(directDepth, LevelInfo, false, "", 0, format, args)
}

// Warn logs a printf-style message at warn level.
func Warn(format string, args ...any) {
	std.write(directDepth, LevelWarn, false, "", 0, format, args)
}

// Error logs a printf-style message at error level.
func Error(format string, args ...any) {
	std.write(directDepth, LevelError, false, "", 0, format, args)
}

// TraceStack is Trace followed by the caller's stack.
func TraceStack(format string, args ...any) {
	std.write(directDepth, LevelTrace, true, "", 0, format, args)
}

// DebugStack is Debug followed by the caller's stack.
func DebugStack(format string, args ...any) {
	std.write(directDepth, LevelDebug, true, "", 0, format, args)
}

// InfoStack is Info followed by the caller's stack.
func InfoStack(format string, args ...any) {
	std.write(directDepth, LevelInfo, true, "", 0, format, args)
}

// WarnStack is Warn followed by the caller's stack.
func WarnStack(format string, args ...any) {
	std.write(directDepth, LevelWarn, true, "", 0, format, args)
}

// ErrorStack is Error followed by the caller's stack.
func ErrorStack(format string, args ...any) {
	std.write(directDepth, LevelError, true, "", 0, format, args)
}
