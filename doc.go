// Package daylog provides a process-wide, leveled file logger that appends
// timestamped lines to one file per calendar day.
//
// Features:
//   - Single process-wide logger, initialized once with Init
//   - One plain-text file per day, <dir>/<YYYYMMDD>.log, opened in append mode
//   - Five levels (trace, debug, info, warn, error) with minimum level filtering
//   - Printf-style messages with automatic call site (function:line)
//   - Optional call stack capture appended below the entry
//   - Goroutine-safe writes; every entry is contiguous in the file
//   - Every entry is flushed before the call returns
//   - Logging calls never fail or panic; losses are counted in GetStats
//
// Line format:
//
//	[ERROR] 2024/05/01 13:45:02 main.connect:17 -| connection refused
//	    2: runtime.main proc.go:283 0x43b9a7
//	    1: main.main main.go:42 0x4a3f21
//	    0: main.connect conn.go:17 0x4a3e80
//
// The file is chosen when the logger is initialized. A process running past
// midnight keeps appending to the previous day's file.
package daylog
