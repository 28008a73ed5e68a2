// Package monitoring holds the diagnostic logging hook used by the lensgrid
// command-line tools. The library packages never log.
package monitoring

import "log"

// Logf receives every diagnostic line a tool emits. Until SetLogger is
// called it writes through the standard logger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger routes diagnostics to f. A nil f discards them, which is how
// lensprofile -q and the tests silence output.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Timing logs the duration of one named stage in a uniform format.
func Timing(stage string, repeats int, perRun float64) {
	Logf("%-28s %8d runs  %12.6f ms/run", stage, repeats, perRun*1e3)
}
