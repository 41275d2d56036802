//go:build !debug

package kernel

// LogDebugf is a no-op in release builds; see log.go for the debug-tagged
// implementation.
func LogDebugf(format string, v ...interface{}) {}
