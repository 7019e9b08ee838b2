//go:build !debug

package geom2d

// logDebugf is a no-op outside of debug builds (build with -tags debug to enable
// log_debug.go's logger instead).
func logDebugf(format string, v ...interface{}) {}
