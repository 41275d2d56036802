//go:build debug

package kernel

import (
	"log"
	"os"
)

// logger is the package-wide debug logger, enabled only under the "debug"
// build tag so that release builds pay no cost for trace logging.
var logger = log.New(os.Stderr, "[movetk DEBUG] ", log.LstdFlags)

// LogDebugf logs a debug trace message. Used by freespace and segmentation
// to trace cell construction and backtracking decisions.
func LogDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
