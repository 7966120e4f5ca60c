package source

import (
	"io"
	"log"
)

var debugLogger *log.Logger

func debugf(format string, args ...interface{}) {
	if debugLogger == nil {
		return
	}
	debugLogger.Printf(format, args...)
}

// SetDebugLog enables logging of which format each input was read as.
func SetDebugLog(w io.Writer, prefix string) {
	debugLogger = log.New(w, prefix, 0)
}
