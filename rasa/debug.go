package rasa

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

// SetDebugLog sends a line per merge decision to w.
func SetDebugLog(w io.Writer, prefix string) {
	debugLogger = log.New(w, prefix, 0)
}
