package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

var (
	InfoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarnLog = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
)

func ParseLevel(s string) (Level, error) {

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level '%s'. Must be one of: info, warn, error", s)
	}
}

// SetLevel discards the output of every logger below the given level.
// ErrLog is never silenced.
func SetLevel(l Level) {

	InfoLog.SetOutput(os.Stdout)
	WarnLog.SetOutput(os.Stdout)

	if l > LevelInfo {
		InfoLog.SetOutput(io.Discard)
	}

	if l > LevelWarn {
		WarnLog.SetOutput(io.Discard)
	}
}
