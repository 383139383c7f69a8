// Package logger is a small leveled wrapper over the standard logger used by
// the command-line tools.
package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level orders log severities.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	NONE
)

var (
	level     = WARN
	stdLogger = log.New(os.Stderr, "[hmmweather] ", log.LstdFlags)
)

// ParseLevel maps a name to a Level; unknown names fall back to WARN.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	case "none":
		return NONE
	default:
		return WARN
	}
}

// Init sets the level and output. A nil writer keeps stderr.
func Init(w io.Writer, levelStr string) {
	level = ParseLevel(levelStr)
	if w == nil {
		w = os.Stderr
	}
	stdLogger.SetOutput(w)
}

func Debug(msg string, args ...any) {
	if level <= DEBUG {
		stdLogger.Printf("[DEBUG] "+msg, args...)
	}
}

func Info(msg string, args ...any) {
	if level <= INFO {
		stdLogger.Printf("[INFO] "+msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if level <= WARN {
		stdLogger.Printf("[WARN] "+msg, args...)
	}
}

func Error(msg string, args ...any) {
	if level <= ERROR {
		stdLogger.Printf("[ERROR] "+msg, args...)
	}
}
