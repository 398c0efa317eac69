// Package logger provides the leveled console logging used across folio.
//
// Output is timestamped, thread-safe, and colorized when writing to a
// terminal. Levels filter verbosity; anything below the configured level is
// discarded.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Console logs to a writer with [HH:MM:SS] prefixes and level filtering.
// Color output is enabled automatically when the writer is a TTY.
type Console struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsole creates a Console writing to w. If w is nil, messages are
// silently discarded. level accepts trace, debug, info, warn, error
// (case-insensitive); empty or unknown values default to info.
func NewConsole(w io.Writer, level string) *Console {
	return &Console{
		writer:      w,
		level:       parseLevel(level),
		colorOutput: isTerminal(w),
	}
}

// parseLevel maps a level name to its numeric rank, defaulting to info.
func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Tracef logs at trace level.
func (c *Console) Tracef(format string, args ...interface{}) {
	c.logf(levelTrace, "TRACE", nil, format, args...)
}

// Debugf logs at debug level.
func (c *Console) Debugf(format string, args ...interface{}) {
	c.logf(levelDebug, "DEBUG", nil, format, args...)
}

// Infof logs at info level.
func (c *Console) Infof(format string, args ...interface{}) {
	c.logf(levelInfo, "INFO", nil, format, args...)
}

// Warnf logs at warn level.
func (c *Console) Warnf(format string, args ...interface{}) {
	c.logf(levelWarn, "WARN", color.New(color.FgYellow), format, args...)
}

// Errorf logs at error level.
func (c *Console) Errorf(format string, args ...interface{}) {
	c.logf(levelError, "ERROR", color.New(color.FgRed), format, args...)
}

func (c *Console) logf(level int, tag string, col *color.Color, format string, args ...interface{}) {
	if c.writer == nil || level < c.level {
		return
	}

	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s %s", time.Now().Format("15:04:05"), tag, message)
	if c.colorOutput && col != nil {
		line = col.Sprint(line)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	fmt.Fprintln(c.writer, line)
}
