package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message k=v" lines to a writer.
// Color is used only when the writer is os.Stdout or os.Stderr and the
// color library considers it a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	level       Level
	colorOutput bool
	now         func() time.Time
	mu          sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger. A nil writer discards output.
func NewConsoleLogger(w io.Writer, level Level) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       level,
		colorOutput: isTerminal(w),
		now:         time.Now,
	}
}

func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

func (l *ConsoleLogger) Debug(msg string, kv ...any) { l.log(LevelDebug, msg, kv) }
func (l *ConsoleLogger) Info(msg string, kv ...any)  { l.log(LevelInfo, msg, kv) }
func (l *ConsoleLogger) Warn(msg string, kv ...any)  { l.log(LevelWarn, msg, kv) }
func (l *ConsoleLogger) Error(msg string, kv ...any) { l.log(LevelError, msg, kv) }

func (l *ConsoleLogger) log(level Level, msg string, kv []any) {
	if l.writer == nil || level < l.level {
		return
	}

	tag := "[" + level.String() + "]"
	if l.colorOutput {
		tag = levelColor(level).Sprint(tag)
	}

	line := fmt.Sprintf("[%s] %s %s", l.now().Format("15:04:05"), tag, msg)
	if fields := formatKV(kv); fields != "" {
		line += " " + fields
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.writer, line)
}

func levelColor(level Level) *color.Color {
	switch level {
	case LevelDebug:
		return color.New(color.FgHiBlack)
	case LevelWarn:
		return color.New(color.FgYellow)
	case LevelError:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
