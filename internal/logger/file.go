package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileLogger appends log lines to a file. It is safe for concurrent use.
type FileLogger struct {
	*ConsoleLogger
	file *os.File
}

// NewFileLogger opens (or creates) path for appending, creating the parent
// directory if needed.
func NewFileLogger(path string, level Level) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &FileLogger{
		ConsoleLogger: &ConsoleLogger{
			writer: f,
			level:  level,
			now:    time.Now,
		},
		file: f,
	}, nil
}

// Path returns the file being written.
func (l *FileLogger) Path() string {
	return l.file.Name()
}

// Close flushes and closes the log file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
