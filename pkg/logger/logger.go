// Package logger provides logging functionality for the asset sweeper.
package logger

import (
	"fmt"
	"log"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to stdout.
type defaultLogger struct {
	mu sync.Mutex
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return &defaultLogger{}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf(format+"\n", args...)
}

// fileLogger writes to a rotating log file.
type fileLogger struct {
	logger *log.Logger
}

// NewFileLogger creates a logger that appends to the given file with rotation.
func NewFileLogger(path string) Logger {
	return &fileLogger{
		logger: log.New(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		}, "", log.Ldate|log.Ltime),
	}
}

// Logf writes a formatted message to the log file.
func (f *fileLogger) Logf(format string, args ...interface{}) {
	f.logger.Printf(format, args...)
}
