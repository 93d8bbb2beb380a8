// Package logging provides the shared application logger: leveled output to
// stdout, with optional size-based rotation to a log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ANSI color codes for level prefixes
const (
	colorRed    = "\033[97;41m"
	colorGreen  = "\033[97;42m"
	colorYellow = "\033[90;43m"
	colorBlue   = "\033[97;44m"
	colorReset  = "\033[0m"
)

// Config holds logging-related configuration.
type Config struct {
	File       string // path to log file; empty disables file output
	MaxSize    int    // max size in MB before rotation
	MaxBackups int    // number of rotated files to keep
	MaxAge     int    // max age in days
}

type Logger struct {
	*log.Logger
	writer *lumberjack.Logger
}

// NewLogger builds a logger writing to stdout and, when a file is configured,
// to a rotating log file as well.
func NewLogger(config *Config) (*Logger, error) {
	if config == nil || config.File == "" {
		return &Logger{Logger: log.New(os.Stdout, "", log.LstdFlags)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   true,
	}

	return &Logger{
		Logger: log.New(io.MultiWriter(writer, os.Stdout), "", log.LstdFlags),
		writer: writer,
	}, nil
}

func (l *Logger) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.Printf(colorBlue+"[DEBUG]"+colorReset+" "+format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.Printf(colorGreen+"[INFO]"+colorReset+" "+format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.Printf(colorYellow+"[WARN]"+colorReset+" "+format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.Printf(colorRed+"[ERROR]"+colorReset+" "+format, v...)
}
