// ABOUTME: Standard logger implementation backed by logrus
// ABOUTME: Provides structured, levelled logging with optional rotating file output

package standard

import (
	"io"
	"os"
	"strings"

	"iconify-proxy-api/pkg/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	logger *logrus.Logger
	closer io.Closer
}

// NewStandardLogger creates a logger from the log configuration.
// Output goes to stdout unless cfg.File is set, in which case the file is rotated by size.
func NewStandardLogger(cfg config.LogConfig) (*StandardLogger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l := &StandardLogger{logger: logger}
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		logger.SetOutput(rotating)
		l.closer = rotating
	} else {
		logger.SetOutput(os.Stdout)
	}

	return l, nil
}

// NewWithWriter creates a logger writing to w at the given level
func NewWithWriter(w io.Writer, level logrus.Level) *StandardLogger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return &StandardLogger{logger: logger}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close releases the log file, if any
func (l *StandardLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
