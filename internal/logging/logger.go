// Package logging builds the structured logger shared by the CLI and the server.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger represents a logger instance
type Logger = *logrus.Logger

// Fields represents structured logging fields
type Fields = logrus.Fields

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(name string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// NewLogger creates a text logger on stderr, for CLI diagnostics.
func NewLogger(level string) Logger {
	return newLogger(os.Stderr, level, &logrus.TextFormatter{DisableTimestamp: true})
}

// NewJSONLogger creates a JSON logger tagged with a service name, for the server.
func NewJSONLogger(w io.Writer, level, service string) Logger {
	logger := newLogger(w, level, &logrus.JSONFormatter{})
	logger.AddHook(serviceHook(service))
	return logger
}

func newLogger(w io.Writer, level string, formatter logrus.Formatter) Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(formatter)
	logger.SetLevel(ParseLevel(level))
	return logger
}

// serviceHook adds the service field to every entry.
type serviceHook string

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = string(h)
	return nil
}
