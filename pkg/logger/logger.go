// Package logger provides structured logging for vehicles, factories and the CLI
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Logger interface for abstracted logging
type Logger interface {
	Info(message string, fields ...Field)
	Error(message string, fields ...Field)
	Warn(message string, fields ...Field)
	Debug(message string, fields ...Field)
	Success(message string, fields ...Field)
	WithTarget(target string) Logger
}

// Field represents a structured logging field
type Field struct {
	Key   string
	Value interface{}
}

// WithField creates a new field
func WithField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Format selects how log entries are rendered
type Format string

const (
	// FormatMessage prints the bare message, one line per entry
	FormatMessage Format = "message"
	// FormatPretty prints timestamp, coloured level, target and fields
	FormatPretty Format = "pretty"
)

// ParseFormat parses a format name, falling back to FormatMessage
func ParseFormat(s string) Format {
	if Format(strings.ToLower(s)) == FormatPretty {
		return FormatPretty
	}
	return FormatMessage
}

// TargetLogger implements Logger with target awareness
type TargetLogger struct {
	logger     *logrus.Logger
	targetName string
	mu         sync.RWMutex
}

// MessageFormatter renders only the entry message
type MessageFormatter struct{}

// Format implements logrus.Formatter
func (f *MessageFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(entry.Message + "\n"), nil
}

// PrettyFormatter formats logs with colors
type PrettyFormatter struct {
	TimestampFormat string
	DisableColors   bool
}

// Format implements logrus.Formatter
func (f *PrettyFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)

	var levelColor *color.Color
	var levelText string

	switch entry.Level {
	case logrus.ErrorLevel:
		levelColor = color.New(color.FgRed, color.Bold)
		levelText = "ERROR"
	case logrus.WarnLevel:
		levelColor = color.New(color.FgYellow, color.Bold)
		levelText = "WARN"
	case logrus.InfoLevel:
		levelColor = color.New(color.FgCyan)
		levelText = "INFO"
	case logrus.DebugLevel:
		levelColor = color.New(color.FgWhite, color.Faint)
		levelText = "DEBUG"
	default:
		levelColor = color.New(color.FgGreen)
		levelText = "SUCCESS"
	}

	data := make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		data[k] = v
	}

	targetPrefix := ""
	if target, ok := data["target"]; ok {
		if f.DisableColors {
			targetPrefix = fmt.Sprintf("[%v] ", target)
		} else {
			targetPrefix = fmt.Sprintf("[%s] ", color.New(color.FgBlue).Sprint(target))
		}
		delete(data, "target")
	}

	level := levelText
	if !f.DisableColors {
		level = levelColor.Sprint(levelText)
	}
	output := fmt.Sprintf("🚗 [%s] %s: %s%s", timestamp, level, targetPrefix, entry.Message)

	if len(data) > 0 {
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
		}
		fields := " {" + strings.Join(parts, ", ") + "}"
		if f.DisableColors {
			output += fields
		} else {
			output += color.New(color.FgWhite, color.Faint).Sprint(fields)
		}
	}

	return []byte(output + "\n"), nil
}

// CreateLogger creates a logger writing to standard output
func CreateLogger(logLevel string, format Format) Logger {
	return newTargetLogger(logLevel, format, os.Stdout, false)
}

// CreateLoggerWithOutput creates a logger with custom output (for testing)
func CreateLoggerWithOutput(logLevel string, format Format, output io.Writer) Logger {
	return newTargetLogger(logLevel, format, output, true)
}

func newTargetLogger(logLevel string, format Format, output io.Writer, disableColors bool) *TargetLogger {
	log := logrus.New()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if format == FormatPretty {
		log.SetFormatter(&PrettyFormatter{
			TimestampFormat: "15:04:05",
			DisableColors:   disableColors,
		})
	} else {
		log.SetFormatter(&MessageFormatter{})
	}

	log.SetOutput(output)

	return &TargetLogger{
		logger: log,
	}
}

// WithTarget creates a new logger with target context
func (l *TargetLogger) WithTarget(target string) Logger {
	return &TargetLogger{
		logger:     l.logger,
		targetName: target,
	}
}

// convertFields converts Field slice to logrus.Fields
func (l *TargetLogger) convertFields(fields []Field) logrus.Fields {
	result := make(logrus.Fields)
	if l.targetName != "" {
		result["target"] = l.targetName
	}
	for _, f := range fields {
		result[f.Key] = f.Value
	}
	return result
}

// Info logs an info message
func (l *TargetLogger) Info(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Info(message)
}

// Error logs an error message
func (l *TargetLogger) Error(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Error(message)
}

// Warn logs a warning message
func (l *TargetLogger) Warn(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Warn(message)
}

// Debug logs a debug message
func (l *TargetLogger) Debug(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Debug(message)
}

// Success logs a success message (info level with a check mark)
func (l *TargetLogger) Success(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Info("✅ " + message)
}
