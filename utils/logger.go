package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// init configures the process-wide logger: JSON lines on stdout with ISO 8601
// timestamps, so auction and bid events are machine-parseable from the start.
func init() {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
}

// Info logs at info level with structured fields
func Info(message string, fields map[string]any) {
	log.WithFields(fields).Info(message)
}

// Warn logs at warning level with structured fields
func Warn(message string, fields map[string]any) {
	log.WithFields(fields).Warn(message)
}

// Error logs at error level with structured fields. Reserved for operational
// faults; domain rejections travel back to the caller as errors instead.
func Error(message string, fields map[string]any) {
	log.WithFields(fields).Error(message)
}

// Fatal logs at fatal level and exits the process
func Fatal(message string, fields map[string]any) {
	log.WithFields(fields).Fatal(message)
}
