// Package output provides terminal output utilities: leveled logging on
// stderr and styled status lines on stdout.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logOut receives log records.
var logOut io.Writer = os.Stderr

// logger is the global logger instance.
var logger = log.NewWithOptions(logOut, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// out receives status lines.
var out io.Writer = os.Stdout

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool
}

// SetupLogging configures the logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(logOut, log.Options{
		Level:           level,
		ReportTimestamp: cfg.Verbose,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetLogOutput redirects log records for loggers created by SetupLogging
// and returns a function restoring the previous writer and logger.
func SetLogOutput(w io.Writer) func() {
	prevOut, prevLogger := logOut, logger
	logOut = w
	logger = log.NewWithOptions(w, log.Options{Level: prevLogger.GetLevel()})
	return func() {
		logOut = prevOut
		logger = prevLogger
	}
}

// SetOutput redirects status lines and returns a function restoring the previous writer.
func SetOutput(w io.Writer) func() {
	prev := out
	out = w
	return func() { out = prev }
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(out, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(out, msg+"\n")
}
