// /internal/log/logger.go
package log

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	levelDebug LogLevel = iota
	levelInfo
	levelWarn
	levelError
	levelQuiet
)

type Logger struct {
	level  LogLevel
	debug  *log.Logger
	info   *log.Logger
	warn   *log.Logger
	err    *log.Logger
	prompt *log.Logger
}

// Log is the process-wide logger. It is quiet until Init is called.
var Log = New(os.Stdout, os.Stderr, "quiet")

// Init replaces the global logger with one at the given level.
func Init(levelStr string) {
	Log = New(os.Stdout, os.Stderr, levelStr)
}

// New builds a logger writing info/warn/debug to out and errors to errOut.
func New(out, errOut io.Writer, levelStr string) *Logger {
	l := &Logger{
		debug:  log.New(out, "[DEBUG] ", 0),
		info:   log.New(out, "[INFO] ", 0),
		warn:   log.New(out, "[WARN] ", 0),
		err:    log.New(errOut, "[ERROR] ", 0),
		prompt: log.New(out, "", 0),
	}
	l.setLevelFromString(levelStr)
	return l
}

// SetOutput redirects every level to w.
func (l *Logger) SetOutput(w io.Writer) {
	for _, lg := range []*log.Logger{l.debug, l.info, l.warn, l.err, l.prompt} {
		lg.SetOutput(w)
	}
}

func (l *Logger) setLevelFromString(levelStr string) {
	switch strings.ToLower(levelStr) {
	case "debug":
		l.level = levelDebug
	case "info":
		l.level = levelInfo
	case "warn":
		l.level = levelWarn
	case "error":
		l.level = levelError
	default:
		l.level = levelQuiet
	}
}

// ValidLevel reports whether s names a known level.
func ValidLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "error", "quiet":
		return true
	}
	return false
}

// Quiet reports whether nothing below Fatal is printed.
func (l *Logger) Quiet() bool { return l.level == levelQuiet }

func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level <= levelDebug {
		l.debug.Printf(format, v...)
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	if l.level <= levelInfo {
		l.info.Printf(format, v...)
	}
}

func (l *Logger) Warn(format string, v ...interface{}) {
	if l.level <= levelWarn {
		l.warn.Printf(format, v...)
	}
}

func (l *Logger) Error(format string, v ...interface{}) {
	if l.level <= levelError {
		l.err.Printf(format, v...)
	}
}

func (l *Logger) Fatal(format string, v ...interface{}) {
	l.err.Printf(format, v...)
	os.Exit(1)
}

func (l *Logger) Prompt(format string, v ...interface{}) {
	l.prompt.Printf(format, v...)
}
