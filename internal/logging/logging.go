package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	jsonhandler "github.com/apex/log/handlers/json"
)

const defaultLogFile = "anshin-meshi.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	logFile      *os.File
	logger       *log.Logger

	discardLogger = &log.Logger{Handler: discard.New(), Level: log.FatalLevel}
)

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetOutput routes all entries to w instead of the log file.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = &log.Logger{Handler: jsonhandler.New(w), Level: log.DebugLevel}
}

// Close releases the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = nil
}

// Logger returns the shared structured logger. Entries go to the log file so
// they never interleave with the terminal UI.
func Logger() log.Interface {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return logger
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return discardLogger
	}
	logFile = f
	logger = &log.Logger{Handler: jsonhandler.New(f), Level: log.DebugLevel}
	return logger
}

// Error writes errors to the shared log.
func Error(err error) {
	if err == nil {
		return
	}
	Logger().WithError(err).Error("error")
}

// Info writes an informational entry with optional fields.
func Info(msg string, fields log.Fields) {
	entry := Logger().WithFields(fields)
	entry.Info(msg)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are emitted.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := Logger().WithField("event", event)
	if payload != nil {
		entry = entry.WithField("payload", payload)
	}
	entry.Debug(event)
}
