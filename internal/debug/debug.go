package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable read by FromEnv.
const EnvVar = "BOXFLOW_DEBUG"

var (
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
)

// Init opens path for appending and routes Logger to it.
// If path is empty, uses "boxflow.log" in the current directory.
func Init(path string, level log.Level) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path, level)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string, level log.Level) error {
	if path == "" {
		path = "boxflow.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
		Prefix:          "boxflow",
	})
	return nil
}

// FromEnv initializes from EnvVar at debug level. It reports whether a file
// was opened.
func FromEnv() (bool, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return false, nil
	}
	if err := Init(path, log.DebugLevel); err != nil {
		return false, err
	}
	return true, nil
}

// Logger returns the file logger, or a logger that discards everything when
// Init has not been called.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
