package simplelogger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogFile names the environment variable holding the log file path.
const EnvLogFile = "REDPEN_LOG_FILE"

var (
	mu       sync.Mutex
	logger   *zap.Logger
	file     *os.File
	openPath string
	override string
	level    = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Log is a minimal printf-style logger. It appends one JSON line (message in "msg") to the file specified by SetFile or, failing that, by the REDPEN_LOG_FILE
// environment variable.
//
// If no path is configured or the path can't be opened as a file, Log is a no-op.
func Log(format string, args ...any) {
	Logger().Info(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// Logger returns the structured logger backing Log. It is never nil; when logging is disabled it is a no-op logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	path := override
	if path == "" {
		path = os.Getenv(EnvLogFile)
	}

	if logger != nil && path == openPath {
		return logger
	}
	closeLocked()
	logger = newLogger(path)
	openPath = path
	return logger
}

// SetFile makes the logger write to path, taking precedence over REDPEN_LOG_FILE. An empty path restores the environment variable.
func SetFile(path string) {
	mu.Lock()
	override = path
	mu.Unlock()
}

// SetLevel sets the minimum level ("debug", "info", "warn", "error") for all loggers returned by Logger.
func SetLevel(name string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.SetLevel(l)
	return nil
}

// Sync flushes and closes the current log file, if any. Subsequent calls to Log reopen it.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()
	var err error
	if logger != nil {
		err = logger.Sync()
	}
	closeLocked()
	return err
}

func closeLocked() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
	logger = nil
	openPath = ""
}

func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zap.NewNop()
	}
	file = f

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(f), level)
	return zap.New(core)
}
