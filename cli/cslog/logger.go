// Package cslog configures create-serenity log handlers.
package cslog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/apex/log/handlers/multi"
	"github.com/apex/log/handlers/text"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerOpts describes the log file options.
type LoggerOpts struct {
	// Filename is the name of log file.
	Filename string
	// MaxSize is the maximum size in megabytes of the log file
	// before it gets rotated.
	MaxSize int
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int
	// MaxAge is the maximum number of days to retain old log files
	// based on the timestamp encoded in their filename.
	MaxAge int
}

// Logger duplicates log entries to a rotated log file.
type Logger struct {
	// ljLogger is an io.WriteCloser that writes to the specified filename.
	ljLogger *lumberjack.Logger
}

// NewLogger creates a new object of Logger.
func NewLogger(opts LoggerOpts) *Logger {
	ljLogger := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   false,
		LocalTime:  true,
	}
	return &Logger{ljLogger: ljLogger}
}

// Handler returns a log handler writing to the log file.
func (logger *Logger) Handler() log.Handler {
	return text.New(logger.ljLogger)
}

// Close implements io.Closer, and closes the current logfile.
func (logger *Logger) Close() error {
	return logger.ljLogger.Close()
}

// SetupHandler sets console as the log handler. If opts has a file name, log
// entries are also written to the file. The returned logger must be closed;
// it is nil if there is no log file.
func SetupHandler(console log.Handler, opts LoggerOpts) (*Logger, error) {
	if opts.Filename == "" {
		log.SetHandler(console)
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Filename), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %s", err)
	}
	logger := NewLogger(opts)
	log.SetHandler(multi.New(console, logger.Handler()))
	return logger, nil
}
