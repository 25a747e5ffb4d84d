package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
	"gopkg.in/natefinch/lumberjack.v2"
)

// Colors for the different log levels.
// Info and Debug go to stdout, Warn and Error go to stderr.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

var (
	mu sync.Mutex

	// stdout and stderr are the console destinations. Tests replace them through SetOutput.
	stdout io.Writer = color.Output
	stderr io.Writer = color.Error

	// file receives an uncolored, timestamped copy of every line when a log file is configured.
	file io.WriteCloser

	debugEnabled bool
)

// Options controls how Init sets up the logger.
type Options struct {
	// Debug enables cyan debug lines.
	Debug bool

	// File is an optional path to a rotating log file. Empty disables file logging.
	File string

	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int

	// MaxBackups is how many rotated files are kept.
	MaxBackups int
}

// Init initializes the logger package.
// When opts.File is set, every message is also appended to that file through lumberjack,
// which is the only place output ends up when tvctl runs from a compositor key binding.
func Init(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	debugEnabled = opts.Debug

	if file != nil {
		_ = file.Close()
		file = nil
	}
	if opts.File == "" {
		return
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 1
	}
	maxBackups := opts.MaxBackups
	if maxBackups <= 0 {
		maxBackups = 3
	}
	file = &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
	}
}

// SetOutput redirects console output. A nil writer leaves the corresponding stream untouched.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Close flushes and releases the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// Info logs informational messages in green color.
func Info(format string, a ...any) {
	write(stdout, infoColor, format, a...)
}

// Warn logs warning messages in bright magenta color.
func Warn(format string, a ...any) {
	write(stderr, warnColor, format, a...)
}

// Error logs error messages in red color.
func Error(format string, a ...any) {
	write(stderr, errorColor, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
func Debug(format string, a ...any) {
	if !debugEnabled {
		return
	}
	write(stdout, debugColor, format, a...)
}

func write(w io.Writer, c *color.Color, format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format, a...)
	_, _ = c.Fprint(w, msg)

	if file != nil {
		line := strings.TrimRight(msg, "\n")
		_, _ = fmt.Fprintf(file, "%s %s\n", time.Now().Format(time.RFC3339), line)
	}
}
