// Package logger holds the process-wide zerolog logger used by the
// huffmantext command.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	SetOutput(os.Stderr)
}

// SetOutput replaces the destination of the logger with a console writer
// around w.  The level is kept.  Colors are only used on a terminal.
func SetOutput(w io.Writer) {
	level := logger.GetLevel()
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: !isTerminal(w)}
	logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// SetLevel parses one of "trace", "debug", "info", "warn", "error" (or any
// other zerolog level name) and applies it.
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return err
	}
	logger = logger.Level(level)
	return nil
}

// Set replaces the logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences all logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the current logger.
func Logger() *zerolog.Logger {
	return &logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
