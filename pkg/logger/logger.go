package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	Red     = "\033[0;31m"
	Green   = "\033[0;32m"
	Yellow  = "\033[0;33m"
	Blue    = "\033[0;34m"
	Magenta = "\033[0;35m"
	Cyan    = "\033[0;36m"
	White   = "\033[0;37m"
	reset   = "\033[0m"
)

var (
	mu       sync.Mutex
	loggers  []*log.Logger
	disabled bool

	// Output is where newly created loggers write to. Stdout is left
	// to the command results
	Output io.Writer = os.Stderr
)

// NewLogger builds up and return a new logger
func NewLogger(prefix string, color string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	var logger *log.Logger
	if f, ok := Output.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		logger = log.New(Output, fmt.Sprintf("%s%s%s", color, prefix, reset), log.LstdFlags)
	} else {
		logger = log.New(Output, prefix, log.LstdFlags)
	}
	if disabled {
		logger.SetOutput(io.Discard)
	}
	loggers = append(loggers, logger)
	return logger
}

// DisableLoggers silences every logger built with NewLogger, including
// the ones created after this call
func DisableLoggers() {
	mu.Lock()
	defer mu.Unlock()

	disabled = true
	for _, l := range loggers {
		l.SetOutput(io.Discard)
	}
}

// Errorln writes v using l prefix even if loggers are disabled
func Errorln(l *log.Logger, v ...interface{}) {
	mu.Lock()
	out := Output
	mu.Unlock()

	log.New(out, l.Prefix(), log.LstdFlags).Output(2, fmt.Sprintln(v...))
}

// Fatalln is Errorln followed by a call to os.Exit(1). Fatal errors
// are never silenced by DisableLoggers
func Fatalln(l *log.Logger, v ...interface{}) {
	Errorln(l, v...)
	os.Exit(1)
}
