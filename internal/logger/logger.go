// Package logger provides the console implementation of filehelpers.Logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/joe/file-helpers/pkg/filehelpers"
)

// Exported constants.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelQuiet suppresses all output.
	LevelQuiet
)

// Level is the minimum severity a ConsoleLogger writes.
type Level int

// String returns the flag spelling of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so go-arg can parse --log-level.
func (l *Level) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "debug":
		*l = LevelDebug
	case "info":
		*l = LevelInfo
	case "warn", "warning":
		*l = LevelWarn
	case "error":
		*l = LevelError
	case "quiet", "none":
		*l = LevelQuiet
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn, error or quiet", string(text)) //nolint:err113,lll // Validation error with actual value
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler so defaults render in --help.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ConsoleLogger writes "[level] component: message" lines to a writer. Output
// is styled only when the writer is a terminal.
type ConsoleLogger struct {
	mu        *sync.Mutex
	out       io.Writer
	level     Level
	component string
	color     bool
}

// New creates a logger writing to out at the given level.
func New(out io.Writer, level Level) *ConsoleLogger {
	return &ConsoleLogger{
		mu:    &sync.Mutex{},
		out:   out,
		level: level,
		color: isTerminal(out),
	}
}

// NewStderr creates a logger writing to standard error.
func NewStderr(level Level) *ConsoleLogger {
	return New(os.Stderr, level)
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args...)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args...)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args...)
}

// WithComponent returns a logger sharing this one's output that prefixes
// messages with component.
func (l *ConsoleLogger) WithComponent(component string) filehelpers.Logger {
	return &ConsoleLogger{
		mu:        l.mu,
		out:       l.out,
		level:     l.level,
		component: component,
		color:     l.color,
	}
}

func (l *ConsoleLogger) log(level Level, msg string, args ...any) {
	if level < l.level || l.level == LevelQuiet {
		return
	}

	text := msg
	if len(args) > 0 {
		text = fmt.Sprintf(msg, args...)
	}

	tag := "[" + level.String() + "]"
	if l.color {
		tag = levelStyles[level].Render(tag)
	}

	line := tag + " "
	if l.component != "" {
		component := l.component
		if l.color {
			component = componentStyle.Render(component)
		}

		line += component + ": "
	}

	line += text

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = fmt.Fprintln(l.out, line)
}

// Nop returns a logger that discards everything.
func Nop() *ConsoleLogger {
	return New(io.Discard, LevelQuiet)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Immutable styles
	componentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	//nolint:gochecknoglobals // Immutable styles
	levelStyles = map[Level]lipgloss.Style{
		LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// isTerminal reports whether w is a terminal, including Cygwin/MSYS ptys.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
