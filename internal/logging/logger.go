package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultLevel applies when no level, or an unknown one, is configured.
const DefaultLevel = zerolog.WarnLevel

// Config captures options for configuring the process logger.
type Config struct {
	Level   string    // zerolog level name; empty or unknown means DefaultLevel
	Output  io.Writer // defaults to os.Stderr; stdout is reserved for the status line
	Version string
}

var (
	mu   sync.Mutex
	base = zerolog.Nop()
)

// New builds a logger tagged with a fresh boot id.
func New(cfg Config) zerolog.Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "healthbot").
		Str("version", cfg.Version).
		Str("boot_id", uuid.NewString()).
		Logger()
}

// Configure replaces the process logger.
func Configure(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	l := New(cfg)
	mu.Lock()
	base = l
	mu.Unlock()
	return l
}

// ParseLevel maps a level name to a zerolog level, falling back to DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// Base returns the configured logger. Before Configure it discards everything.
func Base() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
