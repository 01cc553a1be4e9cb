package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

const ginLoggerKey = "logger"

var (
	once sync.Once
	base *slog.Logger
)

// Options configures the process-wide logger.
type Options struct {
	Component  string
	FilePath   string // empty: stdout only
	Level      string // debug | info | warn | error
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init configures the global logger exactly once.
// Call this in main before building any use case; later calls return the
// logger built by the first one.
func Init(opts Options) *slog.Logger {
	once.Do(func() {
		var w io.Writer = os.Stdout
		if opts.FilePath != "" {
			_ = os.MkdirAll(filepath.Dir(opts.FilePath), 0o755)
			rot := &lumberjack.Logger{
				Filename:   opts.FilePath,
				MaxSize:    orDefault(opts.MaxSizeMB, 50),
				MaxBackups: orDefault(opts.MaxBackups, 3),
				MaxAge:     orDefault(opts.MaxAgeDays, 7),
			}
			w = io.MultiWriter(os.Stdout, rot)
		}

		base = newJSONLogger(w, opts)
	})
	return base
}

// newJSONLogger tags every line with the service component; modules add
// their own "module" attribute on top.
func newJSONLogger(w io.Writer, opts Options) *slog.Logger {
	component := opts.Component
	if component == "" {
		component = "storefront"
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	return slog.New(h).With("component", component)
}

// Base returns the global logger, falling back to a stdout-only logger when
// Init was never called (tests, tools).
func Base() *slog.Logger {
	return Init(Options{})
}

// New returns a child logger for one module of the service.
// It reuses the global handler/writer.
func New(module string) *slog.Logger {
	return moduleLogger(Base(), module)
}

func moduleLogger(parent *slog.Logger, module string) *slog.Logger {
	return parent.With("module", module)
}

// WithCtx stores a logger in a standard context (useful outside Gin).
func WithCtx(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromCtx fetches a logger from ctx or falls back to the global one.
func FromCtx(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return Base()
}

// With stores the request-scoped logger in gin.Context.
func With(c *gin.Context, l *slog.Logger) {
	c.Set(ginLoggerKey, l)
	c.Request = c.Request.WithContext(WithCtx(c.Request.Context(), l))
}

// From returns the request-scoped logger from gin.Context, or the global one.
func From(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(ginLoggerKey); ok {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return Base()
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
