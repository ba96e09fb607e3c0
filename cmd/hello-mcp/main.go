// Command hello-mcp runs the reference tool server. The transport and
// address come from the environment (optionally via a .env file); see
// the config package for the recognized variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	hellomcp "github.com/mcpdev/hello-mcp"
	"github.com/mcpdev/hello-mcp/config"
	"github.com/mcpdev/hello-mcp/middleware"
	"github.com/mcpdev/hello-mcp/tools"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env file is not an error; explicit environment wins.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := newLogger(cfg)

	reg := hellomcp.New(hellomcp.Info{Name: "hello-mcp", Version: "1.0.0"})
	if err := tools.Register(reg); err != nil {
		logger.Error("tool registration failed", middleware.F("error", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server",
		middleware.F("transport", string(cfg.Transport)),
		middleware.F("addr", cfg.Addr),
	)

	serveOpts := []hellomcp.ServeOption{
		hellomcp.WithMiddleware(hellomcp.DefaultMiddleware(logger)...),
	}

	switch cfg.Transport {
	case config.TransportHTTP:
		err = hellomcp.ServeHTTP(ctx, reg, cfg.Addr, serveOpts...)
	case config.TransportWebSocket:
		err = hellomcp.ServeWebSocket(ctx, reg, cfg.Addr, serveOpts...)
	default:
		err = hellomcp.ServeStdio(ctx, reg, serveOpts...)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped", middleware.F("error", err.Error()))
		return 1
	}

	logger.Info("server stopped")
	return 0
}

// slogLogger adapts log/slog to the middleware logger interface.
// Output goes to stderr so stdout stays reserved for responses.
type slogLogger struct {
	l *slog.Logger
}

func newLogger(cfg *config.Config) *slogLogger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(handler)}
}

func (s *slogLogger) Info(msg string, fields ...middleware.Field)  { s.l.Info(msg, attrs(fields)...) }
func (s *slogLogger) Error(msg string, fields ...middleware.Field) { s.l.Error(msg, attrs(fields)...) }
func (s *slogLogger) Debug(msg string, fields ...middleware.Field) { s.l.Debug(msg, attrs(fields)...) }
func (s *slogLogger) Warn(msg string, fields ...middleware.Field)  { s.l.Warn(msg, attrs(fields)...) }

func attrs(fields []middleware.Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}
