package run

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type Runner struct {
	Logger          *zap.Logger
	ShutdownTimeout time.Duration
}

func New(log *zap.Logger, shutdownTimeout time.Duration) *Runner {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &Runner{Logger: log, ShutdownTimeout: shutdownTimeout}
}

// WithSignals runs start until it returns or SIGINT/SIGTERM arrives, then
// calls shutdown with a bounded context. It returns the process exit code.
func (r *Runner) WithSignals(start func() error, shutdown func(context.Context) error) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return r.run(ctx, start, shutdown)
}

func (r *Runner) run(ctx context.Context, start func() error, shutdown func(context.Context) error) int {
	errCh := make(chan error, 1)
	go func() {
		errCh <- start()
	}()

	select {
	case <-ctx.Done():
		r.Logger.Info("shutdown signal received")
		if err := r.graceful(shutdown); err != nil {
			r.Logger.Error("graceful shutdown failed", zap.Error(err))
			return 1
		}
		return 0
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		r.Logger.Error("service exited with error", zap.Error(err))
		return 1
	}
}

func (r *Runner) graceful(shutdown func(context.Context) error) error {
	c, cancel := context.WithTimeout(context.Background(), r.ShutdownTimeout)
	defer cancel()
	return shutdown(c)
}

func Exit(code int) {
	os.Exit(code)
}
