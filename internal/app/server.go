package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start serves HTTP in the background. The returned channel is closed once a
// termination signal arrives or the listener fails.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})
	sigCtx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	failed := make(chan error, 1)
	go func() {
		slog.Info("userguard http server started", "address", a.httpServer.Addr)
		err := a.httpServer.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	go func() {
		defer close(done)
		defer stop()

		select {
		case <-sigCtx.Done():
			slog.Info("termination signal received, shutting down")
		case err := <-failed:
			slog.Error("http server stopped unexpectedly", "error", err)
		}
	}()

	return done
}

// Stop shuts the listener, waits for the consumers and background jobs, then
// releases resources in reverse dependency order.
func (a *App) Stop(ctx context.Context) {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "http server shutdown", "error", err)
	}

	// consumers observe a.ctx; cancel only after in-flight requests drained
	a.cancel()

	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "background job returned an error", "error", err)
	}

	for _, c := range a.closers {
		if err := c.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to release resource", "name", c.name, "error", err)
			continue
		}
		slog.DebugContext(ctx, "resource released", "name", c.name)
	}
	slog.InfoContext(ctx, "userguard stopped")
}
