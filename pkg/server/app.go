package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"HousePrice/pkg/config"
	xhttp "HousePrice/pkg/http"
	applogger "HousePrice/pkg/logger"
)

// Mounter runs one-time startup work before the server accepts requests.
type Mounter interface {
	Mount(ctx context.Context) bool
}

// Worker is a background loop that runs until its context is cancelled.
type Worker func(ctx context.Context) error

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server

	mounters []Mounter
	workers  []Worker
	closers  []io.Closer
}

// New creates a new App serving handler.
func New(cfg *config.Config, log *applogger.Logger, handler xhttp.Handler) *App {
	if log == nil {
		log = applogger.Nop()
	}
	opts := []xhttp.ServerOption{
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithLogger(log),
		xhttp.WithMetrics(""),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(cfg.Metrics.Path))
	}
	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: xhttp.NewServer(handler, opts...),
	}
}

// OnMount registers startup work run once before serving.
func (a *App) OnMount(m Mounter) { a.mounters = append(a.mounters, m) }

// Go registers a background worker started with the server.
func (a *App) Go(w Worker) { a.workers = append(a.workers, w) }

// OnClose registers a resource closed after the server stops.
func (a *App) OnClose(c io.Closer) { a.closers = append(a.closers, c) }

// Server returns the HTTP server.
func (a *App) Server() *xhttp.Server { return a.httpServer }

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the application and blocks until ctx is done.
func (a *App) RunContext(ctx context.Context) error {
	for _, m := range a.mounters {
		live := m.Mount(ctx)
		a.log.Info("mounted",
			applogger.String("mounter", fmt.Sprintf("%T", m)),
			applogger.Bool("live", live),
		)
	}

	workCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{}, len(a.workers))
	for _, w := range a.workers {
		go func(w Worker) {
			defer func() { done <- struct{}{} }()
			if err := w(workCtx); err != nil {
				a.log.Error("worker error", applogger.Error(err))
			}
		}(w)
	}

	// Start HTTP server
	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("started",
		applogger.String("addr", a.httpServer.Addr()),
		applogger.String("env", a.cfg.Environment),
	)

	<-ctx.Done()
	a.log.Info("shutdown signal received")

	cancel()
	for range a.workers {
		<-done
	}
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	a.log.Info("shutting down...")

	// Stop applies the configured shutdown timeout.
	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn("close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
