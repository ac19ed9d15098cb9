package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DoyleJ11/odd-one-out/internal/config"
	"github.com/DoyleJ11/odd-one-out/internal/engine"
	"github.com/DoyleJ11/odd-one-out/internal/httpapi"
	"github.com/DoyleJ11/odd-one-out/internal/hub"
	"github.com/DoyleJ11/odd-one-out/internal/logging"
	"github.com/DoyleJ11/odd-one-out/internal/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := hub.NewHub(ctx, engine.NewSeeded, log.Named("hub"))

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, ws.Options{
		OriginPatterns: cfg.OriginPatterns,
		IdleTimeout:    cfg.WSIdleTimeout,
		Log:            log.Named("ws"),
	}, log.Named("http"))

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = h.Send(shutdownCtx, hub.ShutdownHub{})
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
