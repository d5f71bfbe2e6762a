// Package server arranca la API HTTP y, si hay broker configurado, el ingest MQTT.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ingest "medtrack/internal/adapters/ingest/mqtt"
	"medtrack/internal/adapters/storage"
	"medtrack/internal/domain/records"
	"medtrack/internal/platform/config"
	"medtrack/internal/platform/logger"
	"medtrack/internal/router"
)

const shutdownTimeout = 10 * time.Second

// Run bloquea hasta que ctx termina o el servidor falla.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	}
	return Serve(ctx, ln, cfg, log)
}

// Serve es Run sobre un listener ya abierto (tests con puerto :0).
func Serve(ctx context.Context, ln net.Listener, cfg *config.Config, log logger.Logger) error {
	if log == nil {
		log = logger.NewFromEnv()
	}

	loc, err := cfg.Location()
	if err != nil {
		_ = ln.Close()
		return err
	}

	stores, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		_ = ln.Close()
		return err
	}
	defer func() {
		if err := stores.Close(); err != nil {
			log.Warn("closing store", map[string]any{"error": err})
		}
	}()
	log.Info("storage ready", map[string]any{"backend": stores.Backend})

	if cfg.MQTT.Enabled() {
		sub, err := ingest.NewSubscriber(cfg.MQTT, records.NewService(stores.Records), loc, log)
		if err != nil {
			_ = ln.Close()
			return err
		}
		if err := sub.Start(ctx); err != nil {
			// la API sigue funcionando sin dispensador
			log.Error("mqtt ingest disabled", map[string]any{"error": err})
		} else {
			defer sub.Stop()
		}
	}

	srv := &http.Server{
		Handler: router.NewRouter(router.Options{
			Stores:   stores,
			Logger:   log,
			Location: loc,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": ln.Addr().String(), "timezone": loc.String()})
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("shutting down", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	return nil
}
