package main

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mhasan05/teamerror-portfolio/internal/config"
	"github.com/mhasan05/teamerror-portfolio/internal/devapi"
	"github.com/mhasan05/teamerror-portfolio/internal/logger"
)

// Run starts the development content API and blocks until shutdown or error.
func Run() error {
	log := logger.New("content-devserver")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	log = log.Level(cfg.Level())
	cfg.LogFields(log.Info()).Msg("Content dev server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := newHTTPServer(ctx, cfg.DevAddr, buildRouter(devapi.NewStore(), log))
	errCh := serveHTTP(server, log)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// buildRouter mounts the content API and the metrics endpoint.
func buildRouter(store *devapi.Store, log zerolog.Logger) *mux.Router {
	root := devapi.NewRouter(devapi.NewHandler(store, log), log)
	root.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return root
}

func newHTTPServer(ctx context.Context, addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}
