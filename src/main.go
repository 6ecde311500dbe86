package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownGrace = 10 * time.Second

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := LoadConfig()

	repo, err := NewRepository(cfg.DBPath)
	must(err)
	defer repo.Close()

	publisher := NewQueuePublisher(cfg.RabbitURL, cfg.RabbitQueue)
	inventory := NewInventoryClient(cfg.InventoryBaseURL, cfg.InventoryTimeout)
	svc := NewOrderService(repo, publisher, inventory)
	srv := NewServer(svc, NewHMACVerifier(cfg.JWTSecret))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Señales para apagado limpio
	done := make(chan struct{})
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Warn().Msg("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = httpServer.Shutdown(ctx)
		close(done)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("order service listening")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve failed")
	}

	// Shutdown ya devolvió el control: esperar a que terminen los handlers
	// activos y drenar las publicaciones en vuelo antes de cerrar el repo.
	<-done
	svc.Wait()
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
