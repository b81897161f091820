package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/config"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := initStore(ctx, cfg)
	defer closeStore()

	table, err := loadTimetable(ctx, cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load timetable")
	}
	provider := prayer.NewProvider(table)

	waitAnnouncer := startAnnouncer(ctx, cfg, provider)

	if err := api.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.IsDevelopment() {
		r.Use(gin.Logger())
	}
	RegisterRoutes(r, cfg, Services{
		Store:    store,
		Provider: provider,
		Limiter:  initLimiter(ctx, cfg),
		Storage:  InitStorage(cfg),
	})

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("address", cfg.ServerAddress).
			Str("env", cfg.AppEnv).
			Str("city", cfg.City).
			Str("timezone", cfg.Timezone).
			Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	waitAnnouncer()
}
