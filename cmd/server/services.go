package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/broadcast"
	"github.com/Nixie-Tech-LLC/minaret/internal/config"
	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
	"github.com/Nixie-Tech-LLC/minaret/internal/redis"
)

// initStore connects to PostgreSQL and applies migrations, or falls back to
// the in-memory store when DATABASE_URL is unset.
func initStore(ctx context.Context, cfg *config.Config) (db.Store, func()) {
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
		return db.NewMemoryStore(), func() {}
	}

	conn, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	if err := db.RunMigrations(conn, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}
	return db.NewStore(conn), func() { _ = conn.Close() }
}

// loadTimetable picks the base table: the one saved by an admin, then the
// YAML file at TIMETABLE_PATH, then prayer.DefaultTable.
func loadTimetable(ctx context.Context, cfg *config.Config, store db.Store) (prayer.Table, error) {
	saved, err := store.GetTimetable(ctx)
	switch {
	case err == nil:
		log.Info().Str("source", "database").Msg("timetable loaded")
		return saved, nil
	case !errors.Is(err, db.ErrNotFound):
		return prayer.Table{}, fmt.Errorf("load saved timetable: %w", err)
	}

	if cfg.TimetablePath != "" {
		table, err := prayer.LoadTable(cfg.TimetablePath)
		if err != nil {
			return prayer.Table{}, err
		}
		log.Info().Str("source", cfg.TimetablePath).Msg("timetable loaded")
		return table, nil
	}

	log.Info().Str("source", "default").Msg("timetable loaded")
	return prayer.DefaultTable, nil
}

// initLimiter returns a Redis window limiter for the application forms, or a
// limiter that allows everything when REDIS_ADDRESS is unset.
func initLimiter(ctx context.Context, cfg *config.Config) redis.Limiter {
	if cfg.RedisAddress == "" {
		log.Warn().Msg("REDIS_ADDRESS not set, form submissions are not rate limited")
		return redis.NoopLimiter{}
	}

	client := redis.NewClient(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("redis not reachable yet")
	} else {
		log.Info().Str("address", cfg.RedisAddress).Msg("connected to redis")
	}
	return redis.NewWindowLimiter(client, "minaret:forms", cfg.FormRateLimit, cfg.FormRateWindow)
}

// startAnnouncer publishes the next prayer to MQTT_TOPIC every
// RefreshInterval until ctx is done. It does nothing without a broker.
func startAnnouncer(ctx context.Context, cfg *config.Config, provider *prayer.Provider) func() {
	if cfg.MQTTBrokerURL == "" {
		log.Warn().Msg("MQTT_BROKER_URL not set, next-prayer announcements disabled")
		return func() {}
	}

	host, _ := os.Hostname()
	publisher, err := broadcast.NewMQTTPublisher(cfg.MQTTBrokerURL, "minaret-"+host)
	if err != nil {
		log.Error().Err(err).Msg("next-prayer announcements disabled")
		return func() {}
	}

	announcer := &broadcast.Announcer{
		Provider:  provider,
		Publisher: publisher,
		Topic:     cfg.MQTTTopic,
		City:      cfg.City,
		Location:  cfg.Location(),
		Interval:  cfg.RefreshInterval,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		announcer.Run(ctx)
	}()

	return func() {
		<-done
		publisher.Close()
	}
}
