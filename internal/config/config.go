package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds environment-based settings
type Config struct {
	AppEnv         string
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string
	// submissions allowed per client per window
	FormRateLimit  int
	FormRateWindow time.Duration

	MQTTBrokerURL string
	MQTTTopic     string

	TimetablePath   string
	City            string
	Timezone        string
	RefreshInterval time.Duration

	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string
	UploadDir       string
}

// Load reads a .env file when present, then configuration from environment
// variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "production"),
		ServerAddress:  getEnv("SERVER_ADDRESS", ":8080"),
		SecretKey:      os.Getenv("JWT_SECRET"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		RedisAddress:   os.Getenv("REDIS_ADDRESS"),
		RedisUsername:  os.Getenv("REDIS_USERNAME"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		FormRateLimit:  getInt("FORM_RATE_LIMIT", 5),
		FormRateWindow: time.Duration(getInt("FORM_RATE_WINDOW_SECONDS", 3600)) * time.Second,

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		MQTTTopic:     getEnv("MQTT_TOPIC", "minaret/next-prayer"),

		TimetablePath:   os.Getenv("TIMETABLE_PATH"),
		City:            getEnv("CITY", "COLOMBO"),
		Timezone:        getEnv("TIMEZONE", "Asia/Colombo"),
		RefreshInterval: time.Duration(getInt("REFRESH_INTERVAL_SECONDS", 60)) * time.Second,

		UseSpaces:       os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("REFRESH_INTERVAL_SECONDS must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	if c.UseSpaces && (c.SpacesBucket == "" || c.SpacesEndpoint == "") {
		return fmt.Errorf("SPACES_BUCKET and SPACES_ENDPOINT are required when USE_SPACES=true")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Location returns the zone every "now" reading is taken in. Validate has
// already checked the name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("not an integer, using default")
		return defaultValue
	}
	return n
}
