package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Timeline TimelineConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=itineraries"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// TimelineConfig controls where timeline cards link to and how renders are cached.
type TimelineConfig struct {
	MapsBaseURL     string        `env:"MAPS_BASE_URL,      default=https://www.google.com/maps"`
	BookingURL      string        `env:"BOOKING_URL,        default=https://www.italotreno.it/en"`
	GuidePathPrefix string        `env:"GUIDE_PATH_PREFIX,  default=/museum/"`
	RenderCacheTTL  time.Duration `env:"RENDER_CACHE_TTL,   default=24h"`
	WarmupWorkers   int           `env:"WARMUP_WORKERS,     default=4"`
}

// IsDevelopment reports whether the service runs in a local development setup.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory, when present, is loaded first and
// never overrides variables already set.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
