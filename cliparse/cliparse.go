package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Port        int
	BaseURL     string
	StorageType string
	DatabaseURL string
	RedisURL    string
	APITimeout  time.Duration
	LogLevel    string
	LogFormat   string

	AllowedOrigins []string
}

// LoadDotEnv loads a .env file into the environment if one exists.
// Variables that are already set are left alone.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
}

// ParseFlags validates flags and falls back to env variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-pick-web", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BaseURL, "api", "", "Backend API base URL")
	fs.StringVar(&cfg.StorageType, "s", "", "Client storage (memory, sqlite, postgres or redis)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite/postgres storage")
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL for redis storage")
	fs.DurationVar(&cfg.APITimeout, "timeout", 0, "Backend request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")
	origins := fs.String("origins", "", "Comma-separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	if cfg.BaseURL == "" {
		return Config{}, errors.New("backend URL required (use -api or BASE_URL env)")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.StorageType == "" {
		cfg.StorageType = os.Getenv("STORAGE_TYPE")
		if cfg.StorageType == "" {
			cfg.StorageType = StorageSQLite
		}
	}

	switch cfg.StorageType {
	case StorageMemory:
	case StorageSQLite, StoragePostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			if cfg.StorageType == StoragePostgres {
				return Config{}, errors.New("database URL required for postgres storage (use -d or DATABASE_URL env)")
			}
			cfg.DatabaseURL = "file:quickly-pick-web.db"
		}
	case StorageRedis:
		if cfg.RedisURL == "" {
			cfg.RedisURL = os.Getenv("REDIS_URL")
		}
		if cfg.RedisURL == "" {
			return Config{}, errors.New("redis URL required for redis storage (use -redis or REDIS_URL env)")
		}
	default:
		return Config{}, errors.New("storage type must be one of: memory, sqlite, postgres, redis")
	}

	if cfg.APITimeout == 0 {
		if s := os.Getenv("API_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid API_TIMEOUT env variable")
			}
			cfg.APITimeout = d
		} else {
			cfg.APITimeout = 10 * time.Second
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
	}

	if *origins == "" {
		*origins = os.Getenv("ALLOWED_ORIGINS")
	}
	for _, o := range strings.Split(*origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}
