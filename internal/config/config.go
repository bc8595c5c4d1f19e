package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/nfrund/demosite/internal/domain"
)

const devSessionSecret = "demosite-development-session-secret"

// Provider exposes configuration to the rest of the application.
type Provider interface {
	GetAppName() string
	GetAppEnv() string
	GetServerAddr() string
	GetSessionSecret() string
	GetLinksFile() string
	GetHotReload() bool
	GetSessionTTL() time.Duration
	GetSticky() bool
	GetSearchPlaceholder() string
	GetNavTransport() string
}

// Config holds all configuration for the application.
type Config struct {
	AppName           string        `validate:"required"`
	AppEnv            string        `validate:"oneof=development test production"`
	ServerAddr        string        `validate:"required"`
	SessionSecret     string        `validate:"required,min=16"`
	LinksFile         string
	HotReload         bool
	SessionTTL        time.Duration `validate:"gt=0"`
	Sticky            bool
	SearchPlaceholder string
	NavTransport      string        `validate:"oneof=htmx ws"`
}

// New loads configuration from the environment, reading a .env file first if
// one exists, and exits if it is invalid.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		AppName:           getEnv("APP_NAME", "Demo Site"),
		AppEnv:            getEnv("APP_ENV", "development"),
		ServerAddr:        getEnv("SERVER_ADDR", ":8080"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		LinksFile:         os.Getenv("NAV_LINKS_FILE"),
		SearchPlaceholder: getEnv("NAV_SEARCH_PLACEHOLDER", "Search…"),
		NavTransport:      getEnv("NAV_TRANSPORT", "htmx"),
	}

	var err error
	if cfg.HotReload, err = getBool("NAV_HOT_RELOAD", false); err != nil {
		return nil, err
	}
	if cfg.Sticky, err = getBool("NAV_STICKY", true); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("NAV_SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}

	if cfg.SessionSecret == "" && cfg.AppEnv == "development" {
		cfg.SessionSecret = devSessionSecret
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, key, err)
	}
	return d, nil
}

func (c *Config) GetAppName() string           { return c.AppName }
func (c *Config) GetAppEnv() string            { return c.AppEnv }
func (c *Config) GetServerAddr() string        { return c.ServerAddr }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetLinksFile() string         { return c.LinksFile }
func (c *Config) GetHotReload() bool           { return c.HotReload }
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }
func (c *Config) GetSticky() bool              { return c.Sticky }
func (c *Config) GetSearchPlaceholder() string { return c.SearchPlaceholder }
func (c *Config) GetNavTransport() string      { return c.NavTransport }
