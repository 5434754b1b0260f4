package config

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once     sync.Once
	instance *Config
)

// Default path of the env file, missing file is fine
const EnvFile = "./configs/.env"

type Config struct {
	v *viper.Viper
}

var defaults = map[string]any{
	"API_ADDRESS":         ":8080",
	"STORAGE_BACKEND":     "sqlite",
	"SQLITE_PATH":         "./data/habitlog.db",
	"STORAGE_RETRY_DELAY": "200ms",
	"REDIS_DB":            0,
	"KAFKA_TOPIC":         "habit-events",
	"LOG_LEVEL":           "info",
	"JWT_TTL":             "1h",
	"TIMEZONE":            "Local",
}

// New reads the env file once and serves every later call from the same instance
func New() *Config {
	once.Do(func() {
		instance = Load(EnvFile)
	})
	return instance
}

// Load builds a fresh config. Environment wins over the env file.
func Load(envFile string) *Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			slog.Debug("env file not loaded", slog.String("path", envFile), slog.String("error", err.Error()))
		}
	}
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return &Config{v: v}
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// GetList splits a comma separated value, dropping empty items
func (c *Config) GetList(key string) []string {
	var out []string
	for _, item := range strings.Split(c.v.GetString(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Location resolves TIMEZONE. Unknown names fall back to time.Local
func (c *Config) Location() *time.Location {
	name := c.v.GetString("TIMEZONE")
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone, using local", slog.String("timezone", name))
		return time.Local
	}
	return loc
}
