package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is the process configuration, read from the environment by Load.
type Config struct {
	HTTPAddr        string
	DBPath          string
	LogLevel        string
	LogFormat       string
	KafkaTopic      string
	KafkaBrokers    []string
	OrderRateLimit  float64
	ShutdownTimeout time.Duration
}

// Load reads the optional env files (".env" when none are given) and then
// the process environment. Variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		HTTPAddr:     env("HTTP_ADDR", ":5000"),
		DBPath:       env("DB_PATH", "orders.db"),
		LogLevel:     env("LOG_LEVEL", "info"),
		LogFormat:    env("LOG_FORMAT", "json"),
		KafkaBrokers: splitCSV(env("KAFKA_BROKERS", "")),
		KafkaTopic:   env("KAFKA_TOPIC", "orders"),
	}

	var err error
	if cfg.OrderRateLimit, err = strconv.ParseFloat(env("ORDER_RATE_LIMIT", "0"), 64); err != nil || cfg.OrderRateLimit < 0 {
		return Config{}, fmt.Errorf("ORDER_RATE_LIMIT: want a non-negative number, got %q", os.Getenv("ORDER_RATE_LIMIT"))
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(env("SHUTDOWN_TIMEOUT", "5s")); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// EventsEnabled reports whether order events should be published.
func (c Config) EventsEnabled() bool { return len(c.KafkaBrokers) > 0 }

// Logger builds the root logger writing to w.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	if c.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "tableside").Logger()
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	ps := strings.Split(s, ",")
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
