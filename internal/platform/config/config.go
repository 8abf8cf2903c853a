// Package config builds runtime configuration from environment variables so
// main stays lean.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Database configures the assessment store.
type Database struct {
	URL string
}

// RedisConfig configures the report cache. An empty URL disables caching.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ReportTTL    time.Duration
}

// Kafka configures the compliance audit sink. Empty brokers disable it.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Report configures report assembly and rendering.
type Report struct {
	RenderTimeout time.Duration
}

// Config is the full runtime configuration.
type Config struct {
	Server   Server
	Database Database
	Redis    RedisConfig
	Kafka    Kafka
	Report   Report
}

// FromEnv builds a Config from environment variables, with development
// defaults for everything except the database URL.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:            envOr("ORBITA_ADDR", ":8080"),
			ShutdownTimeout: envDuration("ORBITA_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: Database{
			URL: os.Getenv("ORBITA_DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("ORBITA_REDIS_URL"),
			PoolSize:     envInt("ORBITA_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("ORBITA_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("ORBITA_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("ORBITA_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("ORBITA_REDIS_WRITE_TIMEOUT", 3*time.Second),
			ReportTTL:    envDuration("ORBITA_REPORT_CACHE_TTL", 15*time.Minute),
		},
		Kafka: Kafka{
			Brokers: envList("ORBITA_KAFKA_BROKERS"),
			Topic:   os.Getenv("ORBITA_KAFKA_AUDIT_TOPIC"),
		},
		Report: Report{
			RenderTimeout: envDuration("ORBITA_REPORT_RENDER_TIMEOUT", 30*time.Second),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
