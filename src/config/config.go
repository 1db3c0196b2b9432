package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIBaseURL = "https://campus-check-server.onrender.com/api/v1"
	DefaultPort       = "8888"
	DefaultGateCount  = 7
	DefaultTimeout    = 20 * time.Second
	DefaultMongoDB    = "CampusCheckDashboard"
)

// Config ค่าที่อ่านจาก .env / environment
type Config struct {
	AppURI         string
	APIBaseURL     string
	AllowedOrigins string

	SessionStore  string // memory | redis | mongo
	RedisURI      string
	RedisPassword string
	MongoURI      string
	MongoDB       string

	GateCount   int
	Location    *time.Location // nil = record's own offset
	HTTPTimeout time.Duration
}

// Load reads .env (optional) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, e.g. os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		AppURI:         orDefault(getenv("APP_URI"), DefaultPort),
		APIBaseURL:     orDefault(getenv("API_BASE_URL"), DefaultAPIBaseURL),
		AllowedOrigins: orDefault(getenv("ALLOWED_ORIGINS"), "*"),
		SessionStore:   orDefault(getenv("SESSION_STORE"), "memory"),
		RedisURI:       getenv("REDIS_URI"),
		RedisPassword:  getenv("REDIS_PASSWORD"),
		MongoURI:       getenv("MONGO_URI"),
		MongoDB:        orDefault(getenv("MONGO_DB"), DefaultMongoDB),
		GateCount:      DefaultGateCount,
		HTTPTimeout:    DefaultTimeout,
	}

	if v := getenv("GATE_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid GATE_COUNT %q", v)
		}
		cfg.GateCount = n
	}

	if v := getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q", v)
		}
		cfg.HTTPTimeout = d
	}

	if v := getenv("DASHBOARD_TIMEZONE"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DASHBOARD_TIMEZONE %q: %w", v, err)
		}
		cfg.Location = loc
	}

	switch cfg.SessionStore {
	case "memory":
	case "redis":
		if cfg.RedisURI == "" {
			return nil, fmt.Errorf("SESSION_STORE=redis requires REDIS_URI")
		}
	case "mongo":
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("SESSION_STORE=mongo requires MONGO_URI")
		}
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}

	return cfg, nil
}

// DurableSession reports whether the session token outlives the process. Only the
// memory store does not; production should run SESSION_STORE=redis or mongo.
func (c *Config) DurableSession() bool {
	return c.SessionStore != "memory"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
