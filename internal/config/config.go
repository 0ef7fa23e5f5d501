package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/scoring"
)

// Source kinds
const (
	SourceHTTP     = "http"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr           string
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// SourceConfig selects and configures where player records are read from
type SourceConfig struct {
	Kind string

	// HTTP API
	APIBaseURL string
	APIToken   string
	APITimeout time.Duration

	// Redis
	RedisURL       string
	RedisPassword  string
	RedisKeyPrefix string

	// Postgres
	PostgresDSN string
}

// LeaderboardConfig holds page-level settings
type LeaderboardConfig struct {
	// Path is the logical resource requested from the source
	Path string

	// DetailPath is the player detail page linked from each name
	DetailPath string

	Title string
}

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Source      SourceConfig
	Leaderboard LeaderboardConfig
	Scoring     scoring.Weights
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	defaults := scoring.DefaultWeights()

	return &Config{
		Server: ServerConfig{
			Addr:           getEnv("SERVER_ADDR", ":8086"),
			CORSOrigins:    getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
			RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Source: SourceConfig{
			Kind:           strings.ToLower(getEnv("SOURCE_KIND", SourceHTTP)),
			APIBaseURL:     strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
			APIToken:       getEnv("API_TOKEN", ""),
			APITimeout:     time.Duration(getEnvInt("API_TIMEOUT_SECONDS", 15)) * time.Second,
			RedisURL:       getEnv("REDIS_URL", "redis://localhost:6380"),
			RedisPassword:  getEnv("REDIS_PASSWORD", ""),
			RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "api:"),
			PostgresDSN:    getEnv("POSTGRES_DSN", ""),
		},
		Leaderboard: LeaderboardConfig{
			Path:       getEnv("LEADERBOARD_PATH", "/goleiros"),
			DetailPath: getEnv("PLAYER_DETAIL_PATH", "jogador.html"),
			Title:      getEnv("LEADERBOARD_TITLE", "Ranking de Goleiros"),
		},
		Scoring: scoring.Weights{
			Win:        getEnvFloat("POINTS_WIN", defaults.Win),
			Draw:       getEnvFloat("POINTS_DRAW", defaults.Draw),
			Save:       getEnvFloat("POINTS_SAVE", defaults.Save),
			Goal:       getEnvFloat("POINTS_GOAL", defaults.Goal),
			Infraction: getEnvFloat("POINTS_INFRACTION", defaults.Infraction),
		},
	}
}

// Validate checks that the selected source is fully configured
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceHTTP:
		if c.Source.APIBaseURL == "" {
			return fmt.Errorf("API_BASE_URL is required for source %q", c.Source.Kind)
		}
	case SourceRedis:
		if c.Source.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for source %q", c.Source.Kind)
		}
	case SourcePostgres:
		if c.Source.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for source %q", c.Source.Kind)
		}
	default:
		return fmt.Errorf("unknown SOURCE_KIND %q", c.Source.Kind)
	}

	if !strings.HasPrefix(c.Leaderboard.Path, "/") {
		return fmt.Errorf("LEADERBOARD_PATH must start with '/', got %q", c.Leaderboard.Path)
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping empty entries
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
