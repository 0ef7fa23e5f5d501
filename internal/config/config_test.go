package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := config.LoadConfig()

	if cfg.Server.Addr != ":8086" {
		t.Errorf("Expected default server addr ':8086', got '%s'", cfg.Server.Addr)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("Unexpected default CORS origins: %v", cfg.Server.CORSOrigins)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("Expected 30s request timeout, got %v", cfg.Server.RequestTimeout)
	}

	if cfg.Source.Kind != config.SourceHTTP {
		t.Errorf("Expected default source 'http', got '%s'", cfg.Source.Kind)
	}
	if cfg.Source.APIBaseURL != "http://localhost:8080" {
		t.Errorf("Expected default API base URL, got '%s'", cfg.Source.APIBaseURL)
	}
	if cfg.Source.RedisKeyPrefix != "api:" {
		t.Errorf("Expected default redis key prefix 'api:', got '%s'", cfg.Source.RedisKeyPrefix)
	}

	if cfg.Leaderboard.Path != "/goleiros" {
		t.Errorf("Expected default path '/goleiros', got '%s'", cfg.Leaderboard.Path)
	}
	if cfg.Leaderboard.DetailPath != "jogador.html" {
		t.Errorf("Expected default detail path 'jogador.html', got '%s'", cfg.Leaderboard.DetailPath)
	}

	if cfg.Scoring.Win != 3 || cfg.Scoring.Infraction != -1 {
		t.Errorf("Unexpected default weights: %+v", cfg.Scoring)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadConfig_CustomValues(t *testing.T) {
	os.Setenv("SERVER_ADDR", ":9090")
	os.Setenv("CORS_ORIGINS", "http://a.example, ,http://b.example")
	os.Setenv("SOURCE_KIND", "REDIS")
	os.Setenv("API_BASE_URL", "http://api.example/")
	os.Setenv("REDIS_URL", "redis://cache:6379/2")
	os.Setenv("PLAYER_DETAIL_PATH", "/jogador")
	os.Setenv("POINTS_SAVE", "0.5")
	os.Setenv("API_TIMEOUT_SECONDS", "3")
	defer os.Clearenv()

	cfg := config.LoadConfig()

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected server addr ':9090', got '%s'", cfg.Server.Addr)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.example" {
		t.Errorf("Unexpected CORS origins: %v", cfg.Server.CORSOrigins)
	}
	if cfg.Source.Kind != config.SourceRedis {
		t.Errorf("Expected source 'redis', got '%s'", cfg.Source.Kind)
	}
	if cfg.Source.APIBaseURL != "http://api.example" {
		t.Errorf("Expected trailing slash trimmed, got '%s'", cfg.Source.APIBaseURL)
	}
	if cfg.Source.APITimeout != 3*time.Second {
		t.Errorf("Expected 3s API timeout, got %v", cfg.Source.APITimeout)
	}
	if cfg.Leaderboard.DetailPath != "/jogador" {
		t.Errorf("Expected detail path '/jogador', got '%s'", cfg.Leaderboard.DetailPath)
	}
	if cfg.Scoring.Save != 0.5 {
		t.Errorf("Expected save weight 0.5, got %v", cfg.Scoring.Save)
	}
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	os.Setenv("POINTS_WIN", "lots")
	os.Setenv("REQUEST_TIMEOUT_SECONDS", "soon")
	defer os.Clearenv()

	cfg := config.LoadConfig()

	if cfg.Scoring.Win != 3 {
		t.Errorf("Expected default win weight, got %v", cfg.Scoring.Win)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("Expected default request timeout, got %v", cfg.Server.RequestTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"http ok", func(c *config.Config) {}, false},
		{"unknown kind", func(c *config.Config) { c.Source.Kind = "ftp" }, true},
		{"postgres without dsn", func(c *config.Config) { c.Source.Kind = config.SourcePostgres }, true},
		{"postgres with dsn", func(c *config.Config) {
			c.Source.Kind = config.SourcePostgres
			c.Source.PostgresDSN = "postgres://localhost/board"
		}, false},
		{"redis without url", func(c *config.Config) {
			c.Source.Kind = config.SourceRedis
			c.Source.RedisURL = ""
		}, true},
		{"relative path", func(c *config.Config) { c.Leaderboard.Path = "goleiros" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			cfg := config.LoadConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
