package config

import (
	"strings"
	"testing"
	"time"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", secret)
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("HTTPServer = %+v", cfg.HTTPServer)
	}
	if len(cfg.HTTPServer.AllowedOrigins) != 1 || cfg.HTTPServer.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.HTTPServer.AllowedOrigins)
	}
	if cfg.Storage.CacheTTL != 5*time.Minute || cfg.JWT.TTL != 24*time.Hour {
		t.Errorf("Storage/JWT = %+v %+v", cfg.Storage, cfg.JWT)
	}
	if cfg.Redis.Host != "" {
		t.Errorf("Redis.Host default = %q, want empty", cfg.Redis.Host)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{"missing secret", map[string]string{"STORAGE_DRIVER": "memory"}, "JWT_SECRET_KEY is required"},
		{"short secret", map[string]string{"JWT_SECRET_KEY": "short", "STORAGE_DRIVER": "memory"}, "at least 32"},
		{"unknown driver", map[string]string{"JWT_SECRET_KEY": secret, "STORAGE_DRIVER": "mongo"}, "unknown STORAGE_DRIVER"},
		{"bad port", map[string]string{"JWT_SECRET_KEY": secret, "STORAGE_DRIVER": "memory", "APP_PORT": "0"}, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}
