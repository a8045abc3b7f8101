package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.LLM.PrimaryModel != "GigaChat-Pro" {
		t.Errorf("PrimaryModel = %q, want GigaChat-Pro", cfg.LLM.PrimaryModel)
	}
	if cfg.LLM.FallbackModel != "GigaChat" {
		t.Errorf("FallbackModel = %q, want GigaChat", cfg.LLM.FallbackModel)
	}
	if cfg.LLM.RequestTimeout != 20*time.Second {
		t.Errorf("RequestTimeout = %v, want 20s", cfg.LLM.RequestTimeout)
	}
	if cfg.LLM.MaxRequestsPerMin != 14 {
		t.Errorf("MaxRequestsPerMin = %d, want 14", cfg.LLM.MaxRequestsPerMin)
	}
	if cfg.Demo.Username != "demo" {
		t.Errorf("Demo.Username = %q, want demo", cfg.Demo.Username)
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("JWT.Expiration = %v, want 24h", cfg.JWT.Expiration)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_PRIMARY_MODEL", "GigaChat-Max")
	t.Setenv("LLM_MAX_RPM", "5")
	t.Setenv("DEMO_USERNAME", "alice")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.LLM.PrimaryModel != "GigaChat-Max" {
		t.Errorf("PrimaryModel = %q, want GigaChat-Max", cfg.LLM.PrimaryModel)
	}
	if cfg.LLM.MaxRequestsPerMin != 5 {
		t.Errorf("MaxRequestsPerMin = %d, want 5", cfg.LLM.MaxRequestsPerMin)
	}
	if cfg.Demo.Username != "alice" {
		t.Errorf("Demo.Username = %q, want alice", cfg.Demo.Username)
	}
}

func TestLoad_TimeoutClamped(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want time.Duration
	}{
		{"below minimum", "3", 10 * time.Second},
		{"at minimum", "10", 10 * time.Second},
		{"inside band", "25", 25 * time.Second},
		{"above maximum", "120", 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LLM_REQUEST_TIMEOUT", tt.env)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.LLM.RequestTimeout != tt.want {
				t.Errorf("RequestTimeout = %v, want %v", cfg.LLM.RequestTimeout, tt.want)
			}
		})
	}
}
