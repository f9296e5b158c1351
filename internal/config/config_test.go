package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTempFile creates a temporary file with the given content and returns its path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file %s: %v", path, err)
	}
	return path
}

const fullConfigYAML = `
server:
  port: 9191
  auth_token: "secret"
graphql:
  url: "https://api.jianshu.example/graphql"
  timeout: 5
  headers:
    Authorization: "Bearer abc"
safety:
  tools:
    allowlist: ["article*", "user_*"]
    denylist: ["article_delete"]
  skip_confirmation: ["user_unfollow"]
audit:
  enabled: true
  log_path: "/var/log/jianshu/audit.log"
log:
  level: debug
  format: text
metrics:
  enabled: false
  path: "/internal/metrics"
`

func Test_LoadConfig_Cases(t *testing.T) {
	tests := []struct {
		name        string
		setupPath   func(t *testing.T) string
		wantErr     bool
		errContains string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "full file populates every section",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "full.yaml", fullConfigYAML)
			},
			validate: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Server.Port != 9191 {
					t.Errorf("Server.Port = %d, want 9191", cfg.Server.Port)
				}
				if cfg.Server.AuthToken != "secret" {
					t.Errorf("Server.AuthToken = %q, want secret", cfg.Server.AuthToken)
				}
				if cfg.GraphQL.URL != "https://api.jianshu.example/graphql" {
					t.Errorf("GraphQL.URL = %q", cfg.GraphQL.URL)
				}
				if cfg.GraphQL.Timeout != 5 {
					t.Errorf("GraphQL.Timeout = %d, want 5", cfg.GraphQL.Timeout)
				}
				if cfg.GraphQL.Headers["Authorization"] != "Bearer abc" {
					t.Errorf("GraphQL.Headers = %v", cfg.GraphQL.Headers)
				}
				if len(cfg.Safety.Tools.Allowlist) != 2 || cfg.Safety.Tools.Allowlist[1] != "user_*" {
					t.Errorf("Safety.Tools.Allowlist = %v", cfg.Safety.Tools.Allowlist)
				}
				if len(cfg.Safety.Tools.Denylist) != 1 || cfg.Safety.Tools.Denylist[0] != "article_delete" {
					t.Errorf("Safety.Tools.Denylist = %v", cfg.Safety.Tools.Denylist)
				}
				if len(cfg.Safety.SkipConfirmation) != 1 || cfg.Safety.SkipConfirmation[0] != "user_unfollow" {
					t.Errorf("Safety.SkipConfirmation = %v", cfg.Safety.SkipConfirmation)
				}
				if !cfg.Audit.Enabled || cfg.Audit.LogPath != "/var/log/jianshu/audit.log" {
					t.Errorf("Audit = %+v", cfg.Audit)
				}
				if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
					t.Errorf("Log = %+v", cfg.Log)
				}
				if cfg.Metrics.Enabled || cfg.Metrics.Path != "/internal/metrics" {
					t.Errorf("Metrics = %+v", cfg.Metrics)
				}
			},
		},
		{
			name: "partial file keeps defaults for absent fields",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "partial.yaml", "server:\n  port: 7000\n")
			},
			validate: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Server.Port != 7000 {
					t.Errorf("Server.Port = %d, want 7000", cfg.Server.Port)
				}
				if cfg.GraphQL.URL != DefaultConfig().GraphQL.URL {
					t.Errorf("GraphQL.URL = %q, want default", cfg.GraphQL.URL)
				}
				if cfg.Log.Level != "info" {
					t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
				}
				if !cfg.Metrics.Enabled {
					t.Error("Metrics.Enabled should keep its default")
				}
			},
		},
		{
			name: "empty file returns defaults",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "empty.yaml", "")
			},
			validate: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Server.Port != 8080 {
					t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
				}
				if cfg.GraphQL.Timeout != 30 {
					t.Errorf("GraphQL.Timeout = %d, want 30", cfg.GraphQL.Timeout)
				}
			},
		},
		{
			name: "missing file returns error",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			wantErr:     true,
			errContains: "failed to read config file",
		},
		{
			name: "invalid YAML returns unmarshal error",
			setupPath: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "invalid.yaml", "server: [unclosed\n")
			},
			wantErr:     true,
			errContains: "unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.setupPath(t))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				if cfg != nil {
					t.Error("expected nil config on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func Test_DefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Server.Port", cfg.Server.Port, 8080},
		{"Server.AuthToken", cfg.Server.AuthToken, ""},
		{"GraphQL.URL", cfg.GraphQL.URL, "http://localhost:8000/graphql"},
		{"GraphQL.Timeout", cfg.GraphQL.Timeout, 30},
		{"Audit.Enabled", cfg.Audit.Enabled, false},
		{"Audit.LogPath", cfg.Audit.LogPath, "audit.log"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "json"},
		{"Metrics.Enabled", cfg.Metrics.Enabled, true},
		{"Metrics.Path", cfg.Metrics.Path, "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func Test_DefaultConfig_ReturnsNewInstance(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	if a == b {
		t.Fatal("DefaultConfig returned the same pointer twice")
	}
	a.Server.Port = 1
	if b.Server.Port != 8080 {
		t.Error("mutating one config affected another")
	}
}
