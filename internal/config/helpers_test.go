package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// ApplyEnvOverrides
// ---------------------------------------------------------------------------

func Test_ApplyEnvOverrides_Cases(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		initial Config
		want    Config
	}{
		{
			name:    "token env set on empty config",
			env:     map[string]string{"JIANSHU_MCP_AUTH_TOKEN": "my-token"},
			initial: Config{},
			want:    Config{Server: ServerConfig{AuthToken: "my-token"}},
		},
		{
			name:    "token env overrides existing token",
			env:     map[string]string{"JIANSHU_MCP_AUTH_TOKEN": "new"},
			initial: Config{Server: ServerConfig{AuthToken: "old", Port: 9090}},
			want:    Config{Server: ServerConfig{AuthToken: "new", Port: 9090}},
		},
		{
			name:    "empty env does not override",
			env:     map[string]string{"JIANSHU_MCP_AUTH_TOKEN": "", "JIANSHU_GRAPHQL_URL": ""},
			initial: Config{Server: ServerConfig{AuthToken: "existing"}, GraphQL: GraphQLConfig{URL: "http://a"}},
			want:    Config{Server: ServerConfig{AuthToken: "existing"}, GraphQL: GraphQLConfig{URL: "http://a"}},
		},
		{
			name:    "graphql url and log level",
			env:     map[string]string{"JIANSHU_GRAPHQL_URL": "http://b/graphql", "JIANSHU_LOG_LEVEL": "debug"},
			initial: Config{GraphQL: GraphQLConfig{URL: "http://a", Timeout: 3}, Log: LogConfig{Level: "info", Format: "json"}},
			want:    Config{GraphQL: GraphQLConfig{URL: "http://b/graphql", Timeout: 3}, Log: LogConfig{Level: "debug", Format: "json"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"JIANSHU_MCP_AUTH_TOKEN", "JIANSHU_GRAPHQL_URL", "JIANSHU_LOG_LEVEL"} {
				t.Setenv(key, tt.env[key])
			}

			cfg := tt.initial
			ApplyEnvOverrides(&cfg)

			if cfg.Server != tt.want.Server {
				t.Errorf("Server = %+v, want %+v", cfg.Server, tt.want.Server)
			}
			if cfg.GraphQL.URL != tt.want.GraphQL.URL || cfg.GraphQL.Timeout != tt.want.GraphQL.Timeout {
				t.Errorf("GraphQL = %+v, want %+v", cfg.GraphQL, tt.want.GraphQL)
			}
			if cfg.Log != tt.want.Log {
				t.Errorf("Log = %+v, want %+v", cfg.Log, tt.want.Log)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// LoadDotEnv
// ---------------------------------------------------------------------------

func Test_LoadDotEnv_Precedence(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write(".env", "JIANSHU_GRAPHQL_URL=http://from-env\nJIANSHU_LOG_LEVEL=warn\n")
	write(".env.local", "JIANSHU_GRAPHQL_URL=http://from-local\n")

	t.Setenv("JIANSHU_ENV", "test")
	t.Setenv("JIANSHU_GRAPHQL_URL", "")
	t.Setenv("JIANSHU_LOG_LEVEL", "")
	t.Setenv("JIANSHU_MCP_AUTH_TOKEN", "preset")
	os.Unsetenv("JIANSHU_GRAPHQL_URL")
	os.Unsetenv("JIANSHU_LOG_LEVEL")

	LoadDotEnv(dir)

	if got := os.Getenv("JIANSHU_GRAPHQL_URL"); got != "http://from-local" {
		t.Errorf("JIANSHU_GRAPHQL_URL = %q, want http://from-local", got)
	}
	if got := os.Getenv("JIANSHU_LOG_LEVEL"); got != "warn" {
		t.Errorf("JIANSHU_LOG_LEVEL = %q, want warn", got)
	}
	if got := os.Getenv("JIANSHU_MCP_AUTH_TOKEN"); got != "preset" {
		t.Errorf("JIANSHU_MCP_AUTH_TOKEN = %q, existing value must win", got)
	}
}

func Test_LoadDotEnv_MissingDirectory(t *testing.T) {
	LoadDotEnv(filepath.Join(t.TempDir(), "nope"))
}

// ---------------------------------------------------------------------------
// EnsureAuthToken
// ---------------------------------------------------------------------------

func Test_EnsureAuthToken_Cases(t *testing.T) {
	t.Run("existing token preserved", func(t *testing.T) {
		cfg := &Config{Server: ServerConfig{AuthToken: "keep"}}
		got, err := EnsureAuthToken(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "keep" || cfg.Server.AuthToken != "keep" {
			t.Errorf("token = %q, cfg = %q, want keep", got, cfg.Server.AuthToken)
		}
	})

	t.Run("empty token generated", func(t *testing.T) {
		cfg := &Config{}
		got, err := EnsureAuthToken(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 32 {
			t.Errorf("len(token) = %d, want 32", len(got))
		}
		if cfg.Server.AuthToken != got {
			t.Errorf("cfg token %q != returned %q", cfg.Server.AuthToken, got)
		}
	})
}

// ---------------------------------------------------------------------------
// GenerateRandomToken
// ---------------------------------------------------------------------------

func Test_GenerateRandomToken_Cases(t *testing.T) {
	token, err := GenerateRandomToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(token) != 32 {
		t.Errorf("len = %d, want 32", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Errorf("token %q is not hex: %v", token, err)
	}
}

func Test_GenerateRandomToken_Unique(t *testing.T) {
	const n = 50
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := GenerateRandomToken()
			if err != nil {
				t.Errorf("GenerateRandomToken: %v", err)
				return
			}
			mu.Lock()
			seen[token] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	if len(seen) != n {
		t.Errorf("got %d unique tokens, want %d", len(seen), n)
	}
}
