// Package config provides configuration loading and defaults for the
// jianshu-mcp server.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ToolFilter holds allowlist and denylist glob patterns for tool names.
type ToolFilter struct {
	Allowlist []string `yaml:"allowlist"`
	Denylist  []string `yaml:"denylist"`
}

// SafetyConfig controls which tools are exposed and which of the
// destructive ones run without a confirmation token.
type SafetyConfig struct {
	Tools ToolFilter `yaml:"tools"`
	// SkipConfirmation holds glob patterns of destructive tools that run
	// immediately.
	SkipConfirmation []string `yaml:"skip_confirmation"`
}

// AuditConfig controls audit logging behaviour.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	LogPath string `yaml:"log_path"`
}

// ServerConfig holds network and authentication settings of the MCP endpoint.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	AuthToken string `yaml:"auth_token"`
}

// GraphQLConfig holds connection details for the Jianshu GraphQL API.
type GraphQLConfig struct {
	URL string `yaml:"url"`
	// Timeout is the HTTP request timeout in seconds.
	Timeout int `yaml:"timeout"`
	// Headers are sent verbatim with every request.
	Headers map[string]string `yaml:"headers"`
}

// LogConfig selects the log level and output format ("json" or "text").
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	GraphQL GraphQLConfig `yaml:"graphql"`
	Safety  SafetyConfig  `yaml:"safety"`
	Audit   AuditConfig   `yaml:"audit"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoadConfig reads a YAML configuration file. Fields absent from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a new Config populated with default values. Each call
// returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		GraphQL: GraphQLConfig{
			URL:     "http://localhost:8000/graphql",
			Timeout: 30,
		},
		Audit: AuditConfig{
			Enabled: false,
			LogPath: "audit.log",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
// Precedence, highest first: .env.<env>.local, .env.local, .env.<env>, .env,
// where <env> is JIANSHU_ENV (default "dev").
func LoadDotEnv(dir string) {
	env := os.Getenv("JIANSHU_ENV")
	if env == "" {
		env = "dev"
	}
	for _, name := range []string{".env." + env + ".local", ".env.local", ".env." + env, ".env"} {
		_ = godotenv.Load(filepath.Join(dir, name))
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment variables.
// Recognized variables:
//   - JIANSHU_MCP_AUTH_TOKEN overrides cfg.Server.AuthToken
//   - JIANSHU_GRAPHQL_URL overrides cfg.GraphQL.URL
//   - JIANSHU_LOG_LEVEL overrides cfg.Log.Level
func ApplyEnvOverrides(cfg *Config) {
	if token := os.Getenv("JIANSHU_MCP_AUTH_TOKEN"); token != "" {
		cfg.Server.AuthToken = token
	}
	if url := os.Getenv("JIANSHU_GRAPHQL_URL"); url != "" {
		cfg.GraphQL.URL = url
	}
	if level := os.Getenv("JIANSHU_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}

// EnsureAuthToken generates a random auth token and sets it on cfg if
// cfg.Server.AuthToken is empty. It returns the token (existing or generated).
func EnsureAuthToken(cfg *Config) (string, error) {
	if cfg.Server.AuthToken != "" {
		return cfg.Server.AuthToken, nil
	}
	token, err := GenerateRandomToken()
	if err != nil {
		return "", fmt.Errorf("generate auth token: %w", err)
	}
	cfg.Server.AuthToken = token
	return token, nil
}

// GenerateRandomToken returns a 32-character hex-encoded cryptographically
// random token string.
func GenerateRandomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}
	return hex.EncodeToString(b), nil
}
