// Package main is the entry point for the jianshu-mcp server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/jamesprial/jianshu-mcp/internal/articles"
	"github.com/jamesprial/jianshu-mcp/internal/auth"
	"github.com/jamesprial/jianshu-mcp/internal/config"
	"github.com/jamesprial/jianshu-mcp/internal/graphql"
	"github.com/jamesprial/jianshu-mcp/internal/logging"
	"github.com/jamesprial/jianshu-mcp/internal/safety"
	"github.com/jamesprial/jianshu-mcp/internal/schema"
	"github.com/jamesprial/jianshu-mcp/internal/tools"
	"github.com/jamesprial/jianshu-mcp/internal/users"
)

const (
	defaultConfigPath = "config.yaml"
	version           = "1.0.0"
	mcpPath           = "/mcp"
)

func main() {
	config.LoadDotEnv(".")

	cfg, cfgErr := loadConfig()
	config.ApplyEnvOverrides(cfg)

	logger := logging.New(cfg.Log)
	log := logging.WithComponent(logger, "server")
	if cfgErr != nil {
		log.WithError(cfgErr).Warn("could not load config, using defaults")
	}

	tokenBefore := cfg.Server.AuthToken
	token, err := config.EnsureAuthToken(cfg)
	if err != nil {
		log.WithError(err).Warn("could not generate auth token, running without authentication")
	} else if tokenBefore == "" {
		log.WithField("token", token).Info("generated auth token (set JIANSHU_MCP_AUTH_TOKEN to persist)")
	}

	auditLogger, closeAudit := openAudit(cfg.Audit, log)
	defer closeAudit()

	sch, err := schema.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load Jianshu schema")
	}

	httpClient, err := graphql.NewHTTPClient(cfg.GraphQL, graphql.WithLogger(logging.WithComponent(logger, "graphql")))
	if err != nil {
		log.WithError(err).Fatal("failed to create GraphQL client")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	client, err := graphql.NewInstrumentedClient(httpClient, reg)
	if err != nil {
		log.WithError(err).Fatal("failed to register GraphQL metrics")
	}

	var destructive []string
	destructive = append(destructive, articles.DestructiveTools...)
	destructive = append(destructive, users.DestructiveTools...)
	destructive = append(destructive, graphql.DestructiveTools...)
	destructive = safety.NewFilter(nil, cfg.Safety.SkipConfirmation).Select(destructive)
	confirm := safety.NewConfirmationTracker(destructive)
	log.WithField("tools", destructive).Info("confirmation required")

	var registrations []tools.Registration
	registrations = append(registrations, articles.ArticleTools(articles.NewGraphQLArticleManager(client), confirm, auditLogger)...)
	registrations = append(registrations, users.UserTools(users.NewGraphQLUserManager(client), confirm, auditLogger)...)
	registrations = append(registrations, graphql.GraphQLTools(client, sch, confirm, auditLogger)...)

	filter := safety.NewFilter(cfg.Safety.Tools.Allowlist, cfg.Safety.Tools.Denylist)
	enabled := tools.Filter(registrations, filter)

	mcpServer := server.NewMCPServer(
		"jianshu-mcp",
		version,
		server.WithToolCapabilities(false),
	)
	tools.RegisterAll(mcpServer, enabled)
	log.WithFields(logrus.Fields{
		"registered": len(enabled),
		"filtered":   len(registrations) - len(enabled),
	}).Info("tools registered")

	mux := http.NewServeMux()
	authMiddleware := auth.NewAuthMiddleware(cfg.Server.AuthToken, logging.WithComponent(logger, "auth"))
	mux.Handle(mcpPath, authMiddleware(server.NewStreamableHTTPServer(mcpServer)))
	if cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithFields(logrus.Fields{
			"addr":    addr,
			"graphql": httpClient.URL(),
		}).Info("jianshu-mcp listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	<-stop
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("graceful shutdown error")
	}
	log.Info("server stopped")
}

// loadConfig reads the file named by JIANSHU_MCP_CONFIG_PATH, or
// config.yaml. It always returns a usable Config; the error reports why the
// defaults were used instead.
func loadConfig() (*config.Config, error) {
	path := os.Getenv("JIANSHU_MCP_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// openAudit opens the audit log when enabled. The returned func closes it.
func openAudit(cfg config.AuditConfig, log *logrus.Entry) (*safety.AuditLogger, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.WithError(err).WithField("path", cfg.LogPath).Warn("could not open audit log, audit logging disabled")
		return nil, func() {}
	}
	return safety.NewAuditLogger(f), func() { _ = f.Close() }
}
