// agentd — HTTP server routing natural-language requests to an
// internet-search handler or a database-management handler, with an
// optional language-model post-processing pass.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/arisng/agent-research/pkg/agent"
	"github.com/arisng/agent-research/pkg/api"
	"github.com/arisng/agent-research/pkg/config"
	"github.com/arisng/agent-research/pkg/dbadmin"
	"github.com/arisng/agent-research/pkg/llm"
	"github.com/arisng/agent-research/pkg/search"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// newLLMClient selects the language-model implementation from config.
// Handlers only ever see the llm.Client interface.
func newLLMClient(cfg *config.Config) llm.Client {
	switch cfg.LLM.Provider {
	case config.LLMProviderOpenAI:
		return llm.NewOpenAIClient(llm.OpenAIOptions{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			APIKey:  os.Getenv(cfg.LLM.APIKeyEnv),
			Timeout: cfg.LLM.Timeout,
		})
	default:
		return llm.NewMockClient()
	}
}

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_PATH", "./agentd.yaml"),
		"Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, continuing with existing environment")
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting agentd",
		"http_port", httpPort,
		"routing", cfg.Routing,
		"llm_provider", cfg.LLM.Provider)

	ctx := context.Background()

	dbConfig, err := dbadmin.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := dbadmin.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database", "host", dbConfig.Host, "database", dbConfig.Database)

	llmClient := newLLMClient(cfg)
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	searchClient := search.NewClient(search.Options{
		BaseURL:  cfg.Search.BaseURL,
		Timeout:  cfg.Search.Timeout,
		CacheTTL: cfg.Search.CacheTTL,
	})

	searchHandler := agent.NewSearchHandler(searchClient, llmClient)
	databaseHandler := agent.NewDatabaseHandler(dbClient, llmClient, cfg.FriendlyOutput)
	coordinator := agent.NewCoordinator(searchHandler, databaseHandler, llmClient, cfg.Routing)

	httpServer := api.NewServer(coordinator, searchHandler, databaseHandler, dbClient)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
