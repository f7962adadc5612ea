package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	// Postgres (pgvector)
	PGHost     string
	PGPort     string
	PGDatabase string
	PGUser     string
	PGPassword string

	// AI provider
	AIProvider        string
	OllamaBaseURL     string
	OllamaModel       string
	OllamaTimeout     time.Duration
	OpenRouterBaseURL string
	OpenRouterAPIKey  string
	OpenRouterModel   string
	OpenRouterSiteURL string
	OpenRouterAppName string

	// RAG pipeline
	DocsDir      string
	ChunkSize    int
	ChunkOverlap int
	RetrieveTopK int
	HistoryLimit int
}

func Load() Config {
	// Best effort: a missing .env is fine, plain env vars still apply.
	_ = godotenv.Load()

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8000"
	}

	aiProvider := os.Getenv("AI_PROVIDER")
	if aiProvider == "" {
		aiProvider = "ollama"
	}

	ollamaBaseURL := os.Getenv("OLLAMA_BASE_URL")
	if ollamaBaseURL == "" {
		ollamaBaseURL = "http://localhost:11434"
	}

	ollamaModel := os.Getenv("LLM_MODEL")
	if ollamaModel == "" {
		ollamaModel = "llama3.2:3b"
	}

	// 0 means no client timeout; the request context still cancels the call.
	var ollamaTimeout time.Duration
	if v := os.Getenv("OLLAMA_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ollamaTimeout = d
		}
	}

	openRouterBaseURL := os.Getenv("OPENROUTER_BASE_URL")
	if openRouterBaseURL == "" {
		openRouterBaseURL = "https://openrouter.ai/api/v1"
	}
	openRouterModel := os.Getenv("OPENROUTER_MODEL")
	if openRouterModel == "" {
		openRouterModel = "openrouter/auto"
	}

	docsDir := os.Getenv("DOCS_DIR")
	if docsDir == "" {
		docsDir = "docs/knowledge_base"
	}

	return Config{
		HTTPAddr: httpAddr,

		PGHost:     envOr("PGHOST", "localhost"),
		PGPort:     envOr("PGPORT", "5432"),
		PGDatabase: envOr("PGDATABASE", "rag_db"),
		PGUser:     envOr("PGUSER", "rag_user"),
		PGPassword: envOr("PGPASSWORD", "rag_pass"),

		AIProvider:        aiProvider,
		OllamaBaseURL:     ollamaBaseURL,
		OllamaModel:       ollamaModel,
		OllamaTimeout:     ollamaTimeout,
		OpenRouterBaseURL: openRouterBaseURL,
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:   openRouterModel,
		OpenRouterSiteURL: os.Getenv("OPENROUTER_SITE_URL"),
		OpenRouterAppName: os.Getenv("OPENROUTER_APP_NAME"),

		DocsDir:      docsDir,
		ChunkSize:    envOrInt("CHUNK_SIZE", 500),
		ChunkOverlap: envOrInt("CHUNK_OVERLAP", 50),
		RetrieveTopK: envOrInt("RETRIEVE_TOP_K", 5),
		HistoryLimit: envOrInt("CHAT_HISTORY_LIMIT", 6),
	}
}

// PostgresDSN builds the connection string for the pgvector-enabled store.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PGHost, c.PGPort, c.PGUser, c.PGPassword, c.PGDatabase,
	)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
