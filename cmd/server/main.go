package main

import (
	"context"
	"log"
	"strings"

	"github.com/suPer8Hu/rag-mentor/internal/ai"
	"github.com/suPer8Hu/rag-mentor/internal/chat"
	"github.com/suPer8Hu/rag-mentor/internal/config"
	"github.com/suPer8Hu/rag-mentor/internal/db"
	"github.com/suPer8Hu/rag-mentor/internal/embed"
	"github.com/suPer8Hu/rag-mentor/internal/httpapi"
	"github.com/suPer8Hu/rag-mentor/internal/mentor"
	"github.com/suPer8Hu/rag-mentor/internal/rag"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Connect(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	embedder := embed.NewOllamaEmbedder(cfg.OllamaBaseURL)
	retriever := rag.NewRetriever(embedder, rag.NewStore(gdb))
	history := chat.NewRepo(gdb)

	reg := ai.NewRegistry()
	reg.Register("ollama", func(ctx context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OllamaModel
		}
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, m, cfg.OllamaTimeout), nil
	})
	reg.Register("openrouter", func(ctx context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OpenRouterModel
		}
		return ai.NewOpenRouterProvider(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, m, cfg.OpenRouterSiteURL, cfg.OpenRouterAppName), nil
	})

	provider, err := reg.Get(context.Background(), cfg.AIProvider, "")
	if err != nil {
		log.Fatalf("ai provider: %v", err)
	}

	svc := mentor.NewService(history, retriever, provider, cfg.HistoryLimit, cfg.RetrieveTopK)

	r := httpapi.NewRouter(svc)

	log.Printf("[server] listening on %s provider=%s", cfg.HTTPAddr, cfg.AIProvider)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
