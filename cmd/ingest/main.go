package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/suPer8Hu/rag-mentor/internal/config"
	"github.com/suPer8Hu/rag-mentor/internal/db"
	"github.com/suPer8Hu/rag-mentor/internal/embed"
	"github.com/suPer8Hu/rag-mentor/internal/rag"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[ingest] docs directory: %s", cfg.DocsDir)
	log.Printf("[ingest] embedding model: %s (%d dims)", embed.Model, embed.Dimension)

	gdb, err := db.Connect(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	embedder := embed.NewOllamaEmbedder(cfg.OllamaBaseURL)
	ing := rag.NewIngestor(embedder, rag.NewStore(gdb), cfg.ChunkSize, cfg.ChunkOverlap)

	total, err := ing.IngestDir(ctx, cfg.DocsDir)
	if err != nil {
		log.Fatalf("ingest: %v", err)
	}
	log.Printf("[ingest] done, inserted %d chunks", total)
}
