package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/suPer8Hu/rag-mentor/internal/embed"
)

// Retriever embeds a question and fetches the closest stored chunks.
type Retriever struct {
	embedder embed.Embedder
	store    ChunkStore
}

func NewRetriever(embedder embed.Embedder, store ChunkStore) *Retriever {
	return &Retriever{embedder: embedder, store: store}
}

// RetrieveContext returns the contents of the k nearest chunks joined with a
// blank line, in ascending distance order. An empty store yields "".
// Embedder or store failures surface to the caller.
func (r *Retriever) RetrieveContext(ctx context.Context, question string, k int) (string, error) {
	if k <= 0 {
		k = 5
	}

	qEmb, err := r.embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("embed question: %w", err)
	}

	chunks, err := r.store.Nearest(ctx, qEmb, k)
	if err != nil {
		return "", fmt.Errorf("nearest chunks: %w", err)
	}

	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, c.Content)
	}
	return strings.Join(parts, "\n\n"), nil
}
