package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// The embedding model is fixed in code on purpose: vectors from different
// models (or dimensions) are not comparable, and ingest and query must
// embed with the same one.
const (
	Model     = "all-minilm"
	Dimension = 384
)

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// OllamaEmbedder produces fixed-dimension vectors via Ollama /api/embeddings.
type OllamaEmbedder struct {
	BaseURL string
	Client  *http.Client
}

func NewOllamaEmbedder(baseURL string) *OllamaEmbedder {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &OllamaEmbedder{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type ollamaEmbedReq struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbedResp struct {
	Embedding []float32 `json:"embedding"`
	Error     string    `json:"error,omitempty"`
}

func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	b, err := json.Marshal(ollamaEmbedReq{Model: Model, Prompt: text})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/embeddings", e.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ollama embeddings: status %d", resp.StatusCode)
	}

	var decoded ollamaEmbedResp
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if decoded.Error != "" {
		return nil, errors.New(decoded.Error)
	}
	if len(decoded.Embedding) != Dimension {
		return nil, fmt.Errorf("ollama embeddings: got %d dimensions, want %d", len(decoded.Embedding), Dimension)
	}
	return decoded.Embedding, nil
}

// EmbedBatch embeds texts one by one; the endpoint takes a single prompt.
// Output always has the same length as the input.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("embedding text %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
