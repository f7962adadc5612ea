package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	"github.com/suPer8Hu/rag-mentor/internal/embed"
)

// Ingestor loads documents from a directory, chunks them, embeds each
// document's chunks in one batch, and persists them.
//
// Runs are append-only: re-ingesting the same directory inserts duplicate
// chunks rather than upserting. The inserted count is logged so repeated
// runs are visible.
type Ingestor struct {
	embedder     embed.Embedder
	store        ChunkStore
	chunkSize    int
	chunkOverlap int
}

func NewIngestor(embedder embed.Embedder, store ChunkStore, chunkSize, chunkOverlap int) *Ingestor {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if chunkOverlap < 0 {
		chunkOverlap = 50
	}
	return &Ingestor{
		embedder:     embedder,
		store:        store,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

type document struct {
	path string
	text string
}

// IngestDir walks dir recursively, ingesting every .md and .txt file.
// Returns the total number of chunks inserted.
func (ing *Ingestor) IngestDir(ctx context.Context, dir string) (int, error) {
	docs, err := loadDocs(dir)
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		log.Printf("[ingest] no documents found under %s", dir)
		return 0, nil
	}

	total := 0
	for _, doc := range docs {
		n, err := ing.ingestDoc(ctx, doc)
		if err != nil {
			return total, fmt.Errorf("ingest %s: %w", doc.path, err)
		}
		log.Printf("[ingest] inserted %d chunks from %s", n, doc.path)
		total += n
	}
	return total, nil
}

func (ing *Ingestor) ingestDoc(ctx context.Context, doc document) (int, error) {
	texts := ChunkText(doc.text, ing.chunkSize, ing.chunkOverlap)
	if len(texts) == 0 {
		return 0, nil
	}

	embeddings, err := ing.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}

	meta, err := json.Marshal(map[string]string{"source": doc.path})
	if err != nil {
		return 0, err
	}

	chunks := make([]DocumentChunk, 0, len(texts))
	for i, text := range texts {
		chunks = append(chunks, DocumentChunk{
			DocID:      doc.path,
			ChunkIndex: i,
			Content:    text,
			Metadata:   datatypes.JSON(meta),
			Embedding:  pgvector.NewVector(embeddings[i]),
		})
	}

	if err := ing.store.Insert(ctx, chunks); err != nil {
		return 0, fmt.Errorf("insert chunks: %w", err)
	}
	return len(chunks), nil
}

func loadDocs(dir string) ([]document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[ingest] directory %s does not exist", dir)
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var docs []document
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" && ext != ".txt" {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		docs = append(docs, document{path: path, text: string(b)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}
