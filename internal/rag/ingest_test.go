package rag

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIngestDir_ChunksAndPersists(t *testing.T) {
	dir := t.TempDir()
	text := strings.Repeat("go is fun. ", 100) // ~1100 bytes -> 3 chunks at 500/50
	if err := os.WriteFile(filepath.Join(dir, "doc.md"), []byte(text), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skip.pdf"), []byte("binary"), 0o644); err != nil {
		t.Fatalf("write skip: %v", err)
	}

	store := &fakeChunkStore{}
	ing := NewIngestor(&fakeEmbedder{vec: []float32{0.5}}, store, 500, 50)

	total, err := ing.IngestDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	wantChunks := len(ChunkText(text, 500, 50))
	if total != wantChunks {
		t.Fatalf("expected %d chunks, got %d", wantChunks, total)
	}
	if len(store.inserted) != wantChunks {
		t.Fatalf("expected %d persisted chunks, got %d", wantChunks, len(store.inserted))
	}

	for i, c := range store.inserted {
		if c.ChunkIndex != i {
			t.Fatalf("chunk %d has index %d", i, c.ChunkIndex)
		}
		if !strings.HasSuffix(c.DocID, "doc.md") {
			t.Fatalf("chunk %d has doc id %q", i, c.DocID)
		}
		if !strings.Contains(string(c.Metadata), "source") {
			t.Fatalf("chunk %d metadata missing source: %s", i, c.Metadata)
		}
	}
}

func TestIngestDir_MissingDirIsNotFatal(t *testing.T) {
	store := &fakeChunkStore{}
	ing := NewIngestor(&fakeEmbedder{vec: []float32{1}}, store, 500, 50)

	total, err := ing.IngestDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 chunks, got %d", total)
	}
}

func TestIngestDir_AppendsOnRerun(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("short doc"), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	store := &fakeChunkStore{}
	ing := NewIngestor(&fakeEmbedder{vec: []float32{1}}, store, 500, 50)

	for i := 0; i < 2; i++ {
		if _, err := ing.IngestDir(context.Background(), dir); err != nil {
			t.Fatalf("ingest run %d: %v", i, err)
		}
	}

	// append-only by design: two runs, two copies
	if len(store.inserted) != 2 {
		t.Fatalf("expected 2 inserted chunks after rerun, got %d", len(store.inserted))
	}
}
