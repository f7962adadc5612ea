package rag

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChunkStore persists document chunks and orders them by vector distance.
type ChunkStore interface {
	Insert(ctx context.Context, chunks []DocumentChunk) error
	Nearest(ctx context.Context, embedding []float32, k int) ([]DocumentChunk, error)
}

// Store is the Postgres/pgvector implementation of ChunkStore.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, chunks []DocumentChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&chunks).Error
}

// Nearest returns the k chunks closest to the given embedding, ascending by
// L2 distance (pgvector's <-> operator).
func (s *Store) Nearest(ctx context.Context, embedding []float32, k int) ([]DocumentChunk, error) {
	var chunks []DocumentChunk
	err := s.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                "embedding <-> ?",
				Vars:               []interface{}{pgvector.NewVector(embedding)},
				WithoutParentheses: true,
			},
		}).
		Limit(k).
		Find(&chunks).Error
	if err != nil {
		return nil, err
	}
	return chunks, nil
}
