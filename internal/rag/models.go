package rag

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// DocumentChunk is one contiguous text window from a source document.
// Chunks are immutable once written; re-ingestion appends new rows.
// The vector(384) column width must match embed.Dimension.
type DocumentChunk struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	DocID      string          `gorm:"type:text;not null;index"`
	ChunkIndex int             `gorm:"not null"`
	Content    string          `gorm:"type:text;not null"`
	Metadata   datatypes.JSON  `gorm:"type:jsonb"`
	Embedding  pgvector.Vector `gorm:"type:vector(384)"`
}

func (DocumentChunk) TableName() string { return "documents" }
