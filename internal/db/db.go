package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/suPer8Hu/rag-mentor/internal/chat"
	"github.com/suPer8Hu/rag-mentor/internal/rag"
)

// Connect opens the Postgres database and ensures the schema exists:
// the pgvector extension plus the chat message and document chunk tables.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := gdb.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return nil, fmt.Errorf("create vector extension: %w", err)
	}

	if err := gdb.AutoMigrate(&chat.Message{}, &rag.DocumentChunk{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return gdb, nil
}
