package chat

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in a conversation. The transcript is append-only:
// messages are never mutated or deleted, and ordering is by creation time.
type Message struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID string         `gorm:"type:text;not null;index:idx_chat_msg_conv_created,priority:1" json:"conversation_id"`
	Role           string         `gorm:"type:varchar(16);not null" json:"role"`
	Content        string         `gorm:"type:text;not null" json:"content"`
	Metadata       datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
	CreatedAt      time.Time      `gorm:"index:idx_chat_msg_conv_created,priority:2" json:"created_at"`
}

func (Message) TableName() string { return "chat_messages" }
