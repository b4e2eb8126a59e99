package chat

import (
	"database/sql"
	"time"
)

// Chat represents the chats table. Pairs are stored normalized
// (user1_id < user2_id) so the composite unique index covers both
// orderings of the same pair.
type Chat struct {
	ID        int64 `gorm:"primaryKey"`
	User1ID   int64 `gorm:"uniqueIndex:idx_chats_user_pair;not null"`
	User2ID   int64 `gorm:"uniqueIndex:idx_chats_user_pair;not null"`
	CreatedAt time.Time
}

// Message represents the messages table
type Message struct {
	ID          int64 `gorm:"primaryKey"`
	ChatID      int64 `gorm:"index;not null"`
	SenderID    int64 `gorm:"not null"`
	Content     string
	MessageType string `gorm:"default:text"`
	FileURL     sql.NullString
	FileName    sql.NullString
	CreatedAt   time.Time
}

// TypingIndicator represents the typing_indicators table.
// One row per (chat_id, user_id); a user counts as typing while
// last_typing is inside the trailing freshness window.
type TypingIndicator struct {
	ChatID     int64 `gorm:"primaryKey;autoIncrement:false"`
	UserID     int64 `gorm:"primaryKey;autoIncrement:false"`
	LastTyping time.Time
}

func (Chat) TableName() string {
	return "chats"
}

func (Message) TableName() string {
	return "messages"
}

func (TypingIndicator) TableName() string {
	return "typing_indicators"
}
