package repository

import (
	"context"
	"database/sql"
	"time"

	"messenger-backend/internal/domain/chat"
	"messenger-backend/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetUserByID(ctx context.Context, id int64) (user.User, error)
	GetUserByUsername(ctx context.Context, username string) (user.User, error)
	UpdateProfile(ctx context.Context, id int64, firstName, lastName, displayName, avatarURL sql.NullString) error
	UpdateLastSeen(ctx context.Context, userID int64, lastSeen time.Time) error

	SearchUsers(ctx context.Context, query string, excludeUserID int64, limit int) ([]user.SearchResult, error)

	GetUserContacts(ctx context.Context, userID int64) ([]user.ContactProfile, error)
	AddContact(ctx context.Context, c *user.Contact) (created bool, err error)
}

type ChatRepository interface {
	CreateChat(ctx context.Context, c *chat.Chat) error
	FindChatByPair(ctx context.Context, user1ID, user2ID int64) (chat.Chat, error)
	GetUserChats(ctx context.Context, userID int64) ([]chat.Summary, error)

	CreateMessage(ctx context.Context, m *chat.Message) error
	GetChatMessages(ctx context.Context, chatID int64) ([]chat.MessageWithSender, error)

	SetTyping(ctx context.Context, chatID, userID int64, at time.Time) error
	IsPeerTyping(ctx context.Context, chatID, userID int64, since time.Time) (bool, error)
}
