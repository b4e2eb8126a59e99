package repository

import (
	"context"
	"errors"
	"time"

	"messenger-backend/internal/domain/chat"
	messenger_errors "messenger-backend/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) CreateChat(ctx context.Context, c *chat.Chat) error {
	res := r.db.WithContext(ctx).Create(c)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return messenger_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresChatRepository) FindChatByPair(ctx context.Context, user1ID, user2ID int64) (chat.Chat, error) {
	var c chat.Chat
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
			user1ID, user2ID, user2ID, user1ID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chat.Chat{}, messenger_errors.ErrNotFound
		}
		return chat.Chat{}, err
	}
	return c, nil
}

func (r *PostgresChatRepository) GetUserChats(ctx context.Context, userID int64) ([]chat.Summary, error) {
	var chats []chat.Summary
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id AS chat_id,
		       CASE WHEN c.user1_id = @uid THEN c.user2_id ELSE c.user1_id END AS other_user_id,
		       u.username, u.display_name, u.avatar_url,
		       (SELECT content FROM messages WHERE chat_id = c.id ORDER BY created_at DESC LIMIT 1) AS last_message,
		       (SELECT created_at FROM messages WHERE chat_id = c.id ORDER BY created_at DESC LIMIT 1) AS last_message_time
		FROM chats c
		JOIN users u ON (CASE WHEN c.user1_id = @uid THEN c.user2_id ELSE c.user1_id END) = u.id
		WHERE c.user1_id = @uid OR c.user2_id = @uid
		ORDER BY last_message_time DESC NULLS LAST`,
		map[string]interface{}{"uid": userID}).
		Scan(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *PostgresChatRepository) CreateMessage(ctx context.Context, m *chat.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PostgresChatRepository) GetChatMessages(ctx context.Context, chatID int64) ([]chat.MessageWithSender, error) {
	var messages []chat.MessageWithSender
	err := r.db.WithContext(ctx).
		Table("messages m").
		Select(`m.id, m.chat_id, m.sender_id, m.content, m.message_type,
			m.file_url, m.file_name, m.created_at,
			u.display_name AS sender_name, u.avatar_url AS sender_avatar`).
		Joins("JOIN users u ON m.sender_id = u.id").
		Where("m.chat_id = ?", chatID).
		Order("m.created_at ASC").
		Scan(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *PostgresChatRepository) SetTyping(ctx context.Context, chatID, userID int64, at time.Time) error {
	indicator := chat.TypingIndicator{
		ChatID:     chatID,
		UserID:     userID,
		LastTyping: at,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chat_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_typing"}),
		}).
		Create(&indicator).Error
}

func (r *PostgresChatRepository) IsPeerTyping(ctx context.Context, chatID, userID int64, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&chat.TypingIndicator{}).
		Where("chat_id = ? AND user_id <> ? AND last_typing > ?", chatID, userID, since).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
