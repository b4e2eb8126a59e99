package services

import (
	"context"
	"errors"
	"time"

	"messenger-backend/internal/domain/chat"
	"messenger-backend/internal/repository"
	messenger_errors "messenger-backend/pkg/errors"
)

// TypingWindow is the trailing window inside which a typing timestamp
// still counts as "is typing".
const TypingWindow = 3 * time.Second

type ChatService struct {
	repo repository.ChatRepository
}

func NewChatService(repo repository.ChatRepository) *ChatService {
	return &ChatService{repo: repo}
}

type SendMessageInput struct {
	ChatID      int64
	SenderID    int64
	Content     string
	MessageType string
	FileURL     string
	FileName    string
}

func (s *ChatService) SendMessage(ctx context.Context, in SendMessageInput) (chat.Message, error) {
	if in.ChatID == 0 || in.SenderID == 0 {
		return chat.Message{}, messenger_errors.ErrInvalidInput
	}
	if in.MessageType == "" {
		in.MessageType = "text"
	}

	m := &chat.Message{
		ChatID:      in.ChatID,
		SenderID:    in.SenderID,
		Content:     in.Content,
		MessageType: in.MessageType,
		FileURL:     toNullString(in.FileURL),
		FileName:    toNullString(in.FileName),
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return chat.Message{}, err
	}
	return *m, nil
}

// CreateChat returns the chat for the unordered user pair, creating it
// when absent. The pair is normalized before insert so both orderings
// map to the same row; a concurrent duplicate insert loses the unique
// index race and falls back to the lookup.
func (s *ChatService) CreateChat(ctx context.Context, user1ID, user2ID int64) (chatID int64, created bool, err error) {
	if user1ID == 0 || user2ID == 0 || user1ID == user2ID {
		return 0, false, messenger_errors.ErrInvalidInput
	}
	if user1ID > user2ID {
		user1ID, user2ID = user2ID, user1ID
	}

	existing, err := s.repo.FindChatByPair(ctx, user1ID, user2ID)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, messenger_errors.ErrNotFound) {
		return 0, false, err
	}

	c := &chat.Chat{User1ID: user1ID, User2ID: user2ID, CreatedAt: time.Now()}
	if err := s.repo.CreateChat(ctx, c); err != nil {
		if errors.Is(err, messenger_errors.ErrAlreadyExists) {
			existing, err := s.repo.FindChatByPair(ctx, user1ID, user2ID)
			if err != nil {
				return 0, false, err
			}
			return existing.ID, false, nil
		}
		return 0, false, err
	}

	return c.ID, true, nil
}

func (s *ChatService) GetChats(ctx context.Context, userID int64) ([]chat.Summary, error) {
	if userID == 0 {
		return nil, messenger_errors.ErrInvalidInput
	}
	return s.repo.GetUserChats(ctx, userID)
}

func (s *ChatService) GetMessages(ctx context.Context, chatID int64) ([]chat.MessageWithSender, error) {
	if chatID == 0 {
		return nil, messenger_errors.ErrInvalidInput
	}
	return s.repo.GetChatMessages(ctx, chatID)
}

func (s *ChatService) SetTyping(ctx context.Context, chatID, userID int64) error {
	if chatID == 0 || userID == 0 {
		return messenger_errors.ErrInvalidInput
	}
	return s.repo.SetTyping(ctx, chatID, userID, time.Now())
}

// IsTyping reports whether any other participant of the chat recorded a
// typing event inside the trailing window. The querying user's own
// typing events never count.
func (s *ChatService) IsTyping(ctx context.Context, chatID, userID int64) (bool, error) {
	if chatID == 0 || userID == 0 {
		return false, messenger_errors.ErrInvalidInput
	}
	return s.repo.IsPeerTyping(ctx, chatID, userID, time.Now().Add(-TypingWindow))
}
