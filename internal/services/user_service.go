package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"messenger-backend/internal/domain/user"
	"messenger-backend/internal/repository"
	messenger_errors "messenger-backend/pkg/errors"
)

const searchLimit = 20

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// SearchUsers performs a case-insensitive substring match on usernames,
// excluding the searching user, verified accounts first.
func (s *UserService) SearchUsers(ctx context.Context, query string, currentUserID int64) ([]user.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, messenger_errors.ErrInvalidInput
	}
	return s.repo.SearchUsers(ctx, query, currentUserID, searchLimit)
}

func (s *UserService) GetContacts(ctx context.Context, userID int64) ([]user.ContactProfile, error) {
	if userID == 0 {
		return nil, messenger_errors.ErrInvalidInput
	}
	return s.repo.GetUserContacts(ctx, userID)
}

// AddContactByUsername resolves the username and stores the contact.
// Adding an existing contact is a no-op that still succeeds.
func (s *UserService) AddContactByUsername(ctx context.Context, userID int64, contactUsername, customName string) (int64, error) {
	if userID == 0 || contactUsername == "" {
		return 0, messenger_errors.ErrInvalidInput
	}

	target, err := s.repo.GetUserByUsername(ctx, contactUsername)
	if err != nil {
		return 0, err
	}

	contact := &user.Contact{
		UserID:        userID,
		ContactUserID: target.ID,
		CustomName:    toNullString(customName),
		AddedAt:       time.Now(),
	}
	if _, err := s.repo.AddContact(ctx, contact); err != nil {
		return 0, err
	}

	return target.ID, nil
}

// AddContactByID stores the contact pair and reports whether a new row
// was created.
func (s *UserService) AddContactByID(ctx context.Context, userID, targetUserID int64) (bool, error) {
	if userID == 0 || targetUserID == 0 {
		return false, messenger_errors.ErrInvalidInput
	}

	contact := &user.Contact{
		UserID:        userID,
		ContactUserID: targetUserID,
		CustomName:    sql.NullString{},
		AddedAt:       time.Now(),
	}
	return s.repo.AddContact(ctx, contact)
}
