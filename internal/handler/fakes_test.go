package handler

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"messenger-backend/internal/domain/chat"
	"messenger-backend/internal/domain/user"
	messenger_errors "messenger-backend/pkg/errors"
)

// In-memory repositories backing the real services in router tests.

type memUserRepo struct {
	nextID   int64
	users    map[int64]user.User
	contacts []user.Contact
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[int64]user.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return messenger_errors.ErrAlreadyExists
		}
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = *u
	return nil
}

func (m *memUserRepo) GetUserByID(_ context.Context, id int64) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, messenger_errors.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, messenger_errors.ErrNotFound
}

func (m *memUserRepo) UpdateProfile(_ context.Context, id int64, firstName, lastName, displayName, avatarURL sql.NullString) error {
	u, ok := m.users[id]
	if !ok {
		return messenger_errors.ErrNotFound
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.DisplayName = displayName
	u.AvatarURL = avatarURL
	m.users[id] = u
	return nil
}

func (m *memUserRepo) UpdateLastSeen(_ context.Context, userID int64, lastSeen time.Time) error {
	u, ok := m.users[userID]
	if !ok {
		return messenger_errors.ErrNotFound
	}
	u.LastSeen = sql.NullTime{Time: lastSeen, Valid: true}
	m.users[userID] = u
	return nil
}

func (m *memUserRepo) SearchUsers(_ context.Context, query string, excludeUserID int64, limit int) ([]user.SearchResult, error) {
	var results []user.SearchResult
	for _, u := range m.users {
		if u.ID == excludeUserID {
			continue
		}
		if !strings.Contains(strings.ToLower(u.Username), strings.ToLower(query)) {
			continue
		}
		results = append(results, user.SearchResult{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			AvatarURL:   u.AvatarURL,
			IsVerified:  u.IsVerified,
			IsContact:   m.hasContact(excludeUserID, u.ID),
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].IsVerified != results[j].IsVerified {
			return results[i].IsVerified
		}
		return results[i].Username < results[j].Username
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (m *memUserRepo) hasContact(userID, contactUserID int64) bool {
	for _, c := range m.contacts {
		if c.UserID == userID && c.ContactUserID == contactUserID {
			return true
		}
	}
	return false
}

func (m *memUserRepo) GetUserContacts(_ context.Context, userID int64) ([]user.ContactProfile, error) {
	var profiles []user.ContactProfile
	for _, c := range m.contacts {
		if c.UserID != userID {
			continue
		}
		u := m.users[c.ContactUserID]
		profiles = append(profiles, user.ContactProfile{
			ID:               c.ID,
			ContactUserID:    c.ContactUserID,
			CustomName:       c.CustomName,
			Username:         u.Username,
			DisplayName:      u.DisplayName,
			AvatarURL:        u.AvatarURL,
			IsVerified:       u.IsVerified,
			IsFriendOfAdmin:  u.IsFriendOfAdmin,
			LastSeen:         u.LastSeen,
			StatusVisibility: u.StatusVisibility,
		})
	}
	return profiles, nil
}

func (m *memUserRepo) AddContact(_ context.Context, c *user.Contact) (bool, error) {
	if m.hasContact(c.UserID, c.ContactUserID) {
		return false, nil
	}
	c.ID = int64(len(m.contacts) + 1)
	m.contacts = append(m.contacts, *c)
	return true, nil
}

type memChatRepo struct {
	nextID   int64
	chats    map[int64]chat.Chat
	messages []chat.Message
	typing   map[[2]int64]time.Time
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{
		nextID: 1,
		chats:  make(map[int64]chat.Chat),
		typing: make(map[[2]int64]time.Time),
	}
}

func (m *memChatRepo) CreateChat(_ context.Context, c *chat.Chat) error {
	for _, existing := range m.chats {
		if existing.User1ID == c.User1ID && existing.User2ID == c.User2ID {
			return messenger_errors.ErrAlreadyExists
		}
	}
	c.ID = m.nextID
	m.nextID++
	m.chats[c.ID] = *c
	return nil
}

func (m *memChatRepo) FindChatByPair(_ context.Context, user1ID, user2ID int64) (chat.Chat, error) {
	for _, c := range m.chats {
		if (c.User1ID == user1ID && c.User2ID == user2ID) ||
			(c.User1ID == user2ID && c.User2ID == user1ID) {
			return c, nil
		}
	}
	return chat.Chat{}, messenger_errors.ErrNotFound
}

func (m *memChatRepo) GetUserChats(_ context.Context, userID int64) ([]chat.Summary, error) {
	var summaries []chat.Summary
	for _, c := range m.chats {
		if c.User1ID != userID && c.User2ID != userID {
			continue
		}
		other := c.User1ID
		if other == userID {
			other = c.User2ID
		}
		summary := chat.Summary{ChatID: c.ID, OtherUserID: other}
		for i := len(m.messages) - 1; i >= 0; i-- {
			if m.messages[i].ChatID == c.ID {
				summary.LastMessage = sql.NullString{String: m.messages[i].Content, Valid: true}
				summary.LastMessageTime = sql.NullTime{Time: m.messages[i].CreatedAt, Valid: true}
				break
			}
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		ti, tj := summaries[i].LastMessageTime, summaries[j].LastMessageTime
		if ti.Valid != tj.Valid {
			return ti.Valid
		}
		return ti.Time.After(tj.Time)
	})
	return summaries, nil
}

func (m *memChatRepo) CreateMessage(_ context.Context, msg *chat.Message) error {
	msg.ID = int64(len(m.messages) + 1)
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memChatRepo) GetChatMessages(_ context.Context, chatID int64) ([]chat.MessageWithSender, error) {
	var out []chat.MessageWithSender
	for _, msg := range m.messages {
		if msg.ChatID == chatID {
			out = append(out, chat.MessageWithSender{Message: msg})
		}
	}
	return out, nil
}

func (m *memChatRepo) SetTyping(_ context.Context, chatID, userID int64, at time.Time) error {
	m.typing[[2]int64{chatID, userID}] = at
	return nil
}

func (m *memChatRepo) IsPeerTyping(_ context.Context, chatID, userID int64, since time.Time) (bool, error) {
	for key, at := range m.typing {
		if key[0] == chatID && key[1] != userID && at.After(since) {
			return true, nil
		}
	}
	return false, nil
}
