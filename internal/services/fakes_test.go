package services

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"messenger-backend/internal/domain/chat"
	"messenger-backend/internal/domain/user"
	messenger_errors "messenger-backend/pkg/errors"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]user.User
	contacts []user.Contact
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return messenger_errors.ErrAlreadyExists
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.User{}, messenger_errors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, messenger_errors.ErrNotFound
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, firstName, lastName, displayName, avatarURL sql.NullString) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return messenger_errors.ErrNotFound
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.DisplayName = displayName
	u.AvatarURL = avatarURL
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdateLastSeen(_ context.Context, userID int64, lastSeen time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return messenger_errors.ErrNotFound
	}
	u.LastSeen = sql.NullTime{Time: lastSeen, Valid: true}
	f.users[userID] = u
	return nil
}

func (f *fakeUserRepo) SearchUsers(_ context.Context, query string, excludeUserID int64, limit int) ([]user.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var results []user.SearchResult
	for _, u := range f.users {
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
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			AvatarURL:   u.AvatarURL,
			IsVerified:  u.IsVerified,
			IsContact:   f.isContactLocked(excludeUserID, u.ID),
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

func (f *fakeUserRepo) isContactLocked(userID, contactUserID int64) bool {
	for _, c := range f.contacts {
		if c.UserID == userID && c.ContactUserID == contactUserID {
			return true
		}
	}
	return false
}

func (f *fakeUserRepo) GetUserContacts(_ context.Context, userID int64) ([]user.ContactProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var profiles []user.ContactProfile
	for _, c := range f.contacts {
		if c.UserID != userID {
			continue
		}
		u := f.users[c.ContactUserID]
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

func (f *fakeUserRepo) AddContact(_ context.Context, c *user.Contact) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.isContactLocked(c.UserID, c.ContactUserID) {
		return false, nil
	}
	c.ID = int64(len(f.contacts) + 1)
	f.contacts = append(f.contacts, *c)
	return true, nil
}

// fakeChatRepo is an in-memory ChatRepository for service tests.
type fakeChatRepo struct {
	mu       sync.Mutex
	nextID   int64
	chats    map[int64]chat.Chat
	messages []chat.Message
	typing   map[[2]int64]time.Time

	// failCreateChat makes the next CreateChat lose the unique index
	// race, simulating a concurrent duplicate insert.
	failCreateChat bool
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		nextID: 1,
		chats:  make(map[int64]chat.Chat),
		typing: make(map[[2]int64]time.Time),
	}
}

func (f *fakeChatRepo) CreateChat(_ context.Context, c *chat.Chat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateChat {
		f.failCreateChat = false
		c2 := chat.Chat{ID: f.nextID, User1ID: c.User1ID, User2ID: c.User2ID, CreatedAt: time.Now()}
		f.chats[c2.ID] = c2
		f.nextID++
		return messenger_errors.ErrAlreadyExists
	}
	for _, existing := range f.chats {
		if existing.User1ID == c.User1ID && existing.User2ID == c.User2ID {
			return messenger_errors.ErrAlreadyExists
		}
	}
	c.ID = f.nextID
	f.nextID++
	f.chats[c.ID] = *c
	return nil
}

func (f *fakeChatRepo) FindChatByPair(_ context.Context, user1ID, user2ID int64) (chat.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.chats {
		if (c.User1ID == user1ID && c.User2ID == user2ID) ||
			(c.User1ID == user2ID && c.User2ID == user1ID) {
			return c, nil
		}
	}
	return chat.Chat{}, messenger_errors.ErrNotFound
}

func (f *fakeChatRepo) GetUserChats(_ context.Context, userID int64) ([]chat.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var summaries []chat.Summary
	for _, c := range f.chats {
		if c.User1ID != userID && c.User2ID != userID {
			continue
		}
		other := c.User1ID
		if other == userID {
			other = c.User2ID
		}
		summary := chat.Summary{ChatID: c.ID, OtherUserID: other}
		for i := len(f.messages) - 1; i >= 0; i-- {
			if f.messages[i].ChatID == c.ID {
				summary.LastMessage = sql.NullString{String: f.messages[i].Content, Valid: true}
				summary.LastMessageTime = sql.NullTime{Time: f.messages[i].CreatedAt, Valid: true}
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

func (f *fakeChatRepo) CreateMessage(_ context.Context, m *chat.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.ID = int64(len(f.messages) + 1)
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeChatRepo) GetChatMessages(_ context.Context, chatID int64) ([]chat.MessageWithSender, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []chat.MessageWithSender
	for _, m := range f.messages {
		if m.ChatID == chatID {
			out = append(out, chat.MessageWithSender{Message: m})
		}
	}
	return out, nil
}

func (f *fakeChatRepo) SetTyping(_ context.Context, chatID, userID int64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typing[[2]int64{chatID, userID}] = at
	return nil
}

func (f *fakeChatRepo) IsPeerTyping(_ context.Context, chatID, userID int64, since time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, at := range f.typing {
		if key[0] == chatID && key[1] != userID && at.After(since) {
			return true, nil
		}
	}
	return false, nil
}
