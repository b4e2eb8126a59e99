package user

import (
	"database/sql"
	"time"
)

// User represents the users table
type User struct {
	ID               int64  `gorm:"primaryKey"`
	Username         string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	DisplayName      sql.NullString
	FirstName        sql.NullString
	LastName         sql.NullString
	AvatarURL        sql.NullString
	IsAdmin          bool
	IsVerified       bool
	IsFriendOfAdmin  bool
	StatusVisibility string `gorm:"default:everyone"`
	LastSeen         sql.NullTime
	CreatedAt        time.Time
}

// Contact represents the contacts table.
// The (user_id, contact_user_id) pair is unique; inserts are idempotent.
type Contact struct {
	ID            int64 `gorm:"primaryKey"`
	UserID        int64 `gorm:"uniqueIndex:idx_contacts_user_pair;not null"`
	ContactUserID int64 `gorm:"uniqueIndex:idx_contacts_user_pair;not null"`
	CustomName    sql.NullString
	AddedAt       time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

func (Contact) TableName() string {
	return "contacts"
}
