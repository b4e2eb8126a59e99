package user

import "database/sql"

// ContactProfile is a contact row joined with the contact's public profile.
type ContactProfile struct {
	ID               int64
	ContactUserID    int64
	CustomName       sql.NullString
	Username         string
	DisplayName      sql.NullString
	AvatarURL        sql.NullString
	IsVerified       bool
	IsFriendOfAdmin  bool
	LastSeen         sql.NullTime
	StatusVisibility string
}

// SearchResult is a username search hit annotated with contact membership
// relative to the searching user.
type SearchResult struct {
	ID          int64
	Username    string
	DisplayName sql.NullString
	FirstName   sql.NullString
	LastName    sql.NullString
	AvatarURL   sql.NullString
	IsVerified  bool
	IsContact   bool
}
