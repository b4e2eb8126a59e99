package chat

import "database/sql"

// MessageWithSender is a message row joined with the sender's display
// name and avatar.
type MessageWithSender struct {
	Message
	SenderName   sql.NullString
	SenderAvatar sql.NullString
}

// Summary is a chat annotated with the counterpart's identity and the
// most recent message, for the chat list.
type Summary struct {
	ChatID          int64
	OtherUserID     int64
	Username        string
	DisplayName     sql.NullString
	AvatarURL       sql.NullString
	LastMessage     sql.NullString
	LastMessageTime sql.NullTime
}
