package httpdto

// MessagesRequest is the POST body of the /messages endpoint.
type MessagesRequest struct {
	Action string `json:"action"`

	// send_message / set_typing
	ChatID      int64  `json:"chat_id"`
	SenderID    int64  `json:"sender_id"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
	FileURL     string `json:"file_url"`
	FileName    string `json:"file_name"`

	// add_contact
	UserID          int64  `json:"user_id"`
	ContactUsername string `json:"contact_username"`
	CustomName      string `json:"custom_name"`

	// create_chat
	User1ID int64 `json:"user1_id"`
	User2ID int64 `json:"user2_id"`
}

type MessageDTO struct {
	ID          int64   `json:"id"`
	ChatID      int64   `json:"chat_id"`
	SenderID    int64   `json:"sender_id"`
	Content     string  `json:"content"`
	MessageType string  `json:"message_type"`
	FileURL     *string `json:"file_url"`
	FileName    *string `json:"file_name"`
	CreatedAt   string  `json:"created_at"`
}

type MessageWithSenderDTO struct {
	MessageDTO
	SenderName   *string `json:"sender_name"`
	SenderAvatar *string `json:"sender_avatar"`
}

type ContactDTO struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	CustomName       *string `json:"custom_name"`
	Username         string  `json:"username"`
	DisplayName      *string `json:"display_name"`
	AvatarURL        *string `json:"avatar_url"`
	IsVerified       bool    `json:"is_verified"`
	IsFriendOfAdmin  bool    `json:"is_friend_of_admin"`
	LastSeen         *string `json:"last_seen"`
	StatusVisibility string  `json:"status_visibility"`
}

type ChatSummaryDTO struct {
	ChatID          int64   `json:"chat_id"`
	OtherUserID     int64   `json:"other_user_id"`
	Username        string  `json:"username"`
	DisplayName     *string `json:"display_name"`
	AvatarURL       *string `json:"avatar_url"`
	LastMessage     *string `json:"last_message"`
	LastMessageTime *string `json:"last_message_time"`
}

type SendMessageResponse struct {
	Success bool       `json:"success"`
	Message MessageDTO `json:"message"`
}

type AddContactResponse struct {
	Success       bool  `json:"success"`
	ContactUserID int64 `json:"contact_user_id"`
}

type ChatResponse struct {
	Success bool  `json:"success"`
	ChatID  int64 `json:"chat_id"`
}

type MessagesResponse struct {
	Success  bool                   `json:"success"`
	Messages []MessageWithSenderDTO `json:"messages"`
}

type ContactsResponse struct {
	Success  bool         `json:"success"`
	Contacts []ContactDTO `json:"contacts"`
}

type ChatsResponse struct {
	Success bool             `json:"success"`
	Chats   []ChatSummaryDTO `json:"chats"`
}

type TypingResponse struct {
	Success  bool `json:"success"`
	IsTyping bool `json:"is_typing"`
}
