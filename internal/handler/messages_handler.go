package handler

import (
	"net/http"
	"strconv"
	"time"

	"messenger-backend/internal/services"
	"messenger-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// MessagesHandler handles the /messages endpoint. Mutations go through
// POST with an action body, reads through GET with an action query
// parameter.
type MessagesHandler struct {
	chats *services.ChatService
	users *services.UserService
}

// NewMessagesHandler creates a messages handler.
func NewMessagesHandler(chats *services.ChatService, users *services.UserService) *MessagesHandler {
	return &MessagesHandler{chats: chats, users: users}
}

func (h *MessagesHandler) HandlePost(c *gin.Context) {
	var req httpdto.MessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	action, ok := ParseMessagesPostAction(req.Action)
	if !ok {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	switch action {
	case MessagesActionSendMessage:
		h.sendMessage(c, req)
	case MessagesActionAddContact:
		h.addContact(c, req)
	case MessagesActionCreateChat:
		h.createChat(c, req)
	case MessagesActionSetTyping:
		h.setTyping(c, req)
	}
}

func (h *MessagesHandler) HandleGet(c *gin.Context) {
	action, ok := ParseMessagesGetAction(c.Query("action"))
	if !ok {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	switch action {
	case MessagesActionGetMessages:
		h.getMessages(c)
	case MessagesActionGetContacts:
		h.getContacts(c)
	case MessagesActionGetChats:
		h.getChats(c)
	case MessagesActionIsTyping:
		h.isTyping(c)
	}
}

func (h *MessagesHandler) sendMessage(c *gin.Context, req httpdto.MessagesRequest) {
	m, err := h.chats.SendMessage(c.Request.Context(), services.SendMessageInput{
		ChatID:      req.ChatID,
		SenderID:    req.SenderID,
		Content:     req.Content,
		MessageType: req.MessageType,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.SendMessageResponse{
		Success: true,
		Message: httpdto.MessageDTO{
			ID:          m.ID,
			ChatID:      m.ChatID,
			SenderID:    m.SenderID,
			Content:     m.Content,
			MessageType: m.MessageType,
			FileURL:     nullableString(m.FileURL),
			FileName:    nullableString(m.FileName),
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (h *MessagesHandler) addContact(c *gin.Context, req httpdto.MessagesRequest) {
	contactID, err := h.users.AddContactByUsername(c.Request.Context(), req.UserID, req.ContactUsername, req.CustomName)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.AddContactResponse{Success: true, ContactUserID: contactID})
}

func (h *MessagesHandler) createChat(c *gin.Context, req httpdto.MessagesRequest) {
	chatID, created, err := h.chats.CreateChat(c.Request.Context(), req.User1ID, req.User2ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, httpdto.ChatResponse{Success: true, ChatID: chatID})
}

func (h *MessagesHandler) setTyping(c *gin.Context, req httpdto.MessagesRequest) {
	if err := h.chats.SetTyping(c.Request.Context(), req.ChatID, req.UserID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.OKResponse{Success: true})
}

func (h *MessagesHandler) getMessages(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Query("chat_id"), 10, 64)
	if err != nil || chatID <= 0 {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	messages, err := h.chats.GetMessages(c.Request.Context(), chatID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	dtos := make([]httpdto.MessageWithSenderDTO, len(messages))
	for i, m := range messages {
		dtos[i] = httpdto.MessageWithSenderDTO{
			MessageDTO: httpdto.MessageDTO{
				ID:          m.ID,
				ChatID:      m.ChatID,
				SenderID:    m.SenderID,
				Content:     m.Content,
				MessageType: m.MessageType,
				FileURL:     nullableString(m.FileURL),
				FileName:    nullableString(m.FileName),
				CreatedAt:   m.CreatedAt.Format(time.RFC3339),
			},
			SenderName:   nullableString(m.SenderName),
			SenderAvatar: nullableString(m.SenderAvatar),
		}
	}

	c.JSON(http.StatusOK, httpdto.MessagesResponse{Success: true, Messages: dtos})
}

func (h *MessagesHandler) getContacts(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	contacts, err := h.users.GetContacts(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	dtos := make([]httpdto.ContactDTO, len(contacts))
	for i, ct := range contacts {
		dtos[i] = httpdto.ContactDTO{
			ID:               ct.ID,
			UserID:           ct.ContactUserID,
			CustomName:       nullableString(ct.CustomName),
			Username:         ct.Username,
			DisplayName:      nullableString(ct.DisplayName),
			AvatarURL:        nullableString(ct.AvatarURL),
			IsVerified:       ct.IsVerified,
			IsFriendOfAdmin:  ct.IsFriendOfAdmin,
			LastSeen:         nullableTime(ct.LastSeen),
			StatusVisibility: ct.StatusVisibility,
		}
	}

	c.JSON(http.StatusOK, httpdto.ContactsResponse{Success: true, Contacts: dtos})
}

func (h *MessagesHandler) getChats(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	chats, err := h.chats.GetChats(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	dtos := make([]httpdto.ChatSummaryDTO, len(chats))
	for i, ch := range chats {
		dtos[i] = httpdto.ChatSummaryDTO{
			ChatID:          ch.ChatID,
			OtherUserID:     ch.OtherUserID,
			Username:        ch.Username,
			DisplayName:     nullableString(ch.DisplayName),
			AvatarURL:       nullableString(ch.AvatarURL),
			LastMessage:     nullableString(ch.LastMessage),
			LastMessageTime: nullableTime(ch.LastMessageTime),
		}
	}

	c.JSON(http.StatusOK, httpdto.ChatsResponse{Success: true, Chats: dtos})
}

func (h *MessagesHandler) isTyping(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Query("chat_id"), 10, 64)
	if err != nil || chatID <= 0 {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	typing, err := h.chats.IsTyping(c.Request.Context(), chatID, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.TypingResponse{Success: true, IsTyping: typing})
}
