package handler

import (
	"net/http"
	"strconv"
	"strings"

	"messenger-backend/internal/services"
	"messenger-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles the /search-users endpoint. GET searches by
// username substring, POST adds a contact by user id pair.
type SearchHandler struct {
	users *services.UserService
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(users *services.UserService) *SearchHandler {
	return &SearchHandler{users: users}
}

func (h *SearchHandler) HandleGet(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgQueryRequired))
		return
	}

	// user_id narrows is_contact to the caller; absent or malformed it
	// excludes nobody and marks nothing as a contact.
	currentUserID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)

	results, err := h.users.SearchUsers(c.Request.Context(), query, currentUserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	dtos := make([]httpdto.SearchUserDTO, len(results))
	for i, r := range results {
		displayName := r.Username
		if r.DisplayName.Valid && r.DisplayName.String != "" {
			displayName = r.DisplayName.String
		}
		dtos[i] = httpdto.SearchUserDTO{
			UserID:      r.ID,
			Username:    r.Username,
			DisplayName: displayName,
			FirstName:   nullableString(r.FirstName),
			LastName:    nullableString(r.LastName),
			AvatarURL:   nullableString(r.AvatarURL),
			IsVerified:  r.IsVerified,
			IsContact:   r.IsContact,
		}
	}

	c.JSON(http.StatusOK, httpdto.SearchResponse{Success: true, Users: dtos})
}

func (h *SearchHandler) HandlePost(c *gin.Context) {
	var req httpdto.SearchAddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgPairRequired))
		return
	}
	if req.UserID <= 0 || req.TargetUserID <= 0 {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgPairRequired))
		return
	}

	created, err := h.users.AddContactByID(c.Request.Context(), req.UserID, req.TargetUserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	msg := httpdto.MsgContactExists
	status := http.StatusOK
	if created {
		msg = httpdto.MsgContactAdded
		status = http.StatusCreated
	}
	c.JSON(status, httpdto.SearchAddContactResponse{Success: true, Message: msg})
}
