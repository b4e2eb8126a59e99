// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"
	"strconv"

	"messenger-backend/internal/domain/user"
	"messenger-backend/internal/services"
	"messenger-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the /auth endpoint. POST dispatches on the body's
// action field, GET is a profile lookup by user_id.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) HandlePost(c *gin.Context) {
	var req httpdto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	action, ok := ParseAuthAction(req.Action)
	if !ok {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	switch action {
	case AuthActionLogin:
		h.login(c, req)
	case AuthActionRegister:
		h.register(c, req)
	case AuthActionUpdateProfile:
		h.updateProfile(c, req)
	}
}

// HandleGet returns the full profile of the user named by the user_id
// query parameter.
func (h *AuthHandler) HandleGet(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	u, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ProfileResponse{
		Success: true,
		User: httpdto.ProfileDTO{
			UserDTO:          toUserDTO(u),
			StatusVisibility: u.StatusVisibility,
			LastSeen:         nullableTime(u.LastSeen),
		},
	})
}

func (h *AuthHandler) login(c *gin.Context, req httpdto.AuthRequest) {
	res, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.LoginResponse{
		Success: true,
		User:    toUserDTO(res.User),
		Token:   res.Token,
	})
}

func (h *AuthHandler) register(c *gin.Context, req httpdto.AuthRequest) {
	u, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		AdminID:         req.AdminID,
		Username:        req.Username,
		Password:        req.Password,
		IsFriendOfAdmin: req.IsFriendOfAdmin,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.RegisterResponse{
		Success: true,
		User:    httpdto.RegisteredUserDTO{ID: u.ID, Username: u.Username},
	})
}

func (h *AuthHandler) updateProfile(c *gin.Context, req httpdto.AuthRequest) {
	u, err := h.service.UpdateProfile(c.Request.Context(), services.UpdateProfileInput{
		UserID:      req.UserID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.UpdateProfileResponse{
		Success: true,
		User: httpdto.UpdatedUserDTO{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: nullableString(u.DisplayName),
			FirstName:   nullableString(u.FirstName),
			LastName:    nullableString(u.LastName),
			AvatarURL:   nullableString(u.AvatarURL),
		},
	})
}

func toUserDTO(u user.User) httpdto.UserDTO {
	return httpdto.UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		DisplayName:     nullableString(u.DisplayName),
		FirstName:       nullableString(u.FirstName),
		LastName:        nullableString(u.LastName),
		AvatarURL:       nullableString(u.AvatarURL),
		IsAdmin:         u.IsAdmin,
		IsVerified:      u.IsVerified,
		IsFriendOfAdmin: u.IsFriendOfAdmin,
	}
}
