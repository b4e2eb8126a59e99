package handler

import (
	"net/http"

	"messenger-backend/internal/services"
	"messenger-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// UploadHandler issues presigned PUT URLs for avatar and attachment
// uploads. The route sits behind the auth middleware.
type UploadHandler struct {
	service *services.UploadService
}

// NewUploadHandler creates an upload handler.
func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

func (h *UploadHandler) Presign(c *gin.Context) {
	if _, ok := services.UserIDFromContext(c.Request.Context()); !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse(httpdto.MsgBadCredentials))
		return
	}

	var req httpdto.PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgInvalidRequest))
		return
	}

	res, err := h.service.Presign(c.Request.Context(), services.PresignInput{
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		Kind:        req.Kind,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.PresignResponse{
		Success:   true,
		UploadURL: res.UploadURL,
		FileURL:   res.FileURL,
		Headers:   res.Headers,
	})
}
