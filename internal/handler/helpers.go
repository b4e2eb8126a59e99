package handler

import (
	"database/sql"
	"net/http"
	"time"

	"messenger-backend/internal/services"
	"messenger-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps a service error onto the endpoint's fixed
// localized messages where one exists; everything else passes the error
// text through unchanged.
func writeServiceError(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	msg := err.Error()
	switch status {
	case http.StatusBadRequest:
		msg = httpdto.MsgInvalidRequest
	case http.StatusUnauthorized:
		msg = httpdto.MsgBadCredentials
	case http.StatusForbidden:
		msg = httpdto.MsgAdminOnly
	case http.StatusNotFound:
		msg = httpdto.MsgUserNotFound
	}
	c.JSON(status, httpdto.NewErrorResponse(msg))
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullableTime(nt sql.NullTime) *string {
	if !nt.Valid {
		return nil
	}
	s := nt.Time.Format(time.RFC3339)
	return &s
}
