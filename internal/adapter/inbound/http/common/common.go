// Package common holds the request and error helpers shared by the HTTP handlers.
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/shared/logger"
	apperrors "github.com/civicteams/server/internal/utils/errors"
	"github.com/civicteams/server/internal/utils/middleware"
)

// ErrorResponse is the body of every error response.
type ErrorResponse = apperrors.ErrorResponse

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HandleError writes err as a JSON error response. Infrastructure failures
// are logged and reported without detail.
func HandleError(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	c.JSON(appErr.StatusCode, appErr.ToResponse())
}

// BadRequest writes a 400 response for malformed input.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apperrors.BadRequest(message).ToResponse())
}

// ParseID parses a UUID path parameter, writing a 400 response on failure.
func ParseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrorDetail{
			Code:    "invalid_id",
			Message: "invalid " + name,
		}})
		return uuid.Nil, false
	}
	return id, true
}

// CurrentUser returns the authenticated user, writing a 401 response when
// the request is anonymous.
func CurrentUser(c *gin.Context) (uuid.UUID, bool) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthorized("").ToResponse())
		return uuid.Nil, false
	}
	return userID, true
}
