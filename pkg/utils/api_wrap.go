package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

func RespondSuccess(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels to a status and a user-facing
// message. The raw error is attached to the context for the request logger.
func HandleServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "A user with this email address has already been registered")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Unauthorized - please sign in")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid login credentials")
	case errors.Is(err, ErrProviderFailure):
		RespondError(c, http.StatusInternalServerError, "Identity provider unavailable")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
