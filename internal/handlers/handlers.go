package handlers

import (
	"errors"
	"net/http"

	"civicboard/internal/forum"

	"github.com/gin-gonic/gin"
)

// identity builds the engine's caller identity from the values the auth
// middleware placed in the request context.
func identity(c *gin.Context) forum.Identity {
	return forum.Identity{
		ID:          c.GetString("user_id"),
		DisplayName: c.GetString("display_name"),
		Role:        c.GetString("role"),
	}
}

// respondError maps typed engine failures to HTTP statuses. Anything that is
// not a *forum.Error is an unexpected persistence failure and surfaces as a
// retryable 500.
func respondError(c *gin.Context, err error) {
	var fe *forum.Error
	if !errors.As(err, &fe) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	status := http.StatusInternalServerError
	switch fe.Kind {
	case forum.KindValidation:
		status = http.StatusBadRequest
	case forum.KindNotFound:
		status = http.StatusNotFound
	case forum.KindForbidden:
		status = http.StatusForbidden
	case forum.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": fe.Message})
}
