package handlers

import (
	"net/http"

	"civicboard/internal/forum"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile and notification requests
type UserHandler struct {
	engine *forum.Engine
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(engine *forum.Engine) *UserHandler {
	return &UserHandler{engine: engine}
}

// GetMe returns the caller's profile, follow list, and notifications
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.engine.Profile(identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// MarkNotificationsRead marks every notification in the caller's list read
func (h *UserHandler) MarkNotificationsRead(c *gin.Context) {
	user, err := h.engine.MarkNotificationsRead(identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": user.Notifications})
}
