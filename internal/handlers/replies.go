package handlers

import (
	"net/http"

	"civicboard/internal/forum"
	"civicboard/internal/models"

	"github.com/gin-gonic/gin"
)

// ReplyHandler handles reply-related requests
type ReplyHandler struct {
	engine *forum.Engine
}

// NewReplyHandler creates a new ReplyHandler
func NewReplyHandler(engine *forum.Engine) *ReplyHandler {
	return &ReplyHandler{engine: engine}
}

// CreateReply creates a new reply on a topic, optionally nested
func (h *ReplyHandler) CreateReply(c *gin.Context) {
	var req models.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.engine.CreateReply(identity(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// UpdateReply updates a reply (only by the author)
func (h *ReplyHandler) UpdateReply(c *gin.Context) {
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.engine.UpdateReply(identity(c), c.Param("id"), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// DeleteReply soft-deletes a reply, keeping its place in the thread
func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	reply, err := h.engine.DeleteReply(identity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// VoteReply applies a toggle vote to a reply
func (h *ReplyHandler) VoteReply(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.engine.VoteReply(identity(c), c.Param("id"), req.Direction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
