package handlers

import (
	"net/http"

	"civicboard/internal/forum"
	"civicboard/internal/models"

	"github.com/gin-gonic/gin"
)

// TopicHandler handles topic-related requests
type TopicHandler struct {
	engine *forum.Engine
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(engine *forum.Engine) *TopicHandler {
	return &TopicHandler{engine: engine}
}

// GetCategories returns the category catalog with topic counts
func (h *TopicHandler) GetCategories(c *gin.Context) {
	categories, err := h.engine.Categories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetTopics returns topics ranked by the requested strategy, optionally
// restricted to a category and filtered by a title/tag substring.
func (h *TopicHandler) GetTopics(c *gin.Context) {
	strategy := forum.ParseSortStrategy(c.DefaultQuery("sort", "newest"))
	topics, err := h.engine.ListTopics(c.Query("category"), c.Query("q"), strategy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics, "sort": strategy})
}

// GetTopic returns a single topic with its reply tree, counting the view
func (h *TopicHandler) GetTopic(c *gin.Context) {
	topicID := c.Param("id")

	topic, err := h.engine.IncrementTopicViews(topicID)
	if err != nil {
		respondError(c, err)
		return
	}
	replies, err := h.engine.ReplyTreeForTopic(topicID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic, "replies": replies})
}

// CreateTopic creates a new topic
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req models.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.engine.CreateTopic(identity(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

// UpdateTopic updates a topic (author edits; moderator pin/lock)
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	var req models.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.engine.UpdateTopic(identity(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// DeleteTopic deletes a topic and all of its replies
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	if err := h.engine.DeleteTopic(identity(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "topic deleted"})
}

// VoteRequest represents a vote request body
type VoteRequest struct {
	Direction models.VoteDirection `json:"direction" binding:"required"`
}

// VoteTopic applies a toggle vote to a topic
func (h *TopicHandler) VoteTopic(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.engine.VoteTopic(identity(c), c.Param("id"), req.Direction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// FollowTopic toggles topic follow for the caller
func (h *TopicHandler) FollowTopic(c *gin.Context) {
	following, err := h.engine.ToggleFollowTopic(identity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}
