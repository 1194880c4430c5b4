package models

import "time"

// VoteDirection is the direction of a single user's vote on a content item.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// VoteState holds the denormalized vote counters together with the voters
// map they are derived from. The map is the source of truth: the counters
// must always equal the tally of "up" and "down" entries.
type VoteState struct {
	Upvotes   int                      `json:"upvotes"`
	Downvotes int                      `json:"downvotes"`
	Voters    map[string]VoteDirection `gorm:"serializer:json" json:"voters"`
}

// Score returns upvotes minus downvotes.
func (v VoteState) Score() int {
	return v.Upvotes - v.Downvotes
}

// EditEntry records the state of a body immediately before an edit.
type EditEntry struct {
	EditedAt     time.Time `json:"edited_at"`
	PreviousBody string    `json:"previous_body"`
}

// Category is a discussion category from the seeded catalog.
type Category struct {
	ID         string `gorm:"primaryKey" json:"id"` // stable slug
	Name       string `gorm:"not null" json:"name"`
	Color      string `json:"color"`
	TopicCount int    `json:"topic_count"`
}

// Topic represents a top-level discussion thread within a category.
type Topic struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CategoryID  string    `gorm:"not null;index" json:"category_id"`
	Title       string    `gorm:"not null" json:"title"`
	Body        string    `gorm:"not null" json:"body"`
	AuthorID    string    `gorm:"not null;index" json:"author_id"`
	AuthorName  string    `json:"author_name"` // display name snapshot at creation
	IsAnonymous bool      `json:"is_anonymous"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	IsPinned    bool      `json:"is_pinned"`
	IsLocked    bool      `json:"is_locked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	VoteState
	ReplyCount  int         `json:"reply_count"`
	ViewCount   int         `json:"view_count"`
	LastReplyAt *time.Time  `json:"last_reply_at,omitempty"`
	LastReplyBy string      `json:"last_reply_by,omitempty"`
	EditHistory []EditEntry `gorm:"serializer:json" json:"edit_history"`
}

// Reply is a comment on a topic, optionally nested under another reply.
type Reply struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	TopicID       string    `gorm:"not null;index" json:"topic_id"`
	ParentReplyID *string   `gorm:"index" json:"parent_reply_id"` // nil for top-level
	Body          string    `gorm:"not null" json:"body"`
	AuthorID      string    `gorm:"not null" json:"author_id"`
	AuthorName    string    `json:"author_name"`
	IsAnonymous   bool      `json:"is_anonymous"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	VoteState
	EditHistory []EditEntry `gorm:"serializer:json" json:"edit_history"`
	IsDeleted   bool        `json:"is_deleted"`
}

// CreateTopicRequest represents the request body for creating a topic
type CreateTopicRequest struct {
	CategoryID  string   `json:"category_id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	Tags        []string `json:"tags"`
	IsAnonymous bool     `json:"is_anonymous"`
}

// UpdateTopicRequest represents the request body for updating a topic.
// Nil fields are left unchanged. Pinned and Locked are moderator-only.
type UpdateTopicRequest struct {
	Title  *string   `json:"title"`
	Body   *string   `json:"body"`
	Tags   *[]string `json:"tags"`
	Pinned *bool     `json:"pinned"`
	Locked *bool     `json:"locked"`
}

// CreateReplyRequest represents the request body for creating a reply
type CreateReplyRequest struct {
	ParentReplyID *string `json:"parent_reply_id"` // nil for top-level, set for nested
	Body          string  `json:"body" binding:"required"`
	IsAnonymous   bool    `json:"is_anonymous"`
}
