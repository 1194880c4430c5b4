package models

import "time"

// MaxNotifications caps the per-user notification list; older entries are
// dropped from the tail as new ones are prepended.
const MaxNotifications = 50

// Notification is a single entry in a user's notification list, newest first.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	TopicID   string    `json:"topic_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// User represents a registered board member
type User struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"uniqueIndex;not null" json:"username"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	Role           string         `gorm:"default:user" json:"role"` // "user" or "moderator"
	DisplayName    string         `json:"display_name"`
	City           string         `json:"city"`
	Reputation     int            `json:"reputation"`
	TopicCount     int            `json:"topic_count"`
	ReplyCount     int            `json:"reply_count"`
	FollowedTopics []string       `gorm:"serializer:json" json:"followed_topics"`
	Notifications  []Notification `gorm:"serializer:json" json:"notifications"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Follows reports whether the user follows the given topic.
func (u *User) Follows(topicID string) bool {
	for _, id := range u.FollowedTopics {
		if id == topicID {
			return true
		}
	}
	return false
}
