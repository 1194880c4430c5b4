package models

import "time"

// Report content types.
const (
	ReportContentTopic = "topic"
	ReportContentReply = "reply"
)

// Report statuses. A report starts pending; the other states are reached
// through the moderator triage surface.
const (
	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// ReportReasons is the fixed reason vocabulary accepted when filing a report.
var ReportReasons = []string{"spam", "harassment", "misinformation", "off-topic", "other"}

// Report records a user flagging a topic or reply for moderation.
// Immutable once filed except for status transitions.
type Report struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ContentType string    `gorm:"not null" json:"content_type"` // "topic" or "reply"
	ContentID   string    `gorm:"not null;index" json:"content_id"`
	ReporterID  string    `gorm:"not null" json:"reporter_id"`
	Reason      string    `gorm:"not null" json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
}

// CreateReportRequest represents the request body for filing a report
type CreateReportRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   string `json:"content_id" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}
