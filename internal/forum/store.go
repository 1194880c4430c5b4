package forum

import "civicboard/internal/models"

// The engine is storage-agnostic: it works against these narrow collection
// interfaces and requires only read/upsert/delete semantics per record.
// Lookup methods return (nil, nil) when the id does not exist; the engine
// turns that into a not-found failure.

// CategoryStore is the category catalog with its maintained topic counts.
type CategoryStore interface {
	Category(id string) (*models.Category, error)
	Categories() ([]models.Category, error)
	SaveCategory(c *models.Category) error
}

// TopicStore persists topics.
type TopicStore interface {
	Topic(id string) (*models.Topic, error)
	Topics() ([]models.Topic, error)
	TopicsByCategory(categoryID string) ([]models.Topic, error)
	SaveTopic(t *models.Topic) error
	DeleteTopic(id string) error
}

// ReplyStore persists replies. DeleteRepliesByTopic is the only physical
// removal path for replies; individual deletion is always a soft delete
// through SaveReply.
type ReplyStore interface {
	Reply(id string) (*models.Reply, error)
	RepliesByTopic(topicID string) ([]models.Reply, error)
	SaveReply(r *models.Reply) error
	DeleteRepliesByTopic(topicID string) error
}

// UserDirectory is the minimal profile capability the engine needs: it reads
// counters and follow lists and appends notifications, nothing more.
type UserDirectory interface {
	User(id string) (*models.User, error)
	UsersFollowing(topicID string) ([]string, error)
	SaveUser(u *models.User) error
}

// ReportLog is the append-only moderation report ledger.
type ReportLog interface {
	Report(id string) (*models.Report, error)
	Reports() ([]models.Report, error)
	SaveReport(r *models.Report) error
}

// Store is the full persistence collaborator.
type Store interface {
	CategoryStore
	TopicStore
	ReplyStore
	UserDirectory
	ReportLog
}
