package forum

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"civicboard/internal/models"

	"github.com/google/uuid"
)

// Identity is the authenticated caller, supplied by the identity layer on
// every mutating operation. The engine trusts it and never reads ambient
// session state.
type Identity struct {
	ID          string
	DisplayName string
	Role        string
}

// IsModerator reports whether the caller holds the moderator role.
func (id Identity) IsModerator() bool {
	return id.Role == "moderator"
}

// Engine orchestrates topics, replies, votes, follows, and reports over a
// persistence collaborator. Every mutating topic-scoped operation is a
// single read-modify-write unit serialized by a per-topic lock; reads are
// snapshot queries and take no lock.
type Engine struct {
	store Store
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an Engine over the given store.
func New(store Store) *Engine {
	return &Engine{
		store: store,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockFor serializes read-modify-write units for one aggregate. Keys are
// namespaced so a topic and a user sharing an id never share a lock.
// Entries are never removed: deleting one while a writer still holds its
// mutex would hand a later writer a fresh mutex and let the two interleave.
func (e *Engine) lockFor(key string) func() {
	e.mu.Lock()
	l, ok := e.locks[key]
	if !ok {
		l = &sync.Mutex{}
		e.locks[key] = l
	}
	e.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// lockTopic serializes read-modify-write units for one topic. Votes, reply
// counters, and last-activity fields all hang off topic-scoped state, so the
// topic is the aggregate that concurrent writers must not interleave on.
func (e *Engine) lockTopic(id string) func() { return e.lockFor("topic:" + id) }

// Category and user counters are written by operations keyed on other
// aggregates (two topic creates in one category, replies to two different
// topics by one author), so they carry their own locks. Lock order is topic,
// then category or user; category and user locks are never held together.
func (e *Engine) lockCategory(id string) func() { return e.lockFor("category:" + id) }
func (e *Engine) lockUser(id string) func()     { return e.lockFor("user:" + id) }

// DeletedReplyBody replaces the body of soft-deleted replies.
const DeletedReplyBody = "[deleted]"

const (
	minTitleLen = 10
	minBodyLen  = 20
	maxTags     = 5
)

var tagStrip = regexp.MustCompile(`[^a-z0-9-]`)

// normalizeTags lowercases tags, converts spaces to hyphens, strips anything
// outside [a-z0-9-], and drops duplicates. A tag that normalizes to nothing
// is malformed.
func normalizeTags(tags []string) ([]string, error) {
	if len(tags) > maxTags {
		return nil, errValidation("at most %d tags allowed", maxTags)
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		norm := strings.ToLower(strings.TrimSpace(tag))
		norm = strings.ReplaceAll(norm, " ", "-")
		norm = tagStrip.ReplaceAllString(norm, "")
		if norm == "" {
			return nil, errValidation("malformed tag %q", tag)
		}
		if seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, norm)
	}
	return out, nil
}

// displayedName is the author-name snapshot stored on summaries: the real
// display name, or the anonymous placeholder when the author asked for it.
func displayedName(actor Identity, anonymous bool) string {
	if anonymous {
		return "Anonymous"
	}
	return actor.DisplayName
}

// updateUser applies fn to a fresh read of the user as one unit under the
// user's lock. Unknown users are skipped; read and save errors are returned.
func (e *Engine) updateUser(id string, fn func(*models.User)) error {
	unlock := e.lockUser(id)
	defer unlock()

	user, err := e.store.User(id)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	fn(user)
	return e.store.SaveUser(user)
}

// adjustCategoryTopicCount moves the category's topic count by delta, floored
// at zero, as one unit under the category's lock.
func (e *Engine) adjustCategoryTopicCount(id string, delta int) error {
	unlock := e.lockCategory(id)
	defer unlock()

	category, err := e.store.Category(id)
	if err != nil {
		return err
	}
	if category == nil {
		return nil
	}
	category.TopicCount += delta
	if category.TopicCount < 0 {
		category.TopicCount = 0
	}
	return e.store.SaveCategory(category)
}

// notify prepends a notification to the user's list, newest first, capped.
func (e *Engine) notify(userID, message, topicID string) error {
	n := models.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		TopicID:   topicID,
		CreatedAt: e.now(),
	}
	return e.updateUser(userID, func(user *models.User) {
		user.Notifications = append([]models.Notification{n}, user.Notifications...)
		if len(user.Notifications) > models.MaxNotifications {
			user.Notifications = user.Notifications[:models.MaxNotifications]
		}
	})
}

// appendEdit records what was true immediately before a body change.
func appendEdit(history []models.EditEntry, previousBody string, at time.Time) []models.EditEntry {
	return append(history, models.EditEntry{EditedAt: at, PreviousBody: previousBody})
}
