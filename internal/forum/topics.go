package forum

import (
	"strings"
	"unicode/utf8"

	"civicboard/internal/models"

	"github.com/google/uuid"
)

// CreateTopic validates and creates a new topic, bumping the owning
// category's topic count and the author's topic counter.
func (e *Engine) CreateTopic(actor Identity, req models.CreateTopicRequest) (*models.Topic, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	category, err := e.store.Category(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errNotFound("category %q not found", req.CategoryID)
	}
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if utf8.RuneCountInString(title) < minTitleLen {
		return nil, errValidation("title must be at least %d characters", minTitleLen)
	}
	if utf8.RuneCountInString(body) < minBodyLen {
		return nil, errValidation("body must be at least %d characters", minBodyLen)
	}
	tags, err := normalizeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	now := e.now()
	topic := &models.Topic{
		ID:          uuid.New().String(),
		CategoryID:  category.ID,
		Title:       title,
		Body:        body,
		AuthorID:    actor.ID,
		AuthorName:  actor.DisplayName,
		IsAnonymous: req.IsAnonymous,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
		VoteState:   models.VoteState{Voters: map[string]models.VoteDirection{}},
	}
	if err := e.store.SaveTopic(topic); err != nil {
		return nil, err
	}

	if err := e.adjustCategoryTopicCount(category.ID, 1); err != nil {
		return nil, err
	}
	if err := e.updateUser(actor.ID, func(author *models.User) {
		author.TopicCount++
	}); err != nil {
		return nil, err
	}
	return topic, nil
}

// UpdateTopic edits a topic. Title, body, and tags are author-only; pinning
// and locking are moderator-only. A body change appends the previous body to
// the edit history before the new body is applied.
func (e *Engine) UpdateTopic(actor Identity, id string, req models.UpdateTopicRequest) (*models.Topic, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	unlock := e.lockTopic(id)
	defer unlock()

	topic, err := e.store.Topic(id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errNotFound("topic not found")
	}

	if req.Title != nil || req.Body != nil || req.Tags != nil {
		if topic.AuthorID != actor.ID {
			return nil, errForbidden("you can only edit your own topics")
		}
	}
	if req.Pinned != nil || req.Locked != nil {
		if !actor.IsModerator() {
			return nil, errForbidden("only moderators can pin or lock topics")
		}
	}

	now := e.now()
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if utf8.RuneCountInString(title) < minTitleLen {
			return nil, errValidation("title must be at least %d characters", minTitleLen)
		}
		topic.Title = title
	}
	if req.Body != nil {
		body := strings.TrimSpace(*req.Body)
		if utf8.RuneCountInString(body) < minBodyLen {
			return nil, errValidation("body must be at least %d characters", minBodyLen)
		}
		if body != topic.Body {
			topic.EditHistory = appendEdit(topic.EditHistory, topic.Body, now)
			topic.Body = body
		}
	}
	if req.Tags != nil {
		tags, err := normalizeTags(*req.Tags)
		if err != nil {
			return nil, err
		}
		topic.Tags = tags
	}
	if req.Pinned != nil {
		topic.IsPinned = *req.Pinned
	}
	if req.Locked != nil {
		topic.IsLocked = *req.Locked
	}
	topic.UpdatedAt = now

	if err := e.store.SaveTopic(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// DeleteTopic removes a topic and every one of its replies, and decrements
// the category's topic count (floored at zero). Authors and moderators only.
func (e *Engine) DeleteTopic(actor Identity, id string) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	unlock := e.lockTopic(id)
	defer unlock()

	topic, err := e.store.Topic(id)
	if err != nil {
		return err
	}
	if topic == nil {
		return errNotFound("topic not found")
	}
	if topic.AuthorID != actor.ID && !actor.IsModerator() {
		return errForbidden("you can only delete your own topics")
	}

	if err := e.store.DeleteRepliesByTopic(id); err != nil {
		return err
	}
	if err := e.store.DeleteTopic(id); err != nil {
		return err
	}

	if err := e.adjustCategoryTopicCount(topic.CategoryID, -1); err != nil {
		return err
	}
	if err := e.updateUser(topic.AuthorID, func(author *models.User) {
		if author.TopicCount > 0 {
			author.TopicCount--
		}
	}); err != nil {
		return err
	}
	return nil
}

// VoteTopic applies a toggle vote to a topic.
func (e *Engine) VoteTopic(actor Identity, id string, dir models.VoteDirection) (*models.Topic, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	unlock := e.lockTopic(id)
	defer unlock()

	topic, err := e.store.Topic(id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errNotFound("topic not found")
	}
	if err := ApplyVote(&topic.VoteState, actor.ID, dir); err != nil {
		return nil, err
	}
	if err := e.store.SaveTopic(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// ToggleFollowTopic adds or removes the topic from the user's follow list
// and returns the resulting membership.
func (e *Engine) ToggleFollowTopic(actor Identity, topicID string) (bool, error) {
	if err := requireUser(actor); err != nil {
		return false, err
	}
	topic, err := e.store.Topic(topicID)
	if err != nil {
		return false, err
	}
	if topic == nil {
		return false, errNotFound("topic not found")
	}

	// The follow set and the notification list live on the same aggregate;
	// a toggle racing an incoming notification must not drop either write.
	unlock := e.lockUser(actor.ID)
	defer unlock()

	user, err := e.store.User(actor.ID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, errNotFound("user not found")
	}

	following := false
	if user.Follows(topicID) {
		kept := user.FollowedTopics[:0]
		for _, id := range user.FollowedTopics {
			if id != topicID {
				kept = append(kept, id)
			}
		}
		user.FollowedTopics = kept
	} else {
		user.FollowedTopics = append(user.FollowedTopics, topicID)
		following = true
	}
	if err := e.store.SaveUser(user); err != nil {
		return false, err
	}
	return following, nil
}

// IncrementTopicViews bumps the raw impression counter. Repeat views from
// the same viewer count again.
func (e *Engine) IncrementTopicViews(id string) (*models.Topic, error) {
	unlock := e.lockTopic(id)
	defer unlock()

	topic, err := e.store.Topic(id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errNotFound("topic not found")
	}
	topic.ViewCount++
	if err := e.store.SaveTopic(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// GetTopic returns a topic by id.
func (e *Engine) GetTopic(id string) (*models.Topic, error) {
	topic, err := e.store.Topic(id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errNotFound("topic not found")
	}
	return topic, nil
}

// ListTopics returns topics, optionally restricted to a category and
// filtered by a case-insensitive substring match over title and tags, ranked
// by the given strategy with pinned topics first.
func (e *Engine) ListTopics(categoryID, filter string, strategy SortStrategy) ([]models.Topic, error) {
	var (
		topics []models.Topic
		err    error
	)
	if categoryID != "" {
		topics, err = e.store.TopicsByCategory(categoryID)
	} else {
		topics, err = e.store.Topics()
	}
	if err != nil {
		return nil, err
	}

	if filter != "" {
		needle := strings.ToLower(filter)
		matched := topics[:0]
		for _, t := range topics {
			if topicMatches(&t, needle) {
				matched = append(matched, t)
			}
		}
		topics = matched
	}

	return SortTopics(topics, strategy, e.now()), nil
}

func topicMatches(t *models.Topic, needle string) bool {
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(tag, needle) {
			return true
		}
	}
	return false
}

// Categories returns the category catalog.
func (e *Engine) Categories() ([]models.Category, error) {
	return e.store.Categories()
}
