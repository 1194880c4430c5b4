package forum

import (
	"fmt"
	"strings"

	"civicboard/internal/models"

	"github.com/google/uuid"
)

// CreateReply appends a reply to a topic, optionally nested under a parent
// reply of the same topic. Locked topics accept no new replies. The topic's
// reply counters and last-activity fields are updated in the same unit, and
// followers, the topic author, and the parent reply's author are notified.
func (e *Engine) CreateReply(actor Identity, topicID string, req models.CreateReplyRequest) (*models.Reply, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	unlock := e.lockTopic(topicID)
	defer unlock()

	topic, err := e.store.Topic(topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errNotFound("topic not found")
	}
	if topic.IsLocked {
		return nil, errForbidden("topic is locked")
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, errValidation("reply body is required")
	}

	var parentAuthorID string
	if req.ParentReplyID != nil {
		parent, err := e.store.Reply(*req.ParentReplyID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errNotFound("parent reply not found")
		}
		if parent.TopicID != topicID {
			return nil, errValidation("parent reply does not belong to this topic")
		}
		parentAuthorID = parent.AuthorID
	}

	now := e.now()
	reply := &models.Reply{
		ID:            uuid.New().String(),
		TopicID:       topicID,
		ParentReplyID: req.ParentReplyID,
		Body:          body,
		AuthorID:      actor.ID,
		AuthorName:    actor.DisplayName,
		IsAnonymous:   req.IsAnonymous,
		CreatedAt:     now,
		UpdatedAt:     now,
		VoteState:     models.VoteState{Voters: map[string]models.VoteDirection{}},
	}
	if err := e.store.SaveReply(reply); err != nil {
		return nil, err
	}

	topic.ReplyCount++
	topic.LastReplyAt = &now
	topic.LastReplyBy = displayedName(actor, req.IsAnonymous)
	if err := e.store.SaveTopic(topic); err != nil {
		return nil, err
	}
	if err := e.updateUser(actor.ID, func(author *models.User) {
		author.ReplyCount++
	}); err != nil {
		return nil, err
	}

	e.notifyReply(actor, topic, parentAuthorID, topic.LastReplyBy)
	return reply, nil
}

// notifyReply fans a new-reply notification out to the topic's followers,
// the topic author, and the parent reply's author, skipping the replier.
// replierName already respects the reply's anonymity flag.
func (e *Engine) notifyReply(actor Identity, topic *models.Topic, parentAuthorID, replierName string) {
	message := fmt.Sprintf("%s replied to %q", replierName, topic.Title)

	recipients := map[string]bool{topic.AuthorID: true}
	if parentAuthorID != "" {
		recipients[parentAuthorID] = true
	}
	if followers, err := e.store.UsersFollowing(topic.ID); err == nil {
		for _, id := range followers {
			recipients[id] = true
		}
	}
	delete(recipients, actor.ID)

	for id := range recipients {
		// Best effort: a missing recipient must not fail the reply.
		_ = e.notify(id, message, topic.ID)
	}
}

// UpdateReply edits a reply's body, appending the previous body to the edit
// history. Author-only; soft-deleted replies are not editable.
func (e *Engine) UpdateReply(actor Identity, id string, body string) (*models.Reply, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	reply, err := e.store.Reply(id)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, errNotFound("reply not found")
	}

	unlock := e.lockTopic(reply.TopicID)
	defer unlock()

	// Re-read under the topic lock; the first read only located the aggregate.
	reply, err = e.store.Reply(id)
	if err != nil || reply == nil {
		return nil, errNotFound("reply not found")
	}
	if reply.AuthorID != actor.ID {
		return nil, errForbidden("you can only edit your own replies")
	}
	if reply.IsDeleted {
		return nil, errForbidden("reply has been deleted")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errValidation("reply body is required")
	}

	now := e.now()
	if body != reply.Body {
		reply.EditHistory = appendEdit(reply.EditHistory, reply.Body, now)
		reply.Body = body
	}
	reply.UpdatedAt = now
	if err := e.store.SaveReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// DeleteReply soft-deletes a reply: the body becomes a fixed placeholder and
// the deleted flag is set, but id, topic, and parent linkage stay intact so
// descendants remain attached. The topic's reply count is not decremented.
// Authors and moderators only.
func (e *Engine) DeleteReply(actor Identity, id string) (*models.Reply, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	reply, err := e.store.Reply(id)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, errNotFound("reply not found")
	}

	unlock := e.lockTopic(reply.TopicID)
	defer unlock()

	reply, err = e.store.Reply(id)
	if err != nil || reply == nil {
		return nil, errNotFound("reply not found")
	}
	if reply.AuthorID != actor.ID && !actor.IsModerator() {
		return nil, errForbidden("you can only delete your own replies")
	}

	reply.Body = DeletedReplyBody
	reply.IsDeleted = true
	reply.UpdatedAt = e.now()
	if err := e.store.SaveReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// VoteReply applies a toggle vote to a reply.
func (e *Engine) VoteReply(actor Identity, id string, dir models.VoteDirection) (*models.Reply, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	reply, err := e.store.Reply(id)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, errNotFound("reply not found")
	}

	unlock := e.lockTopic(reply.TopicID)
	defer unlock()

	reply, err = e.store.Reply(id)
	if err != nil || reply == nil {
		return nil, errNotFound("reply not found")
	}
	if err := ApplyVote(&reply.VoteState, actor.ID, dir); err != nil {
		return nil, err
	}
	if err := e.store.SaveReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// ReplyTreeForTopic returns the topic's replies nested by parent, children
// in ascending creation order at every level.
func (e *Engine) ReplyTreeForTopic(topicID string) ([]*ReplyNode, error) {
	topic, err := e.store.Topic(topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errNotFound("topic not found")
	}
	replies, err := e.store.RepliesByTopic(topicID)
	if err != nil {
		return nil, err
	}
	return BuildReplyTree(replies), nil
}
