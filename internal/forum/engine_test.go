package forum

import (
	"errors"
	"fmt"
	"testing"

	"civicboard/internal/config"
	"civicboard/internal/database"
	"civicboard/internal/models"
	"civicboard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Store = (*store.Store)(nil)

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	cfg := &config.Config{DatabasePath: ":memory:"}
	db := database.Initialize(cfg)
	st := store.New(db)
	return New(st), st
}

func seedUser(t *testing.T, st *store.Store, id, displayName, role string) Identity {
	t.Helper()
	user := &models.User{
		ID:          id,
		Username:    id,
		Email:       id + "@example.com",
		Password:    "hashed",
		Role:        role,
		DisplayName: displayName,
	}
	require.NoError(t, st.SaveUser(user))
	return Identity{ID: id, DisplayName: displayName, Role: role}
}

func mainStreetTopic(t *testing.T, e *Engine, actor Identity) *models.Topic {
	t.Helper()
	topic, err := e.CreateTopic(actor, models.CreateTopicRequest{
		CategoryID: "infrastructure",
		Title:      "Should Main Street be widened?",
		Body:       "Traffic has worsened significantly over the past two years near downtown.",
	})
	require.NoError(t, err)
	return topic
}

func assertKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, kind, fe.Kind)
}

func TestNewTopicTwoRepliesAndAVote(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	u1 := seedUser(t, st, "u1", "User One", "user")

	topic := mainStreetTopic(t, e, alice)
	assert.Equal(t, topic.CreatedAt, topic.UpdatedAt)
	assert.Zero(t, topic.Upvotes)
	assert.Zero(t, topic.ReplyCount)

	first, err := e.CreateReply(u1, topic.ID, models.CreateReplyRequest{Body: "Widening just induces more demand."})
	require.NoError(t, err)

	_, err = e.CreateReply(alice, topic.ID, models.CreateReplyRequest{
		ParentReplyID: &first.ID,
		Body:          "There are studies on that from comparable towns.",
	})
	require.NoError(t, err)

	topic, err = e.GetTopic(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, topic.ReplyCount)
	assert.Equal(t, "Alice", topic.LastReplyBy)
	require.NotNil(t, topic.LastReplyAt)

	tree, err := e.ReplyTreeForTopic(topic.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, first.ID, tree[0].ID)

	topic, err = e.VoteTopic(u1, topic.ID, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, 1, topic.Upvotes)
	assert.Equal(t, map[string]models.VoteDirection{"u1": models.VoteUp}, topic.Voters)
}

func TestCreateTopicValidation(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	tests := []struct {
		name string
		req  models.CreateTopicRequest
		kind Kind
	}{
		{
			name: "unknown category",
			req:  models.CreateTopicRequest{CategoryID: "nope", Title: "A perfectly fine title", Body: "A perfectly fine body with enough words."},
			kind: KindNotFound,
		},
		{
			name: "short title",
			req:  models.CreateTopicRequest{CategoryID: "general", Title: "too short", Body: "A perfectly fine body with enough words."},
			kind: KindValidation,
		},
		{
			name: "short body",
			req:  models.CreateTopicRequest{CategoryID: "general", Title: "A perfectly fine title", Body: "nope"},
			kind: KindValidation,
		},
		{
			name: "too many tags",
			req: models.CreateTopicRequest{
				CategoryID: "general", Title: "A perfectly fine title", Body: "A perfectly fine body with enough words.",
				Tags: []string{"a", "b", "c", "d", "e", "f"},
			},
			kind: KindValidation,
		},
		{
			name: "tag normalizes to nothing",
			req: models.CreateTopicRequest{
				CategoryID: "general", Title: "A perfectly fine title", Body: "A perfectly fine body with enough words.",
				Tags: []string{"!!!"},
			},
			kind: KindValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.CreateTopic(alice, tc.req)
			assertKind(t, err, tc.kind)
		})
	}
}

func TestCreateTopicNormalizesTags(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	topic, err := e.CreateTopic(alice, models.CreateTopicRequest{
		CategoryID: "environment",
		Title:      "Volunteer day for City Parks",
		Body:       "Looking for help cleaning up the riverside trail next weekend.",
		Tags:       []string{"City Parks!", " Volunteering ", "trail-2026", "city parks"},
	})
	require.NoError(t, err)
	// Normalized, and the duplicate collapsed.
	assert.Equal(t, []string{"city-parks", "volunteering", "trail-2026"}, topic.Tags)
}

func TestCreateTopicCountsCategoryAndAuthor(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	mainStreetTopic(t, e, alice)
	mainStreetTopic(t, e, alice)

	category, err := st.Category("infrastructure")
	require.NoError(t, err)
	assert.Equal(t, 2, category.TopicCount)

	author, err := st.User("alice")
	require.NoError(t, err)
	assert.Equal(t, 2, author.TopicCount)
}

func TestUpdateTopicEditHistory(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	bob := seedUser(t, st, "bob", "Bob", "user")

	topic := mainStreetTopic(t, e, alice)
	originalBody := topic.Body

	secondBody := "Traffic has worsened and the bike lane proposal changes the tradeoffs."
	topic, err := e.UpdateTopic(alice, topic.ID, models.UpdateTopicRequest{Body: &secondBody})
	require.NoError(t, err)
	require.Len(t, topic.EditHistory, 1)
	assert.Equal(t, originalBody, topic.EditHistory[0].PreviousBody)

	thirdBody := "Third revision of the argument, with updated traffic counts attached."
	topic, err = e.UpdateTopic(alice, topic.ID, models.UpdateTopicRequest{Body: &thirdBody})
	require.NoError(t, err)
	require.Len(t, topic.EditHistory, 2)
	assert.Equal(t, secondBody, topic.EditHistory[1].PreviousBody)
	assert.Equal(t, thirdBody, topic.Body)

	// Saving the same body again adds no history entry.
	topic, err = e.UpdateTopic(alice, topic.ID, models.UpdateTopicRequest{Body: &thirdBody})
	require.NoError(t, err)
	assert.Len(t, topic.EditHistory, 2)

	// Non-authors cannot edit.
	_, err = e.UpdateTopic(bob, topic.ID, models.UpdateTopicRequest{Body: &secondBody})
	assertKind(t, err, KindForbidden)
}

func TestModeratorPinAndLock(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	mod := seedUser(t, st, "mod", "Morgan", "moderator")

	topic := mainStreetTopic(t, e, alice)

	yes := true
	_, err := e.UpdateTopic(alice, topic.ID, models.UpdateTopicRequest{Pinned: &yes})
	assertKind(t, err, KindForbidden)

	topic, err = e.UpdateTopic(mod, topic.ID, models.UpdateTopicRequest{Pinned: &yes, Locked: &yes})
	require.NoError(t, err)
	assert.True(t, topic.IsPinned)
	assert.True(t, topic.IsLocked)

	// A locked topic accepts no new replies.
	_, err = e.CreateReply(alice, topic.ID, models.CreateReplyRequest{Body: "One more thing."})
	assertKind(t, err, KindForbidden)
}

func TestDeleteTopicCascade(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	bob := seedUser(t, st, "bob", "Bob", "user")

	doomed := mainStreetTopic(t, e, alice)
	kept := mainStreetTopic(t, e, bob)

	_, err := e.CreateReply(bob, doomed.ID, models.CreateReplyRequest{Body: "Reply on the doomed topic."})
	require.NoError(t, err)
	surviving, err := e.CreateReply(alice, kept.ID, models.CreateReplyRequest{Body: "Reply on the kept topic."})
	require.NoError(t, err)

	require.NoError(t, e.DeleteTopic(alice, doomed.ID))

	_, err = e.GetTopic(doomed.ID)
	assertKind(t, err, KindNotFound)

	gone, err := st.RepliesByTopic(doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, gone)

	// The other topic and its replies are untouched.
	still, err := st.RepliesByTopic(kept.ID)
	require.NoError(t, err)
	require.Len(t, still, 1)
	assert.Equal(t, surviving.ID, still[0].ID)

	category, err := st.Category("infrastructure")
	require.NoError(t, err)
	assert.Equal(t, 1, category.TopicCount)
}

func TestDeleteTopicRequiresAuthorOrModerator(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	bob := seedUser(t, st, "bob", "Bob", "user")
	mod := seedUser(t, st, "mod", "Morgan", "moderator")

	topic := mainStreetTopic(t, e, alice)
	assertKind(t, e.DeleteTopic(bob, topic.ID), KindForbidden)
	require.NoError(t, e.DeleteTopic(mod, topic.ID))
}

func TestCategoryCountNeverNegative(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	topic := mainStreetTopic(t, e, alice)

	// Zero the counter behind the engine's back, then delete.
	category, err := st.Category("infrastructure")
	require.NoError(t, err)
	category.TopicCount = 0
	require.NoError(t, st.SaveCategory(category))

	require.NoError(t, e.DeleteTopic(alice, topic.ID))

	category, err = st.Category("infrastructure")
	require.NoError(t, err)
	assert.Equal(t, 0, category.TopicCount)
}

func TestReplySoftDeletePreservesStructure(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	bob := seedUser(t, st, "bob", "Bob", "user")

	topic := mainStreetTopic(t, e, alice)
	parent, err := e.CreateReply(bob, topic.ID, models.CreateReplyRequest{Body: "Parent reply about the intersection."})
	require.NoError(t, err)
	child, err := e.CreateReply(alice, topic.ID, models.CreateReplyRequest{
		ParentReplyID: &parent.ID,
		Body:          "Child reply with a counterpoint.",
	})
	require.NoError(t, err)

	deleted, err := e.DeleteReply(bob, parent.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
	assert.Equal(t, DeletedReplyBody, deleted.Body)

	// The child still resolves to the placeholder parent.
	stored, err := st.Reply(child.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ParentReplyID)
	assert.Equal(t, parent.ID, *stored.ParentReplyID)

	tree, err := e.ReplyTreeForTopic(topic.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.True(t, tree[0].IsDeleted)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, child.ID, tree[0].Children[0].ID)

	// Reply count is not decremented: a placeholder still occupies a slot.
	topic, err = e.GetTopic(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, topic.ReplyCount)

	// Deleted replies are not editable.
	_, err = e.UpdateReply(bob, parent.ID, "rewriting history")
	assertKind(t, err, KindForbidden)
}

func TestCreateReplyValidatesParent(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	topicA := mainStreetTopic(t, e, alice)
	topicB, err := e.CreateTopic(alice, models.CreateTopicRequest{
		CategoryID: "general",
		Title:      "Unrelated second topic",
		Body:       "Entirely different discussion happening over here.",
	})
	require.NoError(t, err)

	replyA, err := e.CreateReply(alice, topicA.ID, models.CreateReplyRequest{Body: "A reply under topic A."})
	require.NoError(t, err)

	// No cross-topic threading.
	_, err = e.CreateReply(alice, topicB.ID, models.CreateReplyRequest{ParentReplyID: &replyA.ID, Body: "Nested wrongly."})
	assertKind(t, err, KindValidation)

	missing := "does-not-exist"
	_, err = e.CreateReply(alice, topicA.ID, models.CreateReplyRequest{ParentReplyID: &missing, Body: "Nested under nothing."})
	assertKind(t, err, KindNotFound)
}

func TestAnonymousReplySnapshot(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	bob := seedUser(t, st, "bob", "Bob", "user")

	topic := mainStreetTopic(t, e, alice)
	_, err := e.CreateReply(bob, topic.ID, models.CreateReplyRequest{Body: "Posting this one anonymously.", IsAnonymous: true})
	require.NoError(t, err)

	topic, err = e.GetTopic(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", topic.LastReplyBy)
}

func TestVoteReplyTogglesLikeTopics(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	bob := seedUser(t, st, "bob", "Bob", "user")

	topic := mainStreetTopic(t, e, alice)
	reply, err := e.CreateReply(bob, topic.ID, models.CreateReplyRequest{Body: "A reply worth voting on."})
	require.NoError(t, err)

	reply, err = e.VoteReply(alice, reply.ID, models.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, 1, reply.Downvotes)

	reply, err = e.VoteReply(alice, reply.ID, models.VoteDown)
	require.NoError(t, err)
	assert.Zero(t, reply.Downvotes)
	assert.Empty(t, reply.Voters)
}

func TestToggleFollowAndNotifications(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	bob := seedUser(t, st, "bob", "Bob", "user")
	carol := seedUser(t, st, "carol", "Carol", "user")

	topic := mainStreetTopic(t, e, alice)

	following, err := e.ToggleFollowTopic(carol, topic.ID)
	require.NoError(t, err)
	assert.True(t, following)

	_, err = e.CreateReply(bob, topic.ID, models.CreateReplyRequest{Body: "Something for the followers."})
	require.NoError(t, err)

	// Topic author and follower are notified; the replier is not.
	for _, id := range []string{"alice", "carol"} {
		user, err := st.User(id)
		require.NoError(t, err)
		require.Len(t, user.Notifications, 1, "user %s", id)
		assert.Equal(t, topic.ID, user.Notifications[0].TopicID)
		assert.False(t, user.Notifications[0].Read)
	}
	replier, err := st.User("bob")
	require.NoError(t, err)
	assert.Empty(t, replier.Notifications)

	// Toggle off.
	following, err = e.ToggleFollowTopic(carol, topic.ID)
	require.NoError(t, err)
	assert.False(t, following)

	user, err := st.User("carol")
	require.NoError(t, err)
	assert.Empty(t, user.FollowedTopics)
}

func TestNotificationListCapped(t *testing.T) {
	e, st := newTestEngine(t)
	seedUser(t, st, "alice", "Alice", "user")

	for i := 0; i < models.MaxNotifications+5; i++ {
		require.NoError(t, e.notify("alice", fmt.Sprintf("notification %d", i), ""))
	}

	user, err := st.User("alice")
	require.NoError(t, err)
	require.Len(t, user.Notifications, models.MaxNotifications)
	// Newest first.
	assert.Equal(t, fmt.Sprintf("notification %d", models.MaxNotifications+4), user.Notifications[0].Message)
}

func TestMarkNotificationsRead(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	require.NoError(t, e.notify("alice", "first", ""))
	require.NoError(t, e.notify("alice", "second", ""))

	user, err := e.MarkNotificationsRead(alice)
	require.NoError(t, err)
	for _, n := range user.Notifications {
		assert.True(t, n.Read)
	}
}

func TestIncrementTopicViewsNoDedup(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	topic := mainStreetTopic(t, e, alice)
	for i := 0; i < 3; i++ {
		_, err := e.IncrementTopicViews(topic.ID)
		require.NoError(t, err)
	}

	topic, err := e.GetTopic(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, topic.ViewCount)
}

func TestListTopicsFilterAndCategory(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	mainStreetTopic(t, e, alice)
	_, err := e.CreateTopic(alice, models.CreateTopicRequest{
		CategoryID: "events",
		Title:      "Summer festival volunteers needed",
		Body:       "The annual festival is looking for weekend volunteers again.",
		Tags:       []string{"festival"},
	})
	require.NoError(t, err)

	all, err := e.ListTopics("", "", SortNewest)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	infra, err := e.ListTopics("infrastructure", "", SortNewest)
	require.NoError(t, err)
	require.Len(t, infra, 1)
	assert.Equal(t, "infrastructure", infra[0].CategoryID)

	byTitle, err := e.ListTopics("", "main street", SortNewest)
	require.NoError(t, err)
	require.Len(t, byTitle, 1)

	byTag, err := e.ListTopics("", "festival", SortNewest)
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "events", byTag[0].CategoryID)
}

func TestFileReport(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	bob := seedUser(t, st, "bob", "Bob", "user")
	mod := seedUser(t, st, "mod", "Morgan", "moderator")

	topic := mainStreetTopic(t, e, alice)

	// Self-reports are rejected.
	_, err := e.FileReport(alice, models.CreateReportRequest{
		ContentType: models.ReportContentTopic, ContentID: topic.ID, Reason: "spam",
	})
	assertKind(t, err, KindForbidden)

	_, err = e.FileReport(bob, models.CreateReportRequest{
		ContentType: models.ReportContentTopic, ContentID: topic.ID, Reason: "buzzkill",
	})
	assertKind(t, err, KindValidation)

	report, err := e.FileReport(bob, models.CreateReportRequest{
		ContentType: models.ReportContentTopic, ContentID: topic.ID, Reason: "spam",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)

	// Repeated identical reports are kept, not deduplicated.
	_, err = e.FileReport(bob, models.CreateReportRequest{
		ContentType: models.ReportContentTopic, ContentID: topic.ID, Reason: "spam",
	})
	require.NoError(t, err)

	_, err = e.ListReports(bob)
	assertKind(t, err, KindForbidden)

	reports, err := e.ListReports(mod)
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	triaged, err := e.UpdateReportStatus(mod, report.ID, models.ReportStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, triaged.Status)

	_, err = e.UpdateReportStatus(mod, report.ID, "shredded")
	assertKind(t, err, KindValidation)
}

func TestUnauthenticatedCallerRejected(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	topic := mainStreetTopic(t, e, alice)

	nobody := Identity{}
	_, err := e.VoteTopic(nobody, topic.ID, models.VoteUp)
	assertKind(t, err, KindForbidden)
	_, err = e.CreateReply(nobody, topic.ID, models.CreateReplyRequest{Body: "Drive-by reply attempt."})
	assertKind(t, err, KindForbidden)

	topic, err = e.GetTopic(topic.ID)
	require.NoError(t, err)
	assert.Zero(t, topic.Upvotes)
	assert.Zero(t, topic.ReplyCount)
}

func TestConcurrentVotesFromDifferentUsers(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	topic := mainStreetTopic(t, e, alice)

	const voters = 8
	done := make(chan error, voters)
	for i := 0; i < voters; i++ {
		voter := seedUser(t, st, fmt.Sprintf("voter%d", i), "Voter", "user")
		go func() {
			_, err := e.VoteTopic(voter, topic.ID, models.VoteUp)
			done <- err
		}()
	}
	for i := 0; i < voters; i++ {
		require.NoError(t, <-done)
	}

	topic, err := e.GetTopic(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, voters, topic.Upvotes)
	assert.Len(t, topic.Voters, voters)
}

func TestConcurrentTopicCreatesShareCategoryCounter(t *testing.T) {
	e, st := newTestEngine(t)

	const writers = 8
	done := make(chan error, writers)
	for i := 0; i < writers; i++ {
		author := seedUser(t, st, fmt.Sprintf("author%d", i), "Author", "user")
		go func() {
			_, err := e.CreateTopic(author, models.CreateTopicRequest{
				CategoryID: "infrastructure",
				Title:      "Northbound lane closed again",
				Body:       "The river crossing has been down to one lane for a week with no schedule posted.",
			})
			done <- err
		}()
	}
	for i := 0; i < writers; i++ {
		require.NoError(t, <-done)
	}

	category, err := st.Category("infrastructure")
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, writers, category.TopicCount)
}

func TestConcurrentRepliesAcrossTopicsShareAuthorCounter(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	bob := seedUser(t, st, "bob", "Bob", "user")

	const topics = 8
	ids := make([]string, topics)
	for i := range ids {
		topic, err := e.CreateTopic(alice, models.CreateTopicRequest{
			CategoryID: "general",
			Title:      fmt.Sprintf("Neighborhood question number %d", i),
			Body:       "Looking for other residents who have run into the same thing.",
		})
		require.NoError(t, err)
		ids[i] = topic.ID
	}

	done := make(chan error, topics)
	for _, id := range ids {
		go func(id string) {
			_, err := e.CreateReply(bob, id, models.CreateReplyRequest{Body: "Same on my street, seconding this."})
			done <- err
		}(id)
	}
	for i := 0; i < topics; i++ {
		require.NoError(t, <-done)
	}

	bobStored, err := st.User("bob")
	require.NoError(t, err)
	assert.Equal(t, topics, bobStored.ReplyCount)

	// One notification per reply landed on the topic author, none dropped.
	aliceStored, err := st.User("alice")
	require.NoError(t, err)
	assert.Len(t, aliceStored.Notifications, topics)
}

type userReadFailStore struct {
	Store
	err error
}

func (s userReadFailStore) User(id string) (*models.User, error) { return nil, s.err }

func TestCounterUpdatesSurfaceUserReadFailure(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")
	topic := mainStreetTopic(t, e, alice)

	boom := errors.New("user table unavailable")
	flaky := New(userReadFailStore{Store: st, err: boom})

	_, err := flaky.CreateTopic(alice, models.CreateTopicRequest{
		CategoryID: "general",
		Title:      "A perfectly fine title",
		Body:       "A perfectly fine body with enough words.",
	})
	require.ErrorIs(t, err, boom)

	require.ErrorIs(t, flaky.DeleteTopic(alice, topic.ID), boom)
}

func TestTopicLengthCountsCharactersNotBytes(t *testing.T) {
	e, st := newTestEngine(t)
	alice := seedUser(t, st, "alice", "Alice", "user")

	// Nine characters, eleven bytes.
	_, err := e.CreateTopic(alice, models.CreateTopicRequest{
		CategoryID: "general",
		Title:      "Überfüllt",
		Body:       "A perfectly fine body with enough words.",
	})
	assertKind(t, err, KindValidation)

	// Eighteen characters, twenty bytes.
	_, err = e.CreateTopic(alice, models.CreateTopicRequest{
		CategoryID: "general",
		Title:      "A perfectly fine title",
		Body:       "Zäune müssen weg!!",
	})
	assertKind(t, err, KindValidation)
}
