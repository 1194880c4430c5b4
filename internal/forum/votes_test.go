package forum

import (
	"testing"

	"civicboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tally recomputes the counters from the voters map.
func tally(v models.VoteState) (up, down int) {
	for _, dir := range v.Voters {
		if dir == models.VoteUp {
			up++
		} else {
			down++
		}
	}
	return up, down
}

func assertConsistent(t *testing.T, v models.VoteState) {
	t.Helper()
	up, down := tally(v)
	assert.Equal(t, up, v.Upvotes, "upvotes must equal tally of up voters")
	assert.Equal(t, down, v.Downvotes, "downvotes must equal tally of down voters")
}

func TestApplyVoteFirstVote(t *testing.T) {
	var v models.VoteState
	require.NoError(t, ApplyVote(&v, "u1", models.VoteUp))

	assert.Equal(t, 1, v.Upvotes)
	assert.Equal(t, 0, v.Downvotes)
	assert.Equal(t, models.VoteUp, v.Voters["u1"])
	assertConsistent(t, v)
}

func TestApplyVoteToggleOff(t *testing.T) {
	var v models.VoteState
	require.NoError(t, ApplyVote(&v, "u1", models.VoteUp))
	require.NoError(t, ApplyVote(&v, "u1", models.VoteUp))

	// Same direction again removes the vote entirely.
	assert.Equal(t, 0, v.Upvotes)
	assert.Equal(t, 0, v.Downvotes)
	assert.NotContains(t, v.Voters, "u1")
	assertConsistent(t, v)
}

func TestApplyVoteSwitchConservation(t *testing.T) {
	var v models.VoteState
	require.NoError(t, ApplyVote(&v, "u1", models.VoteUp))
	upAfterFirst := v.Upvotes

	require.NoError(t, ApplyVote(&v, "u1", models.VoteDown))

	assert.Equal(t, upAfterFirst-1, v.Upvotes)
	assert.Equal(t, 1, v.Downvotes)
	assert.Len(t, v.Voters, 1)
	assert.Equal(t, models.VoteDown, v.Voters["u1"])
	assertConsistent(t, v)
}

func TestApplyVoteInvalidDirection(t *testing.T) {
	var v models.VoteState
	err := ApplyVote(&v, "u1", "sideways")

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindValidation, fe.Kind)
	assert.Empty(t, v.Voters)
}

func TestApplyVoteManyUsersStaysConsistent(t *testing.T) {
	var v models.VoteState
	ops := []struct {
		user string
		dir  models.VoteDirection
	}{
		{"u1", models.VoteUp},
		{"u2", models.VoteDown},
		{"u3", models.VoteUp},
		{"u1", models.VoteUp},   // toggle off
		{"u2", models.VoteUp},   // switch
		{"u3", models.VoteDown}, // switch
		{"u4", models.VoteDown},
		{"u2", models.VoteUp}, // toggle off
	}

	for _, op := range ops {
		require.NoError(t, ApplyVote(&v, op.user, op.dir))
		assertConsistent(t, v)
	}

	assert.Equal(t, 0, v.Upvotes)
	assert.Equal(t, 2, v.Downvotes)
	assert.Len(t, v.Voters, 2)
}
