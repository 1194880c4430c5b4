package forum

import "civicboard/internal/models"

// ApplyVote records userID's vote on a content item with toggle semantics:
//
//   - no existing vote: the vote is set and its counter incremented
//   - same direction again: the vote is removed (toggle-off, not a no-op)
//   - opposite direction: the vote switches, one counter down, the other up
//
// After any sequence of calls the counters equal the tally of the voters map
// exactly. Callers must have authenticated userID already.
func ApplyVote(v *models.VoteState, userID string, dir models.VoteDirection) error {
	if dir != models.VoteUp && dir != models.VoteDown {
		return errValidation("invalid vote direction %q", dir)
	}
	if v.Voters == nil {
		v.Voters = make(map[string]models.VoteDirection)
	}

	prev, voted := v.Voters[userID]
	switch {
	case !voted:
		v.Voters[userID] = dir
		bump(v, dir, 1)
	case prev == dir:
		delete(v.Voters, userID)
		bump(v, dir, -1)
	default:
		v.Voters[userID] = dir
		bump(v, prev, -1)
		bump(v, dir, 1)
	}
	return nil
}

func bump(v *models.VoteState, dir models.VoteDirection, delta int) {
	if dir == models.VoteUp {
		v.Upvotes += delta
	} else {
		v.Downvotes += delta
	}
}
