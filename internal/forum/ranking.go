package forum

import (
	"math"
	"sort"
	"time"

	"civicboard/internal/models"
)

// SortStrategy selects one of the topic-list orderings.
type SortStrategy string

const (
	SortNewest   SortStrategy = "newest"
	SortActive   SortStrategy = "active"
	SortPopular  SortStrategy = "popular"
	SortTrending SortStrategy = "trending"
)

// ParseSortStrategy maps a query-string value to a strategy, defaulting
// to newest.
func ParseSortStrategy(s string) SortStrategy {
	switch SortStrategy(s) {
	case SortActive, SortPopular, SortTrending:
		return SortStrategy(s)
	default:
		return SortNewest
	}
}

// SortTopics orders topics by the given strategy, then regroups so that all
// pinned topics precede all unpinned ones. Sorts are stable: equal-key
// topics keep their relative input order. The input slice is not modified.
func SortTopics(topics []models.Topic, strategy SortStrategy, now time.Time) []models.Topic {
	out := make([]models.Topic, len(topics))
	copy(out, topics)

	switch strategy {
	case SortActive:
		sort.SliceStable(out, func(i, j int) bool {
			return lastActivity(&out[i]).After(lastActivity(&out[j]))
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Score() > out[j].Score()
		})
	case SortTrending:
		sort.SliceStable(out, func(i, j int) bool {
			return trendingScore(&out[i], now) > trendingScore(&out[j], now)
		})
	default: // newest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return pinnedFirst(out)
}

// lastActivity is the topic's most recent reply time, or its creation time
// when it has no replies.
func lastActivity(t *models.Topic) time.Time {
	if t.LastReplyAt != nil && t.LastReplyAt.After(t.CreatedAt) {
		return *t.LastReplyAt
	}
	return t.CreatedAt
}

// trendingScore weighs replies twice as heavily as upvotes and decays by the
// inverse square root of age. Age is floored at one hour so topics created
// seconds ago don't divide by a vanishing denominator.
func trendingScore(t *models.Topic, now time.Time) float64 {
	ageHours := now.Sub(t.CreatedAt).Hours()
	if ageHours < 1 {
		ageHours = 1
	}
	return float64(t.Upvotes+t.ReplyCount*2) / math.Sqrt(ageHours)
}

// pinnedFirst stably partitions: pinned topics first, each group keeping the
// order the strategy gave it.
func pinnedFirst(topics []models.Topic) []models.Topic {
	out := make([]models.Topic, 0, len(topics))
	for i := range topics {
		if topics[i].IsPinned {
			out = append(out, topics[i])
		}
	}
	for i := range topics {
		if !topics[i].IsPinned {
			out = append(out, topics[i])
		}
	}
	return out
}
