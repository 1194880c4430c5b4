package forum

import (
	"sort"

	"civicboard/internal/models"
)

// ReplyNode is a reply paired with its direct children, to unbounded depth.
type ReplyNode struct {
	models.Reply
	Children []*ReplyNode `json:"children"`
}

// BuildReplyTree nests a topic's flat reply list by parent id. Children are
// in ascending creation order at every level. Soft-deleted replies keep
// their structural position so their descendants stay attached.
//
// A reply whose parent id resolves to nothing (possible only if the store
// was mutated outside the engine) is treated as top-level rather than
// dropped.
func BuildReplyTree(replies []models.Reply) []*ReplyNode {
	sorted := make([]models.Reply, len(replies))
	copy(sorted, replies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	nodes := make(map[string]*ReplyNode, len(sorted))
	for i := range sorted {
		nodes[sorted[i].ID] = &ReplyNode{Reply: sorted[i]}
	}

	var roots []*ReplyNode
	for i := range sorted {
		node := nodes[sorted[i].ID]
		if pid := sorted[i].ParentReplyID; pid != nil {
			if parent, ok := nodes[*pid]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// CountReplies returns the number of nodes in the tree, soft-deleted
// placeholders included.
func CountReplies(roots []*ReplyNode) int {
	n := 0
	for _, r := range roots {
		n += 1 + CountReplies(r.Children)
	}
	return n
}
