package domain

import "strings"

// Comment is one node of a post's comment tree.
type Comment struct {
	ID      string
	Author  string
	Body    string
	Score   int
	Replies []Comment
}

// CommentNode is a comment positioned in a flattened thread.
type CommentNode struct {
	Comment
	Depth int
}

// Removed reports whether the comment carries no displayable text, either an
// empty body or reddit's deletion placeholder. Such nodes are skipped along
// with their replies.
func (c Comment) Removed() bool {
	switch strings.TrimSpace(c.Body) {
	case "", "[deleted]", "[removed]":
		return true
	}
	return false
}

// WalkComments visits the thread depth first, roots at depth 0. Returning
// false from fn stops the walk. Removed comments and their subtrees are not
// visited; their siblings are.
func WalkComments(roots []Comment, fn func(c Comment, depth int) bool) {
	walkComments(roots, 0, fn)
}

func walkComments(level []Comment, depth int, fn func(c Comment, depth int) bool) bool {
	for _, c := range level {
		if c.Removed() {
			continue
		}
		if !fn(c, depth) {
			return false
		}
		if !walkComments(c.Replies, depth+1, fn) {
			return false
		}
	}
	return true
}

// FlattenComments returns the visible thread in render order.
func FlattenComments(roots []Comment) []CommentNode {
	var out []CommentNode
	WalkComments(roots, func(c Comment, depth int) bool {
		out = append(out, CommentNode{Comment: c, Depth: depth})
		return true
	})
	return out
}

// CountComments returns how many comments FlattenComments would yield.
func CountComments(roots []Comment) int {
	n := 0
	WalkComments(roots, func(Comment, int) bool {
		n++
		return true
	})
	return n
}
