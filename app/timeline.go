package app

import (
	"context"

	"github.com/CrestNiraj12/redcatch/domain"
)

// SearchScope restricts a search to a set of subreddits. An empty Sources
// searches the whole site.
type SearchScope struct {
	Sources []string
}

// ListingService fetches posts from subreddit listings and search.
type ListingService interface {
	// FetchListing returns one page of the combined listing of sources.
	// An empty after requests the first page.
	FetchListing(ctx context.Context, sources []string, after string) (domain.Page, error)

	// Search returns one page of relevance-sorted results for query.
	Search(ctx context.Context, query string, scope SearchScope, after string) (domain.Page, error)
}

// CommentService fetches a post's comment tree.
type CommentService interface {
	// FetchComments returns the top-level comments of a post with nested replies.
	FetchComments(ctx context.Context, postID string) ([]domain.Comment, error)
}

// RedditService is everything the feed needs from the remote API.
type RedditService interface {
	ListingService
	CommentService
}
