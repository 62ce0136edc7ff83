// Package store holds the in-memory state of one paginated, searchable feed.
//
// A Collection is mutated only through its transition methods. Transitions
// that start a fetch return the Request describing it; the caller performs the
// I/O and hands the Request back with the result, which lets the collection
// discard answers to requests that were superseded in the meantime.
package store

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/CrestNiraj12/redcatch/domain"
)

// MinSearchLength is the shortest trimmed term that issues a search.
const MinSearchLength = 3

// FetchKind distinguishes the requests a collection issues.
type FetchKind int

const (
	FetchFirstPage FetchKind = iota
	FetchNextPage
	FetchSearch
)

func (k FetchKind) String() string {
	switch k {
	case FetchFirstPage:
		return "first-page"
	case FetchNextPage:
		return "next-page"
	case FetchSearch:
		return "search"
	}
	return "unknown"
}

// Request describes one outbound fetch.
type Request struct {
	Kind     FetchKind
	Seq      int
	Category domain.Category
	Term     string // Search term; also set on next pages of an active search
	After    string
}

// IsSearch reports whether the request targets the search endpoint.
func (r Request) IsSearch() bool {
	return r.Term != ""
}

// State is a read-only snapshot of a collection.
type State struct {
	Posts       []domain.Post
	After       string
	HasMore     bool
	Loading     bool
	LoadingMore bool
	IsSearching bool
	Error       string
	Category    domain.Category
	SearchTerm  string
}

// Collection is the state container for one feed.
type Collection struct {
	posts       []domain.Post
	after       string
	hasMore     bool
	loading     bool
	loadingMore bool
	searching   bool
	err         string
	category    domain.Category
	searchTerm  string

	seq        int    // Sequence of the latest issued request
	issuedTerm string // Term of the latest issued request, empty for listings
}

// New returns an empty collection for category. Nothing is fetched until
// LoadFirstPage is called.
func New(category domain.Category) *Collection {
	return &Collection{
		category: category,
		hasMore:  true,
	}
}

// SwitchCategory resets pagination and search state and starts the first page
// of category. Switching to the active category is a no-op.
func (c *Collection) SwitchCategory(category domain.Category) (Request, bool) {
	if category == c.category {
		return Request{}, false
	}
	c.category = category
	return c.LoadFirstPage(), true
}

// LoadFirstPage clears the feed and starts an unfiltered listing fetch.
func (c *Collection) LoadFirstPage() Request {
	c.posts = nil
	c.after = ""
	c.hasMore = true
	c.loadingMore = false
	c.searching = false
	c.err = ""
	c.searchTerm = ""
	c.loading = true
	return c.issue(Request{Kind: FetchFirstPage})
}

// CanLoadNextPage reports whether a next page may be requested right now.
func (c *Collection) CanLoadNextPage() bool {
	return c.hasMore && c.after != "" && !c.loading && !c.loadingMore && !c.searching
}

// LoadNextPage starts fetching the page after the cursor, continuing the
// active search if there is one. It refuses while any fetch is in flight or
// when the feed is exhausted.
func (c *Collection) LoadNextPage() (Request, bool) {
	if !c.CanLoadNextPage() {
		return Request{}, false
	}
	c.loadingMore = true
	return c.issue(Request{
		Kind:  FetchNextPage,
		Term:  c.searchTerm,
		After: c.after,
	}), true
}

// Search starts a search for term within the active category. Terms shorter
// than MinSearchLength after trimming are treated as no search and reload the
// unfiltered first page instead.
func (c *Collection) Search(term string) Request {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < MinSearchLength {
		return c.LoadFirstPage()
	}
	c.loading = true
	c.loadingMore = false
	c.searching = true
	c.err = ""
	return c.issue(Request{Kind: FetchSearch, Term: term})
}

func (c *Collection) issue(r Request) Request {
	c.seq++
	r.Seq = c.seq
	r.Category = c.category
	c.issuedTerm = r.Term
	return r
}

// Stale reports whether req has been superseded by a later request.
func (c *Collection) Stale(req Request) bool {
	return req.Seq != c.seq || req.Category != c.category || req.Term != c.issuedTerm
}

// ApplyPage folds a successful response into the collection. It returns
// false when the response answers a superseded request and was dropped.
func (c *Collection) ApplyPage(req Request, page domain.Page) bool {
	if c.Stale(req) {
		return false
	}
	c.loading = false
	c.loadingMore = false
	c.err = ""

	var existing []domain.Post
	if req.Kind == FetchSearch {
		// Search results replace the list instead of extending it.
		c.searching = false
		c.searchTerm = req.Term
	} else {
		existing = c.posts
	}

	res := Merge(existing, page)
	c.posts = res.Items
	c.after = res.After
	c.hasMore = res.HasMore
	return true
}

// ApplyError records a failed fetch. Pagination stops until the user switches
// category, refreshes or searches again. It returns false for stale requests.
func (c *Collection) ApplyError(req Request) bool {
	if c.Stale(req) {
		return false
	}
	c.loading = false
	c.loadingMore = false
	c.searching = false
	c.hasMore = false
	c.err = failureMessage(req)
	return true
}

func failureMessage(req Request) string {
	if req.IsSearch() {
		return "Failed to search posts"
	}
	return fmt.Sprintf("Failed to fetch posts from %s", req.Category)
}

// Posts returns the current posts. The slice must not be modified.
func (c *Collection) Posts() []domain.Post { return c.posts }

// Len returns the number of posts held.
func (c *Collection) Len() int { return len(c.posts) }

func (c *Collection) Category() domain.Category { return c.category }
func (c *Collection) SearchTerm() string       { return c.searchTerm }
func (c *Collection) HasMore() bool            { return c.hasMore }
func (c *Collection) Loading() bool            { return c.loading }
func (c *Collection) LoadingMore() bool        { return c.loadingMore }
func (c *Collection) IsSearching() bool        { return c.searching }
func (c *Collection) Error() string            { return c.err }

// Busy reports whether any fetch owned by the collection is in flight.
func (c *Collection) Busy() bool {
	return c.loading || c.loadingMore || c.searching
}

// State returns a snapshot of the collection.
func (c *Collection) State() State {
	return State{
		Posts:       c.posts,
		After:       c.after,
		HasMore:     c.hasMore,
		Loading:     c.loading,
		LoadingMore: c.loadingMore,
		IsSearching: c.searching,
		Error:       c.err,
		Category:    c.category,
		SearchTerm:  c.searchTerm,
	}
}
