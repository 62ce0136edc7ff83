package domain

import (
	"strings"
	"time"
)

// SiteURL is the host permalinks are relative to.
const SiteURL = "https://www.reddit.com"

// Post is a single link or self post from a listing or search result.
type Post struct {
	ID          string
	Name        string // Fullname, e.g. "t3_abc123"
	Title       string
	Author      string
	Subreddit   string
	Score       int
	NumComments int
	CreatedAt   time.Time
	Permalink   string // Path relative to the site root
	URL         string
	Thumbnail   string // Absolute image URL, empty when the post has none
	Body        string // Selftext, plain markdown
	IsVideo     bool
}

// HasExternalURL reports whether URL points somewhere other than reddit itself.
func (p Post) HasExternalURL() bool {
	return p.URL != "" && !containsFold(p.URL, "reddit.com")
}

// PermalinkURL returns the absolute URL of the post's comment thread.
func (p Post) PermalinkURL() string {
	if p.Permalink == "" {
		return ""
	}
	if strings.HasPrefix(p.Permalink, "http://") || strings.HasPrefix(p.Permalink, "https://") {
		return p.Permalink
	}
	return SiteURL + "/" + strings.TrimPrefix(p.Permalink, "/")
}

// BrowserURL is where "open" sends the user: the linked page for link posts,
// the comment thread otherwise.
func (p Post) BrowserURL() string {
	if p.HasExternalURL() {
		return p.URL
	}
	return p.PermalinkURL()
}

// Page is one decoded listing or search response.
type Page struct {
	Posts []Post
	After string // Continuation cursor; empty when the listing is exhausted
}
