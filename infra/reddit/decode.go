package reddit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/CrestNiraj12/redcatch/domain"
)

const (
	kindComment = "t1"
	kindPost    = "t3"
	kindListing = "Listing"
)

// thing is reddit's generic {kind, data} envelope.
type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type listingData struct {
	After    *string `json:"after"`
	Children []thing `json:"children"`
}

type postData struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Permalink   string  `json:"permalink"`
	URL         string  `json:"url"`
	Thumbnail   string  `json:"thumbnail"`
	Selftext    string  `json:"selftext"`
	IsVideo     bool    `json:"is_video"`
}

type commentData struct {
	ID      string          `json:"id"`
	Author  string          `json:"author"`
	Body    string          `json:"body"`
	Score   int             `json:"score"`
	Replies json.RawMessage `json:"replies"`
}

func decodeListing(data []byte) (domain.Page, error) {
	var envelope thing
	if err := json.Unmarshal(data, &envelope); err != nil {
		return domain.Page{}, &domain.ParseError{What: "listing", Err: err}
	}
	listing, err := listingOf(envelope)
	if err != nil {
		return domain.Page{}, &domain.ParseError{What: "listing", Err: err}
	}

	page := domain.Page{Posts: make([]domain.Post, 0, len(listing.Children))}
	if listing.After != nil {
		page.After = *listing.After
	}
	for _, child := range listing.Children {
		if child.Kind != kindPost {
			continue
		}
		var pd postData
		if err := json.Unmarshal(child.Data, &pd); err != nil {
			return domain.Page{}, &domain.ParseError{What: "post", Err: err}
		}
		if pd.ID == "" {
			continue
		}
		page.Posts = append(page.Posts, toPost(pd))
	}
	return page, nil
}

// decodeComments reads the two-element [post listing, comment listing] array
// returned by /comments/{id}.json.
func decodeComments(data []byte) ([]domain.Comment, error) {
	var parts []thing
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, &domain.ParseError{What: "comments", Err: err}
	}
	if len(parts) < 2 {
		return nil, &domain.ParseError{What: "comments", Err: fmt.Errorf("expected 2 listings, got %d", len(parts))}
	}
	listing, err := listingOf(parts[1])
	if err != nil {
		return nil, &domain.ParseError{What: "comments", Err: err}
	}
	comments, err := toComments(listing.Children)
	if err != nil {
		return nil, &domain.ParseError{What: "comments", Err: err}
	}
	return comments, nil
}

func listingOf(t thing) (listingData, error) {
	if t.Kind != kindListing {
		return listingData{}, fmt.Errorf("unexpected kind %q", t.Kind)
	}
	var ld listingData
	if err := json.Unmarshal(t.Data, &ld); err != nil {
		return listingData{}, err
	}
	return ld, nil
}

func toComments(children []thing) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, child := range children {
		// "more" stubs and anything else that is not a comment are dropped.
		if child.Kind != kindComment {
			continue
		}
		var cd commentData
		if err := json.Unmarshal(child.Data, &cd); err != nil {
			return nil, err
		}
		replies, err := decodeReplies(cd.Replies)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Comment{
			ID:      cd.ID,
			Author:  sanitizeLine(cd.Author),
			Body:    sanitizeText(cd.Body),
			Score:   cd.Score,
			Replies: replies,
		})
	}
	return out, nil
}

// Replies is either an empty string or a nested listing.
func decodeReplies(raw json.RawMessage) ([]domain.Comment, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte(`""`)) {
		return nil, nil
	}
	if raw[0] == '"' {
		return nil, errors.New("replies: unexpected string value")
	}
	var t thing
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("replies: %w", err)
	}
	listing, err := listingOf(t)
	if err != nil {
		return nil, fmt.Errorf("replies: %w", err)
	}
	return toComments(listing.Children)
}

func toPost(pd postData) domain.Post {
	p := domain.Post{
		ID:          pd.ID,
		Name:        pd.Name,
		Title:       sanitizeLine(pd.Title),
		Author:      sanitizeLine(pd.Author),
		Subreddit:   sanitizeLine(pd.Subreddit),
		Score:       pd.Score,
		NumComments: pd.NumComments,
		Permalink:   pd.Permalink,
		URL:         strings.TrimSpace(html.UnescapeString(pd.URL)),
		Thumbnail:   thumbnailURL(pd.Thumbnail),
		Body:        sanitizeText(pd.Selftext),
		IsVideo:     pd.IsVideo,
	}
	if p.Name == "" {
		p.Name = kindPost + "_" + pd.ID
	}
	if pd.CreatedUTC > 0 {
		p.CreatedAt = time.Unix(int64(pd.CreatedUTC), 0).UTC()
	}
	return p
}

// Listings use placeholders such as "self", "default" or "nsfw" instead of a
// URL when a post has no preview.
func thumbnailURL(raw string) string {
	raw = strings.TrimSpace(html.UnescapeString(raw))
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return raw
}
