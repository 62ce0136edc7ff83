package reddit

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/CrestNiraj12/redcatch/app"
	"github.com/CrestNiraj12/redcatch/domain"
)

// SearchLimit is the page size requested from the search endpoint.
const SearchLimit = 25

var errNoSources = errors.New("no sources to fetch")

// Service implements app.RedditService on top of a Client.
type Service struct {
	client *Client
}

// NewService creates a service backed by reddit's public JSON API.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

var _ app.RedditService = (*Service)(nil)

// FetchListing requests /r/{a+b+c}.json, optionally after a cursor.
func (s *Service) FetchListing(ctx context.Context, sources []string, after string) (domain.Page, error) {
	if len(sources) == 0 {
		return domain.Page{}, errNoSources
	}
	query := url.Values{}
	if after != "" {
		query.Set("after", after)
	}

	data, err := s.client.Get(ctx, listingPath(sources), query)
	if err != nil {
		return domain.Page{}, fmt.Errorf("fetching listing: %w", err)
	}
	return decodeListing(data)
}

// Search requests relevance-sorted results, restricted to scope when it names sources.
func (s *Service) Search(ctx context.Context, query string, scope app.SearchScope, after string) (domain.Page, error) {
	path, params := searchRequest(query, scope, after)
	data, err := s.client.Get(ctx, path, params)
	if err != nil {
		return domain.Page{}, fmt.Errorf("searching: %w", err)
	}
	return decodeListing(data)
}

// FetchComments requests /comments/{id}.json and returns the comment tree.
func (s *Service) FetchComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return nil, domain.ErrEmptyPostID
	}
	data, err := s.client.Get(ctx, "/comments/"+url.PathEscape(postID)+".json", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	return decodeComments(data)
}

func listingPath(sources []string) string {
	return "/r/" + joinSources(sources) + ".json"
}

func searchRequest(query string, scope app.SearchScope, after string) (string, url.Values) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "relevance")
	params.Set("limit", strconv.Itoa(SearchLimit))
	if after != "" {
		params.Set("after", after)
	}
	if len(scope.Sources) == 0 {
		return "/search.json", params
	}
	params.Set("restrict_sr", "on")
	return "/r/" + joinSources(scope.Sources) + "/search.json", params
}

func joinSources(sources []string) string {
	escaped := make([]string, 0, len(sources))
	for _, s := range sources {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		escaped = append(escaped, url.PathEscape(s))
	}
	return strings.Join(escaped, "+")
}
