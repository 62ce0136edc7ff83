package reddit

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/redcatch/app"
	"github.com/CrestNiraj12/redcatch/domain"
)

const listingFixture = `{
  "kind": "Listing",
  "data": {
    "after": "t3_b",
    "children": [
      {"kind": "t3", "data": {
        "id": "a", "name": "t3_a", "title": "Hello &amp; welcome",
        "author": "gopher", "subreddit": "golang", "score": 42,
        "num_comments": 7, "created_utc": 1700000000.0,
        "permalink": "/r/golang/comments/a/hello/",
        "url": "https://go.dev/?a=1&amp;b=2", "thumbnail": "self",
        "selftext": "line one\nline \u001b[31mtwo\u001b[0m", "is_video": false
      }},
      {"kind": "t5", "data": {"id": "ignored"}},
      {"kind": "t3", "data": {
        "id": "b", "title": "Second", "author": "rob", "subreddit": "programming",
        "permalink": "/r/programming/comments/b/second/",
        "url": "https://www.reddit.com/r/programming/comments/b/second/",
        "thumbnail": "https://b.thumbs.redditmedia.com/x.jpg", "is_video": true
      }}
    ]
  }
}`

const commentsFixture = `[
  {"kind": "Listing", "data": {"after": null, "children": [{"kind": "t3", "data": {"id": "a"}}]}},
  {"kind": "Listing", "data": {"after": null, "children": [
    {"kind": "t1", "data": {"id": "c1", "author": "alice", "body": "top", "score": 3,
      "replies": {"kind": "Listing", "data": {"children": [
        {"kind": "t1", "data": {"id": "c2", "author": "bob", "body": "nested", "score": 1, "replies": ""}},
        {"kind": "more", "data": {"id": "m1", "count": 4}}
      ]}}}},
    {"kind": "t1", "data": {"id": "c3", "author": "[deleted]", "body": "", "replies": ""}}
  ]}}
]`

func TestServiceFetchListing_RequestShapeAndMapping(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	svc := NewService(newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(listingFixture))
	})))

	page, err := svc.FetchListing(context.Background(), []string{"golang", "programming"}, "t3_z")
	require.NoError(t, err)

	assert.Equal(t, "/r/golang+programming.json", gotPath)
	assert.Equal(t, "t3_z", gotQuery.Get("after"))
	assert.Equal(t, "t3_b", page.After)
	require.Len(t, page.Posts, 2)

	first := page.Posts[0]
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "t3_a", first.Name)
	assert.Equal(t, "Hello & welcome", first.Title)
	assert.Equal(t, "gopher", first.Author)
	assert.Equal(t, 42, first.Score)
	assert.Equal(t, 7, first.NumComments)
	assert.Equal(t, int64(1700000000), first.CreatedAt.Unix())
	assert.Equal(t, "https://go.dev/?a=1&b=2", first.URL)
	assert.Empty(t, first.Thumbnail, "placeholder thumbnails are dropped")
	assert.Equal(t, "line one\nline two", first.Body)

	second := page.Posts[1]
	assert.Equal(t, "t3_b", second.Name, "missing fullname is derived from the id")
	assert.Equal(t, "https://b.thumbs.redditmedia.com/x.jpg", second.Thumbnail)
	assert.True(t, second.IsVideo)
	assert.False(t, second.HasExternalURL())
}

func TestServiceFetchListing_FirstPageOmitsCursor(t *testing.T) {
	var rawQuery string
	svc := NewService(newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"after":null,"children":[]}}`))
	})))

	page, err := svc.FetchListing(context.Background(), []string{"popular"}, "")
	require.NoError(t, err)
	assert.Empty(t, rawQuery)
	assert.Empty(t, page.After)
	assert.Empty(t, page.Posts)
}

func TestServiceFetchListing_NoSources(t *testing.T) {
	svc := NewService(newTestClient(http.NotFoundHandler()))
	_, err := svc.FetchListing(context.Background(), nil, "")
	require.Error(t, err)
}

func TestServiceSearch_RestrictedToSources(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	svc := NewService(newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(listingFixture))
	})))

	_, err := svc.Search(context.Background(), "go generics", app.SearchScope{Sources: []string{"golang", "rust"}}, "t3_q")
	require.NoError(t, err)

	assert.Equal(t, "/r/golang+rust/search.json", gotPath)
	assert.Equal(t, "go generics", gotQuery.Get("q"))
	assert.Equal(t, "on", gotQuery.Get("restrict_sr"))
	assert.Equal(t, "relevance", gotQuery.Get("sort"))
	assert.Equal(t, "25", gotQuery.Get("limit"))
	assert.Equal(t, "t3_q", gotQuery.Get("after"))
}

func TestServiceSearch_SiteWide(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	svc := NewService(newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(listingFixture))
	})))

	_, err := svc.Search(context.Background(), "golang", app.SearchScope{}, "")
	require.NoError(t, err)

	assert.Equal(t, "/search.json", gotPath)
	assert.Empty(t, gotQuery.Get("restrict_sr"))
	assert.False(t, gotQuery.Has("after"))
}

func TestServiceFetchComments_DecodesTree(t *testing.T) {
	var gotPath string
	svc := NewService(newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(commentsFixture))
	})))

	comments, err := svc.FetchComments(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "/comments/a.json", gotPath)

	require.Len(t, comments, 2)
	assert.Equal(t, "c1", comments[0].ID)
	require.Len(t, comments[0].Replies, 1, "more stubs are dropped")
	assert.Equal(t, "nested", comments[0].Replies[0].Body)
	assert.Empty(t, comments[0].Replies[0].Replies)
	assert.True(t, comments[1].Removed())

	nodes := domain.FlattenComments(comments)
	require.Len(t, nodes, 2)
	assert.Equal(t, 0, nodes[0].Depth)
	assert.Equal(t, 1, nodes[1].Depth)
}

func TestServiceFetchComments_EmptyID(t *testing.T) {
	svc := NewService(newTestClient(http.NotFoundHandler()))
	_, err := svc.FetchComments(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyPostID)
}

func TestServiceFetchComments_MalformedEnvelope(t *testing.T) {
	svc := NewService(newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"kind":"Listing","data":{"children":[]}}]`))
	})))

	_, err := svc.FetchComments(context.Background(), "a")
	var parseErr *domain.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "comments", parseErr.What)
}

func TestServiceFetchListing_WrongKindIsParseError(t *testing.T) {
	svc := NewService(newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind":"t3","data":{}}`))
	})))

	_, err := svc.FetchListing(context.Background(), []string{"golang"}, "")
	var parseErr *domain.ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestServiceFetchListing_HTTPErrorPropagates(t *testing.T) {
	svc := NewService(newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})))

	_, err := svc.FetchListing(context.Background(), []string{"golang"}, "")
	var reqErr *domain.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusServiceUnavailable, reqErr.Status)
}

func TestDecodeReplies_RejectsNonEmptyString(t *testing.T) {
	_, err := decodeReplies([]byte(`"oops"`))
	assert.Error(t, err)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a\tb\nc", sanitizeText("a\tb\r\nc\x07"))
	assert.Equal(t, "red text", sanitizeText("\x1b[31mred\x1b[0m text"))
	assert.Equal(t, "one two", sanitizeLine(" one \n two "))
	assert.Equal(t, "<b>", sanitizeLine("&lt;b&gt;"))
}

func TestThumbnailURL(t *testing.T) {
	assert.Empty(t, thumbnailURL("default"))
	assert.Empty(t, thumbnailURL("nsfw"))
	assert.Empty(t, thumbnailURL("javascript://x.y/alert"))
	assert.Equal(t, "https://i.redd.it/x.png?w=1&h=2", thumbnailURL("https://i.redd.it/x.png?w=1&amp;h=2"))
}

func TestService_AgainstHTTPServer(t *testing.T) {
	var gotPath, gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery, gotUA = r.URL.Path, r.URL.RawQuery, r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, listingFixture)
	}))
	t.Cleanup(srv.Close)

	svc := NewService(NewClient(srv.URL,
		WithHTTPClient(srv.Client()),
		WithUserAgent("redcatch-test/1.0"),
		WithRateLimit(0, 0),
	))
	page, err := svc.FetchListing(context.Background(), []string{"golang", "rust"}, "t3_next")
	require.NoError(t, err)

	assert.Equal(t, "/r/golang+rust.json", gotPath)
	assert.Equal(t, "after=t3_next", gotQuery)
	assert.Equal(t, "redcatch-test/1.0", gotUA)
	assert.NotEmpty(t, page.Posts)
}
