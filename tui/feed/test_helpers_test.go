package feed

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/redcatch/app"
	"github.com/CrestNiraj12/redcatch/domain"
)

type listingCall struct {
	sources []string
	after   string
}

type searchCall struct {
	query string
	scope app.SearchScope
	after string
}

type stubReddit struct {
	mu           sync.Mutex
	page         domain.Page
	err          error
	comments     []domain.Comment
	commentsErr  error
	listingCalls []listingCall
	searchCalls  []searchCall
	commentCalls []string
}

func (s *stubReddit) FetchListing(_ context.Context, sources []string, after string) (domain.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listingCalls = append(s.listingCalls, listingCall{sources: sources, after: after})
	return s.page, s.err
}

func (s *stubReddit) Search(_ context.Context, query string, scope app.SearchScope, after string) (domain.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchCalls = append(s.searchCalls, searchCall{query: query, scope: scope, after: after})
	return s.page, s.err
}

func (s *stubReddit) FetchComments(_ context.Context, postID string) ([]domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commentCalls = append(s.commentCalls, postID)
	return s.comments, s.commentsErr
}

func (s *stubReddit) setPage(p domain.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = p
}

func (s *stubReddit) searches() []searchCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]searchCall(nil), s.searchCalls...)
}

func (s *stubReddit) listings() []listingCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]listingCall(nil), s.listingCalls...)
}

func newTestModel(svc app.RedditService, category domain.Category) Model {
	return New(svc, Options{
		Category:       category,
		RestrictSearch: true,
		SearchDebounce: time.Millisecond,
	})
}

func makePost(id string) domain.Post {
	return domain.Post{
		ID:          id,
		Name:        "t3_" + id,
		Title:       "Post " + id,
		Author:      "user" + id,
		Subreddit:   "golang",
		Score:       1200,
		NumComments: 3,
		Permalink:   "/r/golang/comments/" + id + "/post/",
	}
}

func makePage(after string, ids ...string) domain.Page {
	page := domain.Page{After: after}
	for _, id := range ids {
		page.Posts = append(page.Posts, makePost(id))
	}
	return page
}

func numberedIDs(from, to int) []string {
	var ids []string
	for i := from; i <= to; i++ {
		ids = append(ids, fmt.Sprintf("p%d", i))
	}
	return ids
}

// collect runs cmd, expanding batches, and returns the first message of type
// T. Commands that take longer than the wait (cursor blink and the like) are
// abandoned.
func collect[T tea.Msg](t *testing.T, cmd tea.Cmd) (T, bool) {
	t.Helper()
	var zero T
	if cmd == nil {
		return zero, false
	}
	out := make(chan tea.Msg, 64)
	var run func(c tea.Cmd)
	run = func(c tea.Cmd) {
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					if sub != nil {
						run(sub)
					}
				}
				return
			}
			select {
			case out <- msg:
			default:
			}
		}()
	}
	run(cmd)

	deadline := time.After(300 * time.Millisecond)
	for {
		select {
		case msg := <-out:
			if typed, ok := msg.(T); ok {
				return typed, true
			}
		case <-deadline:
			return zero, false
		}
	}
}

func requireMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	msg, ok := collect[T](t, cmd)
	if !ok {
		var zero T
		t.Fatalf("expected %T from command", zero)
	}
	return msg
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded returns a model whose first page has been applied.
func loaded(t *testing.T, svc *stubReddit, category domain.Category) Model {
	t.Helper()
	m := newTestModel(svc, category)
	msg := requireMsg[PostsLoadedMsg](t, m.Init())
	m, _ = m.Update(msg)
	return m
}
