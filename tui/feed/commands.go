package feed

import (
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/redcatch/app"
	"github.com/CrestNiraj12/redcatch/domain"
	"github.com/CrestNiraj12/redcatch/store"
)

// fetchPosts runs req under a fresh context, cancelling whatever listing or
// search request was still outstanding.
func (m Model) fetchPosts(req store.Request) tea.Cmd {
	reddit := m.reddit
	scope := m.searchScope(req.Category)
	ctx := m.inflight.startPosts()
	m.logger.Debug("fetching posts",
		"kind", req.Kind.String(),
		"seq", req.Seq,
		"category", string(req.Category),
		"term", req.Term,
		"after", req.After,
	)
	return func() tea.Msg {
		var (
			page domain.Page
			err  error
		)
		if req.IsSearch() {
			page, err = reddit.Search(ctx, req.Term, scope, req.After)
		} else {
			page, err = reddit.FetchListing(ctx, req.Category.Sources(), req.After)
		}
		if err != nil {
			return PostsErrorMsg{Req: req, Err: err}
		}
		return PostsLoadedMsg{Req: req, Page: page}
	}
}

// Blanket categories already span the site, so their searches are never
// restricted.
func (m Model) searchScope(c domain.Category) app.SearchScope {
	if !m.restrictSearch || c.IsBlanket() {
		return app.SearchScope{}
	}
	return app.SearchScope{Sources: c.Sources()}
}

func (m Model) fetchComments(postID string, seq int) tea.Cmd {
	reddit := m.reddit
	ctx := m.inflight.startComments()
	return func() tea.Msg {
		comments, err := reddit.FetchComments(ctx, postID)
		if err != nil {
			return CommentsErrorMsg{PostID: postID, Seq: seq, Err: err}
		}
		return CommentsLoadedMsg{PostID: postID, Seq: seq, Comments: comments}
	}
}

func openURL(rawURL string) tea.Cmd {
	return func() tea.Msg {
		if !isSafeExternalURL(rawURL) {
			return nil
		}
		_ = browserCommand(rawURL).Start()
		return nil
	}
}

func browserCommand(rawURL string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return exec.Command("xdg-open", rawURL)
	}
}

func isSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
