package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/redcatch/app"
	"github.com/CrestNiraj12/redcatch/domain"
	"github.com/CrestNiraj12/redcatch/tui/common"
	"github.com/CrestNiraj12/redcatch/tui/feed"
)

// DefaultErrorDismiss is how long a fetch failure banner stays up.
const DefaultErrorDismiss = 5 * time.Second

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Reddit           app.RedditService
	Category         domain.Category
	RestrictSearch   bool
	SearchDebounce   time.Duration
	ErrorDismiss     time.Duration
	CommentCacheSize int
	Logger           *slog.Logger
}

type bannerDismissMsg struct {
	seq int
}

// App is the root Bubble Tea model. It owns the feed and the error banner.
type App struct {
	feed         feed.Model
	keys         common.KeyMap
	errorDismiss time.Duration
	banner       string
	bannerSeq    int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	dismiss := deps.ErrorDismiss
	if dismiss <= 0 {
		dismiss = DefaultErrorDismiss
	}
	return App{
		feed: feed.New(deps.Reddit, feed.Options{
			Category:         deps.Category,
			RestrictSearch:   deps.RestrictSearch,
			SearchDebounce:   deps.SearchDebounce,
			CommentCacheSize: deps.CommentCacheSize,
			Logger:           deps.Logger,
		}),
		keys:         common.DefaultKeyMap(),
		errorDismiss: dismiss,
	}
}

// Init delegates to the feed.
func (a App) Init() tea.Cmd {
	return a.feed.Init()
}

// Update handles global keys and the banner, and routes the rest to the feed.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			a.feed.Close()
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Quit) && !a.feed.IsInDetailView() && !a.feed.CapturesInput() {
			a.feed.Close()
			return a, tea.Quit
		}

	case feed.FetchFailedMsg:
		// A newer failure replaces the banner and restarts its timer.
		a.bannerSeq++
		a.banner = msg.Text
		seq := a.bannerSeq
		return a, tea.Tick(a.errorDismiss, func(time.Time) tea.Msg {
			return bannerDismissMsg{seq: seq}
		})

	case bannerDismissMsg:
		if msg.seq == a.bannerSeq {
			a.banner = ""
		}
		return a, nil
	}

	updated, cmd := a.feed.Update(msg)
	a.feed = updated
	return a, cmd
}

// View renders the feed with the banner, if any, underneath.
func (a App) View() string {
	s := a.feed.View()
	if a.banner != "" {
		s += "\n" + common.BannerStyle.Render(a.banner)
	}
	return s
}

// Banner returns the error banner text currently shown.
func (a App) Banner() string {
	return a.banner
}
