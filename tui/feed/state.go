package feed

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/CrestNiraj12/redcatch/app"
	"github.com/CrestNiraj12/redcatch/domain"
	"github.com/CrestNiraj12/redcatch/store"
	"github.com/CrestNiraj12/redcatch/tui/common"
	"github.com/CrestNiraj12/redcatch/tui/search"
)

const (
	prefetchTrigger         = 3
	defaultCommentCacheSize = 64
	commentsFailedText      = "Failed to load comments. Please try again later."
)

// PostsLoadedMsg carries a successful listing or search response.
type PostsLoadedMsg struct {
	Req  store.Request
	Page domain.Page
}

// PostsErrorMsg carries a failed listing or search request.
type PostsErrorMsg struct {
	Req store.Request
	Err error
}

// CommentsLoadedMsg is sent when a post's comment tree has been fetched.
type CommentsLoadedMsg struct {
	PostID   string
	Seq      int
	Comments []domain.Comment
}

// CommentsErrorMsg is sent when a comments fetch fails.
type CommentsErrorMsg struct {
	PostID string
	Seq    int
	Err    error
}

// FetchFailedMsg asks the root model to surface a failed fetch as a banner.
type FetchFailedMsg struct {
	Text string
}

// Options configures a feed model. Zero values fall back to defaults.
type Options struct {
	Category         domain.Category
	RestrictSearch   bool
	SearchDebounce   time.Duration
	CommentCacheSize int
	Logger           *slog.Logger
}

// inflight holds the cancel funcs of outstanding requests. It is shared by
// every copy of the model so a superseded request can be cancelled from any
// later Update.
type inflight struct {
	posts    context.CancelFunc
	comments context.CancelFunc
}

func (f *inflight) startPosts() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	if f.posts != nil {
		f.posts()
	}
	f.posts = cancel
	return ctx
}

func (f *inflight) startComments() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	f.stopComments()
	f.comments = cancel
	return ctx
}

func (f *inflight) stopComments() {
	if f.comments != nil {
		f.comments()
		f.comments = nil
	}
}

func (f *inflight) stopAll() {
	if f.posts != nil {
		f.posts()
		f.posts = nil
	}
	f.stopComments()
}

// --- Model ---

type modelServices struct {
	reddit   app.RedditService
	logger   *slog.Logger
	now      func() time.Time
	inflight *inflight
}

type feedState struct {
	posts           *store.Collection
	restrictSearch  bool
	sentinelVisible bool
}

type uiState struct {
	keys         common.KeyMap
	spinner      spinner.Model
	width        int // Terminal width
	height       int // Terminal height
	cursor       int
	startIndex   int // First visible item in the list
	showAllHints bool
}

type searchState struct {
	input         textinput.Model
	searchFocused bool
	debouncer     search.Debouncer
}

type detailState struct {
	showDetail      bool
	focused         domain.Post
	comments        []domain.CommentNode
	commentsLoading bool
	commentsErr     string
	commentsSeq     int // Sequence of the latest comments request
	detailScroll    int
	commentCache    *lru.Cache[string, []domain.Comment]
}

// Model holds the state for the feed view and its post detail.
type Model struct {
	modelServices
	feedState
	uiState
	searchState
	detailState
}

// New creates a feed model with injected dependencies.
func New(reddit app.RedditService, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(common.Brand)

	category := opts.Category
	if category == "" {
		category = domain.CategoryPopular
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	delay := opts.SearchDebounce
	if delay <= 0 {
		delay = search.DefaultDelay
	}
	size := opts.CommentCacheSize
	if size <= 0 {
		size = defaultCommentCacheSize
	}
	cache, err := lru.New[string, []domain.Comment](size)
	if err != nil {
		// Only a non-positive size fails, which is ruled out above.
		panic(err)
	}

	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = searchPlaceholder(category)
	in.CharLimit = 256

	return Model{
		modelServices: modelServices{
			reddit:   reddit,
			logger:   logger,
			now:      time.Now,
			inflight: &inflight{},
		},
		feedState: feedState{
			posts:          store.New(category),
			restrictSearch: opts.RestrictSearch,
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
		searchState: searchState{
			input:     in,
			debouncer: search.New(delay),
		},
		detailState: detailState{
			commentCache: cache,
		},
	}
}

// Init starts the first page fetch for the initial category.
func (m Model) Init() tea.Cmd {
	req := m.posts.LoadFirstPage()
	return tea.Batch(
		m.fetchPosts(req),
		m.spinner.Tick,
	)
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// Close cancels every outstanding request.
func (m Model) Close() {
	m.inflight.stopAll()
}

// IsInDetailView reports whether a post is open.
func (m Model) IsInDetailView() bool {
	return m.showDetail
}

// CapturesInput reports whether key presses are going to the search bar.
func (m Model) CapturesInput() bool {
	return m.searchFocused
}

// Posts returns the posts currently listed.
func (m Model) Posts() []domain.Post {
	return m.posts.Posts()
}

// Category returns the active category.
func (m Model) Category() domain.Category {
	return m.posts.Category()
}

// SelectedPost returns the highlighted post, if any.
func (m Model) SelectedPost() (domain.Post, bool) {
	posts := m.posts.Posts()
	if len(posts) == 0 || m.cursor < 0 || m.cursor >= len(posts) {
		return domain.Post{}, false
	}
	return posts[m.cursor], true
}

func searchPlaceholder(c domain.Category) string {
	return "Search in " + c.Label() + "..."
}
