package common

import "github.com/charmbracelet/lipgloss"

// Brand is reddit's orange, shared by the title, spinner and selection border.
const Brand = lipgloss.Color("#FF4500")

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Brand).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true).
			MarginLeft(1)

	// HeadingStyle styles the category title above the list.
	HeadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5")).
			Bold(true).
			MarginLeft(2)

	// SubredditStyle styles r/name labels.
	SubredditStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// AuthorStyle styles u/name labels.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// MetadataStyle styles scores and counts.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8087A2"))

	// ScoreStyle highlights upvote counts.
	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8B60")).
			Bold(true)

	// ContentStyle styles post and comment text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// TitleStyle styles post titles.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F4F4F4")).
			Bold(true)

	// LinkStyle styles URLs.
	LinkStyle = lipgloss.NewStyle().
			Foreground(Brand).
			Underline(true)

	// SelectedStyle highlights the currently selected post.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Brand).
			Padding(0, 1)

	// UnselectedStyle gives unselected posts a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// TabActiveStyle styles the selected category tab.
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111111")).
			Background(lipgloss.Color("#FFB454")).
			Bold(true).
			Padding(0, 1)

	// TabInactiveStyle styles the other category tabs.
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B3B3B3")).
				Background(lipgloss.Color("#2B2B2B")).
				Padding(0, 1)

	// CommentRuleStyle draws the depth rule in front of comments.
	CommentRuleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6B2E1F"))

	// RootCommentRuleStyle draws the rule in front of top-level comments.
	RootCommentRuleStyle = lipgloss.NewStyle().
				Foreground(Brand)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// BannerStyle styles the dismissible error banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#B3261E")).
			Bold(true).
			Padding(0, 2)

	// NoticeStyle styles dimmed inline notices such as "Loading more...".
	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Italic(true)
)
