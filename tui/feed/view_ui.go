package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/redcatch/domain"
	"github.com/CrestNiraj12/redcatch/tui/common"
)

const (
	appTitle   = "🔶 redcatch"
	appTagline = "<reddit, without leaving the terminal>"
)

func (m Model) renderHeader() string {
	return common.AppTitleStyle.Padding(1, 0, 0, 1).Render(appTitle) + common.TaglineStyle.Render(appTagline)
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, len(domain.Categories))
	for i, c := range domain.Categories {
		label := fmt.Sprintf("%d %s", i+1, c.Label())
		if c == m.posts.Category() {
			rendered = append(rendered, common.TabActiveStyle.Render(label))
		} else {
			rendered = append(rendered, common.TabInactiveStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().MarginLeft(2).PaddingTop(1).Render(strings.Join(rendered, " "))
}

func (m Model) renderSearchBar() string {
	return lipgloss.NewStyle().MarginLeft(2).PaddingTop(1).Render(m.input.View())
}

func (m Model) renderHeading() string {
	title := m.posts.Category().Title()
	if term := m.posts.SearchTerm(); term != "" {
		title += common.NoticeStyle.Render(fmt.Sprintf("  results for %q", term))
	}
	return lipgloss.NewStyle().PaddingTop(1).Render(common.HeadingStyle.Render(title))
}

func (m Model) helpView() string {
	var items []string

	switch {
	case m.searchFocused:
		items = []string{
			"type: search",
			"enter: search now",
			"esc: done",
			"ctrl+c: quit",
		}
	case m.showDetail && m.showAllHints:
		items = []string{
			"j/k: scroll",
			"space/pgdn: page down",
			"pgup: page up",
			"g/G: top/bottom",
			"o: open in browser",
			"r: reload comments",
			"esc/q: back",
			"?: fewer keys",
		}
	case m.showDetail:
		items = []string{
			"j/k: scroll",
			"o: open",
			"esc/q: back",
			"?: all keys",
		}
	case m.showAllHints:
		items = []string{
			"j/k: move",
			"g/G: top/bottom",
			"enter: comments",
			"o: open in browser",
			"/: search",
			"esc: clear search",
			"1-7: category",
			"tab/shift+tab: next/prev category",
			"r: refresh",
			"q: quit",
			"?: fewer keys",
		}
	default:
		items = []string{
			"j/k: move",
			"enter: comments",
			"/: search",
			"1-7/tab: category",
			"r: refresh",
			"q: quit",
			"?: all keys",
		}
	}

	wrapWidth := max(m.width-2, 16)
	return common.StatusBarStyle.
		Width(wrapWidth).
		Render("  " + strings.Join(items, " • "))
}
