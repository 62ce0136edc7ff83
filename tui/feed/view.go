package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/redcatch/tui/common"
)

const (
	emptySearchText = "No posts found matching your search."
	emptyListText   = "No posts available."
	endOfFeedText   = "You've reached the end."
)

// View renders the feed as a string.
func (m Model) View() string {
	if m.showDetail {
		return m.renderDetailView()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader() + "\n")
	b.WriteString(m.renderTabs() + "\n")
	b.WriteString(m.renderSearchBar() + "\n")
	b.WriteString(m.renderHeading() + "\n\n")

	posts := m.posts.Posts()
	switch {
	case m.posts.Loading() && len(posts) == 0:
		label := "Loading posts..."
		if m.posts.IsSearching() {
			label = "Searching..."
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", m.spinner.View(), label))
	case len(posts) == 0:
		text := emptyListText
		if m.posts.SearchTerm() != "" {
			text = emptySearchText
		}
		b.WriteString(common.NoticeStyle.Render("  "+text) + "\n")
	default:
		b.WriteString(m.renderList())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderListFooter() + "\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) renderList() string {
	posts := m.posts.Posts()
	slots := m.visibleSlots()
	start := min(max(m.startIndex, 0), len(posts)-1)
	end := min(start+slots, len(posts))
	width := m.cardWidth()

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, m.renderPostCard(posts[i], i == m.cursor, width))
	}
	list := strings.Join(cards, "\n")

	if len(posts) <= slots {
		return list
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		list,
		lipgloss.NewStyle().MarginLeft(1).Render(renderScrollBar(start, slots, len(posts), lipgloss.Height(list))))
}

func renderScrollBar(start, visible, total, height int) string {
	if height <= 0 || total <= 0 {
		return ""
	}
	thumbHeight := max(int(float64(visible)/float64(total)*float64(height)), 1)
	thumbStart := int(float64(start) / float64(total) * float64(height))
	if thumbStart+thumbHeight > height {
		thumbStart = height - thumbHeight
	}

	thumb := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8700")).Render("┃")
	track := lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")).Render("┃")
	rows := make([]string, height)
	for j := range rows {
		if j >= thumbStart && j < thumbStart+thumbHeight {
			rows[j] = thumb
		} else {
			rows[j] = track
		}
	}
	return strings.Join(rows, "\n")
}

// renderListFooter occupies one row whenever posts are listed so the list
// viewport does not jump when pagination state changes.
func (m Model) renderListFooter() string {
	switch {
	case m.posts.Len() == 0:
		return ""
	case m.posts.LoadingMore():
		return fmt.Sprintf("  %s Loading more...", m.spinner.View())
	case m.posts.Loading():
		return fmt.Sprintf("  %s Refreshing...", m.spinner.View())
	case !m.posts.HasMore():
		return common.NoticeStyle.Render("  " + endOfFeedText)
	}
	return ""
}
