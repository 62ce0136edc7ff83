package feed

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	cardHeight = 4 // Title and meta line plus the border
	minCards   = 1
)

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

func (m Model) feedViewportHeight() int {
	h := m.height - m.feedChromeLines()
	// App-level banner is rendered outside feed.View().
	h -= 2
	if h < cardHeight {
		h = cardHeight
	}
	return h
}

func (m Model) feedChromeLines() int {
	top := lineCount(m.renderHeader()) + lineCount(m.renderTabs()) + lineCount(m.renderSearchBar()) + lineCount(m.renderHeading()) + 1
	// Spacer, loader/notice row and the help block.
	bottom := 2 + lineCount(m.helpView())
	return top + bottom
}

// visibleSlots is how many cards fit in the list viewport.
func (m Model) visibleSlots() int {
	return max(m.feedViewportHeight()/cardHeight, minCards)
}

func (m Model) cardWidth() int {
	w := m.width - 6 // Scroll bar and margins
	if w > 110 {
		w = 110
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m *Model) moveCursor(delta int) tea.Cmd {
	n := m.posts.Len()
	if n == 0 {
		return nil
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.ensureCursorVisible()
	return m.checkSentinel()
}

func (m *Model) ensureCursorVisible() {
	n := m.posts.Len()
	if n == 0 {
		m.cursor = 0
		m.startIndex = 0
		return
	}
	m.cursor = min(max(m.cursor, 0), n-1)
	slots := m.visibleSlots()
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	}
	if m.cursor >= m.startIndex+slots {
		m.startIndex = m.cursor - slots + 1
	}
	m.startIndex = min(max(m.startIndex, 0), max(n-1, 0))
}

func (m *Model) resetListPosition() {
	m.cursor = 0
	m.startIndex = 0
	m.sentinelVisible = false
}

func (m *Model) setCursorByID(id string) {
	for i, p := range m.posts.Posts() {
		if p.ID == id {
			m.cursor = i
			return
		}
	}
}

// sentinelInView reports whether the virtual row after the last post is on
// screen, or the cursor is close enough to the end that it soon will be.
func (m Model) sentinelInView() bool {
	n := m.posts.Len()
	if n == 0 || m.showDetail {
		return false
	}
	if m.startIndex+m.visibleSlots() > n {
		return true
	}
	return m.cursor >= n-prefetchTrigger
}

// checkSentinel requests the next page when the sentinel comes into view.
// Only a hidden to visible transition fires; the collection's in-flight guard
// makes a redundant request impossible anyway.
func (m *Model) checkSentinel() tea.Cmd {
	visible := m.sentinelInView()
	was := m.sentinelVisible
	m.sentinelVisible = visible
	if !visible || was {
		return nil
	}
	req, ok := m.posts.LoadNextPage()
	if !ok {
		return nil
	}
	return m.fetchPosts(req)
}

func (m Model) detailViewportHeight() int {
	h := m.height - lineCount(m.helpView()) - 3
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) maxDetailScroll() int {
	return max(len(m.detailLines())-m.detailViewportHeight(), 0)
}

func (m *Model) scrollDetail(delta int) {
	m.detailScroll += delta
	m.clampDetailScroll()
}

func (m *Model) clampDetailScroll() {
	if !m.showDetail {
		return
	}
	m.detailScroll = min(max(m.detailScroll, 0), m.maxDetailScroll())
}
