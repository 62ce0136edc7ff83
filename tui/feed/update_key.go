package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/redcatch/domain"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.searchFocused {
		return m.handleSearchKey(msg)
	}
	if m.showDetail {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return m, m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		return m, m.moveCursor(-m.posts.Len())
	case key.Matches(msg, m.keys.Bottom):
		return m, m.moveCursor(m.posts.Len())

	case key.Matches(msg, m.keys.Enter):
		p, ok := m.SelectedPost()
		if !ok {
			return m, nil
		}
		return m.openDetail(p)

	case key.Matches(msg, m.keys.Search):
		m.searchFocused = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Back):
		// esc on the list drops an active search.
		if m.posts.SearchTerm() == "" && !m.posts.IsSearching() && m.input.Value() == "" {
			return m, nil
		}
		return m.refresh()

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keys.NextCategory):
		return m.switchCategory(m.categoryAt(1))
	case key.Matches(msg, m.keys.PrevCategory):
		return m.switchCategory(m.categoryAt(-1))

	case key.Matches(msg, m.keys.Open):
		if p, ok := m.SelectedPost(); ok {
			return m, openURL(p.BrowserURL())
		}

	case key.Matches(msg, m.keys.ToggleHints):
		m.showAllHints = !m.showAllHints
	}

	if c, ok := categoryForKey(msg.String()); ok {
		return m.switchCategory(c)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.closeDetail()
		return m, m.checkSentinel()
	case key.Matches(msg, m.keys.Up):
		m.scrollDetail(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollDetail(1)
	case key.Matches(msg, m.keys.Top):
		m.detailScroll = 0
	case key.Matches(msg, m.keys.Bottom):
		m.detailScroll = m.maxDetailScroll()
	case msg.String() == "pgdown" || msg.String() == " ":
		m.scrollDetail(m.detailViewportHeight())
	case msg.String() == "pgup":
		m.scrollDetail(-m.detailViewportHeight())
	case key.Matches(msg, m.keys.Open):
		return m, openURL(m.focused.BrowserURL())
	case key.Matches(msg, m.keys.Refresh):
		m.commentCache.Remove(m.focused.ID)
		return m.openDetail(m.focused)
	case key.Matches(msg, m.keys.ToggleHints):
		m.showAllHints = !m.showAllHints
	}
	return m, nil
}

// categoryForKey maps "1".."7" to categories in display order.
func categoryForKey(s string) (domain.Category, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return "", false
	}
	i := int(s[0] - '1')
	if i >= len(domain.Categories) {
		return "", false
	}
	return domain.Categories[i], true
}

func (m Model) categoryAt(step int) domain.Category {
	current := 0
	for i, c := range domain.Categories {
		if c == m.posts.Category() {
			current = i
			break
		}
	}
	n := len(domain.Categories)
	return domain.Categories[((current+step)%n+n)%n]
}

func (m Model) switchCategory(c domain.Category) (Model, tea.Cmd) {
	req, ok := m.posts.SwitchCategory(c)
	if !ok {
		return m, nil
	}
	m.clearSearchInput()
	m.input.Placeholder = searchPlaceholder(c)
	m.resetListPosition()
	return m, m.fetchPosts(req)
}

// refresh reloads the unfiltered first page of the active category.
func (m Model) refresh() (Model, tea.Cmd) {
	req := m.posts.LoadFirstPage()
	m.clearSearchInput()
	m.resetListPosition()
	return m, m.fetchPosts(req)
}
