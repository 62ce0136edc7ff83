package feed

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/redcatch/tui/search"
)

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		var term string
		m.debouncer, term = m.debouncer.Submit(m.input.Value())
		m.searchFocused = false
		m.input.Blur()
		return m.runSearch(term)

	case key.Matches(msg, m.keys.Back):
		// Leaves focus only; a pending debounce still fires.
		m.searchFocused = false
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.searchInputChanged())
}

func (m *Model) searchInputChanged() tea.Cmd {
	value := m.input.Value()
	if strings.TrimSpace(value) != "" {
		var cmd tea.Cmd
		m.debouncer, cmd = m.debouncer.Keystroke(value)
		return cmd
	}

	// Emptied input: go back to the unfiltered list if a search had started.
	active := m.debouncer.Phase() != search.Idle || m.posts.SearchTerm() != "" || m.posts.IsSearching()
	m.debouncer = m.debouncer.Clear()
	if !active {
		return nil
	}
	req := m.posts.LoadFirstPage()
	m.resetListPosition()
	return m.fetchPosts(req)
}

func (m Model) handleSearchTick(msg search.TickMsg) (Model, tea.Cmd) {
	var (
		term string
		ok   bool
	)
	m.debouncer, term, ok = m.debouncer.Elapsed(msg)
	if !ok {
		return m, nil
	}
	return m.runSearch(term)
}

// runSearch hands term to the collection. Too-short terms reload the first
// page there instead, which never answers as a search, so the debouncer is
// settled right away.
func (m Model) runSearch(term string) (Model, tea.Cmd) {
	req := m.posts.Search(term)
	if !req.IsSearch() {
		m.debouncer = m.debouncer.Done(term)
	}
	m.resetListPosition()
	return m, m.fetchPosts(req)
}

func (m *Model) clearSearchInput() {
	m.input.SetValue("")
	m.input.Blur()
	m.searchFocused = false
	m.debouncer = m.debouncer.Clear()
}
