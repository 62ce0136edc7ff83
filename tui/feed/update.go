package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/redcatch/tui/search"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.width-8, 10)
		m.ensureCursorVisible()
		m.clampDetailScroll()
		return m, m.checkSentinel()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case search.TickMsg:
		return m.handleSearchTick(msg)
	}

	switch msg := msg.(type) {
	case PostsLoadedMsg, PostsErrorMsg:
		return m.handleFeedLoadingMsg(msg)
	case CommentsLoadedMsg, CommentsErrorMsg:
		return m.handleDetailThreadMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blink and other textinput internals.
	if m.searchFocused {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}
