package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/redcatch/store"
)

func (m Model) handleFeedLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostsLoadedMsg:
		anchorID := ""
		if p, ok := m.SelectedPost(); ok && msg.Req.Kind == store.FetchNextPage {
			anchorID = p.ID
		}
		if !m.posts.ApplyPage(msg.Req, msg.Page) {
			m.logStale(msg.Req)
			return m, nil
		}
		if msg.Req.IsSearch() {
			m.debouncer = m.debouncer.Done(msg.Req.Term)
		}
		if anchorID != "" {
			m.setCursorByID(anchorID)
		} else if msg.Req.Kind != store.FetchNextPage {
			m.resetListPosition()
		}
		m.ensureCursorVisible()
		// The sentinel moved below the new rows; re-arm it so a page that
		// still leaves it on screen keeps filling the viewport.
		m.sentinelVisible = false
		return m, m.checkSentinel()

	case PostsErrorMsg:
		if !m.posts.ApplyError(msg.Req) {
			m.logStale(msg.Req)
			return m, nil
		}
		if msg.Req.IsSearch() {
			m.debouncer = m.debouncer.Done(msg.Req.Term)
		}
		m.logger.Warn("fetch failed",
			"kind", msg.Req.Kind.String(),
			"category", string(msg.Req.Category),
			"term", msg.Req.Term,
			"err", msg.Err,
		)
		text := m.posts.Error()
		return m, func() tea.Msg { return FetchFailedMsg{Text: text} }
	}

	return m, nil
}

func (m Model) logStale(req store.Request) {
	m.logger.Debug("dropping stale response",
		"kind", req.Kind.String(),
		"seq", req.Seq,
		"category", string(req.Category),
		"term", req.Term,
	)
}
