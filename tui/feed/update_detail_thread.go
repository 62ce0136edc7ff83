package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/redcatch/domain"
)

func (m Model) handleDetailThreadMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CommentsLoadedMsg:
		m.commentCache.Add(msg.PostID, msg.Comments)
		if !m.awaitingComments(msg.PostID, msg.Seq) {
			m.logger.Debug("dropping stale comments", "post_id", msg.PostID, "seq", msg.Seq)
			return m, nil
		}
		m.setComments(msg.Comments)
		return m, nil

	case CommentsErrorMsg:
		if !m.awaitingComments(msg.PostID, msg.Seq) {
			return m, nil
		}
		m.logger.Warn("comments fetch failed", "post_id", msg.PostID, "err", msg.Err)
		m.commentsLoading = false
		m.commentsErr = commentsFailedText
		return m, nil
	}

	return m, nil
}

func (m Model) openDetail(p domain.Post) (Model, tea.Cmd) {
	m.showDetail = true
	m.focused = p
	m.detailScroll = 0
	m.commentsErr = ""
	if cached, ok := m.commentCache.Get(p.ID); ok {
		m.setComments(cached)
		return m, nil
	}
	m.comments = nil
	m.commentsLoading = true
	m.commentsSeq++
	return m, m.fetchComments(p.ID, m.commentsSeq)
}

// awaitingComments reports whether an answer belongs to the comments request
// the open detail view is waiting on.
func (m Model) awaitingComments(postID string, seq int) bool {
	return m.showDetail && m.commentsLoading && postID == m.focused.ID && seq == m.commentsSeq
}

func (m *Model) setComments(roots []domain.Comment) {
	m.comments = domain.FlattenComments(roots)
	m.commentsLoading = false
	m.commentsErr = ""
	m.clampDetailScroll()
}

func (m *Model) closeDetail() {
	m.inflight.stopComments()
	m.showDetail = false
	m.focused = domain.Post{}
	m.comments = nil
	m.commentsLoading = false
	m.commentsErr = ""
	m.detailScroll = 0
	m.ensureCursorVisible()
}
