package feed

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/redcatch/domain"
	"github.com/CrestNiraj12/redcatch/tui/common"
)

const maxCommentIndent = 8

func (m Model) renderPostCard(p domain.Post, selected bool, width int) string {
	inner := max(width-4, 10) // Border and padding
	title := common.TitleStyle.Render(common.TruncateLine(p.Title, inner))
	meta := common.MetadataStyle.Render(common.TruncateLine(m.postMeta(p), inner))

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(inner + 2).Render(title + "\n" + meta)
}

// postMeta is the plain one-line summary under a card title.
func (m Model) postMeta(p domain.Post) string {
	parts := []string{
		"r/" + p.Subreddit,
		"u/" + p.Author,
		"▲ " + common.FormatCount(p.Score),
		"💬 " + common.FormatCount(p.NumComments),
	}
	if age := common.FormatAge(p.CreatedAt, m.now()); age != "" {
		parts = append(parts, age)
	}
	if p.IsVideo {
		parts = append(parts, "▶ video")
	}
	return strings.Join(parts, " • ")
}

// wrapText wraps s to width cells, keeping explicit newlines.
func wrapText(s string, width int) []string {
	s = strings.TrimRight(s, "\n ")
	if s == "" {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(max(width, 10)).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func renderComment(n domain.CommentNode, width int) []string {
	indent := strings.Repeat("  ", min(n.Depth, maxCommentIndent))
	rule := common.CommentRuleStyle.Render("│ ")
	if n.Depth == 0 {
		rule = common.RootCommentRuleStyle.Render("│ ")
	}
	prefix := indent + rule
	bodyWidth := max(width-lipgloss.Width(prefix), 10)

	header := common.AuthorStyle.Render("u/"+n.Author) + "  " +
		common.ScoreStyle.Render("▲ "+common.FormatCount(n.Score))
	lines := []string{prefix + header}
	for _, l := range wrapText(n.Body, bodyWidth) {
		lines = append(lines, prefix+common.ContentStyle.Render(l))
	}
	return lines
}
