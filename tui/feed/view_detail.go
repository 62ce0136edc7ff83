package feed

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/redcatch/tui/common"
)

func (m Model) renderDetailView() string {
	lines := m.detailLines()
	h := m.detailViewportHeight()
	start := min(max(m.detailScroll, 0), max(len(lines)-h, 0))
	end := min(start+h, len(lines))

	var b strings.Builder
	b.WriteString(strings.Join(lines[start:end], "\n"))
	b.WriteString("\n")
	if len(lines) > h {
		b.WriteString(common.NoticeStyle.Render(fmt.Sprintf("  lines %d-%d of %d", start+1, end, len(lines))))
	}
	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

// detailLines renders the whole open post and its thread, one entry per
// terminal row.
func (m Model) detailLines() []string {
	p := m.focused
	width := max(min(m.width-4, 110), 30)
	pad := func(s string) string { return "  " + s }

	var lines []string
	lines = append(lines, "")
	for _, l := range wrapText(p.Title, width) {
		lines = append(lines, pad(common.TitleStyle.Render(l)))
	}

	byline := common.SubredditStyle.Render("r/"+p.Subreddit) + " • " + common.AuthorStyle.Render("u/"+p.Author)
	if age := common.FormatAge(p.CreatedAt, m.now()); age != "" {
		byline += " • " + common.TimestampStyle.Render(age)
	}
	lines = append(lines, pad(byline))
	lines = append(lines, pad(
		common.ScoreStyle.Render("▲ "+common.FormatCount(p.Score)+" points")+
			common.MetadataStyle.Render(" • 💬 "+common.FormatCount(p.NumComments)+" comments"),
	))

	if body := wrapText(p.Body, width); len(body) > 0 {
		lines = append(lines, "")
		for _, l := range body {
			lines = append(lines, pad(common.ContentStyle.Render(l)))
		}
	}
	if p.HasExternalURL() {
		lines = append(lines, "", pad("🔗 "+common.LinkStyle.Render(common.TruncateLine(p.URL, width-3))))
	}
	if p.Thumbnail != "" {
		lines = append(lines, pad("🖼  "+common.LinkStyle.Render(common.TruncateLine(p.Thumbnail, width-4))))
	}

	lines = append(lines, "", pad(common.HeadingStyle.UnsetMarginLeft().Render(fmt.Sprintf("Comments (%s)", common.FormatCount(len(m.comments))))), "")
	switch {
	case m.commentsLoading:
		lines = append(lines, pad(m.spinner.View()+" Loading comments..."))
	case m.commentsErr != "":
		lines = append(lines, pad(common.ErrorStyle.Render(m.commentsErr)))
	case len(m.comments) == 0:
		lines = append(lines, pad(common.NoticeStyle.Render("No comments yet")))
	default:
		for i, n := range m.comments {
			if i > 0 && n.Depth == 0 {
				lines = append(lines, "")
			}
			for _, l := range renderComment(n, width) {
				lines = append(lines, pad(l))
			}
		}
	}
	return lines
}
