package board

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/marcus/corkboard/internal/styles"
)

// markdownRenderer caches a glamour renderer per style and wrap width.
type markdownRenderer struct {
	style string
	width int
	r     *glamour.TermRenderer
}

func (m *markdownRenderer) render(md string, width int) (string, error) {
	style := styles.CurrentMarkdownTheme
	if m.r == nil || m.style != style || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		m.r, m.style, m.width = r, style, width
	}
	out, err := m.r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// preview renders the modal text as markdown. Render failures are logged
// and the preview is left out.
func (s *Screen) preview(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	out, err := s.markdown.render(text, width)
	if err != nil {
		s.logger.Warn("markdown preview failed", "err", err)
		return ""
	}
	return out
}
