package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/corkboard/internal/keymap"
	"github.com/marcus/corkboard/internal/styles"
)

// View renders the entire application UI.
func (m Model) View() string {
	// Regions are registered fresh every frame; screens without the board
	// leave the map empty.
	m.mouse.Clear()

	if !m.ready {
		return "Loading..."
	}

	// Show warning if terminal is too small
	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.ToastError.Render(msg))
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString("\n") // spacing between header and content

	b.WriteString(m.screen.View(m.width, m.contentHeight(), m.mouse.HitMap))

	if m.footerVisible() {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}
	return b.String()
}

func (m Model) renderHeader() string {
	title := styles.Title.Render(" Corkboard")
	count := styles.Muted.Render(noteCount(m.store.Len()) + " ")
	spacing := max(m.width-lipgloss.Width(title)-lipgloss.Width(count), 1)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(title + strings.Repeat(" ", spacing) + count)
}

func noteCount(n int) string {
	if n == 1 {
		return "1 note"
	}
	return fmt.Sprintf("%d notes", n)
}

func (m Model) renderFooter() string {
	var status string
	if m.statusMsg != "" {
		toastStyle := styles.ToastSuccess
		if m.statusIsError {
			toastStyle = styles.ToastError
		}
		status = toastStyle.Render(m.statusMsg)
	}

	statusWidth := lipgloss.Width(status)
	minSpacing := 2
	var hintsStr string
	if m.showFooter {
		hintsStr = renderHintLineTruncated(m.footerHints(), m.width-statusWidth-minSpacing)
	}

	spacing := max(m.width-lipgloss.Width(hintsStr)-statusWidth, 0)
	footer := hintsStr + strings.Repeat(" ", spacing) + status

	// MaxWidth keeps the footer on one line.
	return lipgloss.NewStyle().MaxWidth(m.width).Render(footer)
}

type footerHint struct {
	keys  string
	label string
}

// footerHints lists the labelled bindings of the most specific context
// first, then the global ones.
func (m Model) footerHints() []footerHint {
	var hints []footerHint
	seen := make(map[string]bool)
	for _, ctx := range append(m.keyContexts(), keymap.ContextGlobal) {
		for _, b := range m.keymap.BindingsForContext(ctx) {
			if b.Help == "" || seen[b.Command] {
				continue
			}
			seen[b.Command] = true
			hints = append(hints, footerHint{keys: b.Key, label: b.Help})
		}
	}
	return hints
}

// renderHintLineTruncated renders hints that fit within maxWidth.
func renderHintLineTruncated(hints []footerHint, maxWidth int) string {
	if len(hints) == 0 || maxWidth <= 0 {
		return ""
	}
	var result string
	separator := "  "
	for _, hint := range hints {
		if hint.keys == "" || hint.label == "" {
			continue
		}
		part := fmt.Sprintf("%s %s", styles.KeyHint.Render(hint.keys), hint.label)
		candidate := part
		if result != "" {
			candidate = result + separator + part
		}
		if lipgloss.Width(candidate) > maxWidth {
			break
		}
		result = candidate
	}
	return result
}
