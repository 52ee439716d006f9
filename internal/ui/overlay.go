// Package ui composites floating blocks (modals, tooltips) over rendered
// terminal frames.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle applies a dim gray color to background content behind modals.
// We strip existing ANSI codes and apply gray because SGR 2 (faint) doesn't
// reliably combine with existing color codes in most terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// DimSequence and ResetSequence are the raw ANSI codes used by DimStyle.
// Exported for testing.
const (
	DimSequence   = "\x1b[2m"
	ResetSequence = "\x1b[0m"
)

// maxLineWidth returns the maximum visual width of the given lines.
func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		w := ansi.StringWidth(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// dimLine strips ANSI codes and applies dim gray styling.
func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// compositeRow overlays modalLine onto bgLine at position modalStartX.
// Returns: dimmed-left-segment + modalLine + dimmed-right-segment
func compositeRow(bgLine, modalLine string, modalStartX, modalWidth, totalWidth int) string {
	var result strings.Builder

	// Strip ANSI from background for consistent dimming
	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	// Left segment: dimmed background from 0 to modalStartX
	if modalStartX > 0 {
		// Use ansi.Truncate to get visual-width-based substring
		leftSeg := ansi.Truncate(stripped, modalStartX, "")
		leftWidth := ansi.StringWidth(leftSeg)
		result.WriteString(DimStyle.Render(leftSeg))
		// Pad if background is shorter than modal position
		if leftWidth < modalStartX {
			result.WriteString(strings.Repeat(" ", modalStartX-leftWidth))
		}
	}

	// Modal content (not dimmed)
	result.WriteString(modalLine)

	// Right segment: dimmed background after modal
	rightStartX := modalStartX + modalWidth
	if rightStartX < totalWidth && bgWidth > rightStartX {
		// Use ansi.Cut to get visual-width-based substring from position
		rightSeg := ansi.Cut(stripped, rightStartX, bgWidth)
		result.WriteString(DimStyle.Render(rightSeg))
	}

	return result.String()
}

// ModalOrigin returns the top-left cell at which OverlayModal places modal.
func ModalOrigin(modal string, width, height int) (x, y int) {
	lines := strings.Split(modal, "\n")
	x = (width - maxLineWidth(lines)) / 2
	y = (height - len(lines)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// OverlayModal composites a modal on top of a dimmed background.
// The modal is centered, with dimmed background visible on all sides.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := padLines(strings.Split(background, "\n"), height)
	modalLines := strings.Split(modal, "\n")

	modalWidth := maxLineWidth(modalLines)
	modalHeight := len(modalLines)
	startX, startY := ModalOrigin(modal, width, height)

	result := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := bgLines[y]

		modalRowIdx := y - startY
		if modalRowIdx >= 0 && modalRowIdx < modalHeight {
			// Composite: dimmed-left + modal + dimmed-right
			result = append(result, compositeRow(bgLine, modalLines[modalRowIdx], startX, modalWidth, width))
		} else {
			// Pure dimmed background (above or below modal)
			result = append(result, dimLine(bgLine))
		}
	}

	return strings.Join(result, "\n")
}

// OverlayAt composites floating at (x, y) without dimming the background.
// Background styling outside the floating block is preserved. Rows of the
// floating block that fall outside the frame are dropped.
func OverlayAt(background, floating string, x, y, width, height int) string {
	bgLines := padLines(strings.Split(background, "\n"), height)
	fLines := strings.Split(floating, "\n")
	fWidth := maxLineWidth(fLines)
	if x < 0 {
		x = 0
	}

	result := make([]string, 0, height)
	for row := 0; row < height; row++ {
		bgLine := bgLines[row]
		idx := row - y
		if idx < 0 || idx >= len(fLines) {
			result = append(result, bgLine)
			continue
		}
		result = append(result, spliceRow(bgLine, fLines[idx], x, fWidth, width))
	}
	return strings.Join(result, "\n")
}

// spliceRow replaces the cells [x, x+w) of bgLine with line, keeping the
// background's own styling on both sides.
func spliceRow(bgLine, line string, x, w, totalWidth int) string {
	var b strings.Builder
	bgWidth := ansi.StringWidth(bgLine)

	left := ansi.Truncate(bgLine, x, "")
	b.WriteString(left)
	if lw := ansi.StringWidth(left); lw < x {
		b.WriteString(strings.Repeat(" ", x-lw))
	}
	b.WriteString(ResetSequence)

	b.WriteString(line)
	if lw := ansi.StringWidth(line); lw < w {
		b.WriteString(strings.Repeat(" ", w-lw))
	}

	if end := x + w; end < totalWidth && bgWidth > end {
		b.WriteString(ResetSequence)
		b.WriteString(ansi.Cut(bgLine, end, bgWidth))
	}
	return b.String()
}

func padLines(lines []string, height int) []string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
