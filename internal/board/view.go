package board

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/corkboard/internal/mouse"
	"github.com/marcus/corkboard/internal/notes"
	"github.com/marcus/corkboard/internal/styles"
	"github.com/marcus/corkboard/internal/surface"
	"github.com/marcus/corkboard/internal/ui"
)

// Hit-map layers, bottom to top.
const (
	LayerBase = iota
	LayerModal
	LayerTooltip
)

const (
	maxFormWidth   = 60
	maxModalWidth  = 64
	cardGap        = 1
	previewMaxRows = 8

	colorIconLabel  = "color"
	deleteIconLabel = "delete"
	closeLabel      = "Close"
	placeholderText = "Notes you add appear here"
)

// placed is a hit region in document coordinates.
type placed struct {
	zone  string
	attrs map[string]string
	rect  mouse.Rect
}

type gridKey struct {
	fingerprint uint64
	width       int
	layout      Layout
	theme       string
}

type gridCache struct {
	key     gridKey
	valid   bool
	lines   []string
	regions []placed // relative to the grid's top-left cell
}

// View renders the board into a width x height frame and registers its
// hit regions on hits. Coordinates are relative to the frame.
func (s *Screen) View(width, height int, hits *mouse.HitMap) string {
	width, height = max(width, 1), max(height, 1)

	var lines []string
	var regions []placed

	formLines, formRegions := s.renderForm(width)
	lines = append(lines, formLines...)
	regions = append(regions, formRegions...)
	lines = append(lines, "")

	gridTop := len(lines)
	gridLines, gridRegions := s.renderNotes(width)
	regions = append(regions, placed{
		zone: surface.ZoneNotes,
		rect: mouse.Rect{X: 0, Y: gridTop, W: width, H: max(len(gridLines), 1)},
	})
	for _, r := range gridRegions {
		r.rect.Y += gridTop
		regions = append(regions, r)
	}
	lines = append(lines, gridLines...)

	s.contentHeight = len(lines)
	s.viewHeight = height
	s.scroll = clampScroll(s.scroll, s.contentHeight, height)

	end := min(s.scroll+height, len(lines))
	frame := make([]string, 0, height)
	frame = append(frame, lines[s.scroll:end]...)
	for len(frame) < height {
		frame = append(frame, "")
	}
	out := strings.Join(frame, "\n")

	if hits != nil {
		hits.SetLayer(LayerBase)
		for _, r := range regions {
			r.rect.Y -= s.scroll
			register(hits, r, height)
		}
	}

	if s.visible[surface.ZoneModal] {
		modal, modalRegions := s.renderModal(width, height)
		out = ui.OverlayModal(out, modal, width, height)
		if hits != nil {
			hits.SetLayer(LayerModal)
			hits.Add(surface.ZoneModal, mouse.Rect{W: width, H: height}, nil)
			mx, my := ui.ModalOrigin(modal, width, height)
			for _, r := range modalRegions {
				r.rect.X += mx
				r.rect.Y += my
				register(hits, r, height)
			}
		}
	}

	if s.visible[surface.ZoneColorTooltip] {
		tip, tipRegions := renderTooltip()
		p := s.float[surface.ZoneColorTooltip]
		x := max(0, min(p.x, width-lipgloss.Width(tip)))
		y := p.y - s.scroll
		out = ui.OverlayAt(out, tip, x, y, width, height)
		if hits != nil {
			hits.SetLayer(LayerTooltip)
			for _, r := range tipRegions {
				r.rect.X += x
				r.rect.Y += y
				register(hits, r, height)
			}
		}
	}

	if hits != nil {
		hits.SetLayer(LayerBase)
	}
	return out
}

// register adds r to hits, clipped to the frame's rows.
func register(hits *mouse.HitMap, r placed, height int) {
	top := max(r.rect.Y, 0)
	bottom := min(r.rect.Y+r.rect.H, height)
	if bottom <= top {
		return
	}
	r.rect.Y, r.rect.H = top, bottom-top
	var data map[string]string
	if len(r.attrs) > 0 {
		data = r.attrs
	}
	hits.Add(r.zone, r.rect, data)
}

// renderForm draws the note form, collapsed to a single prompt line or
// expanded with both fields and the button row.
func (s *Screen) renderForm(width int) ([]string, []placed) {
	formW := min(width, maxFormWidth)
	x := (width - formW) / 2
	inner := max(formW-4, 1)
	cx := x + 2

	var body []string
	var regions []placed

	open := s.visible[surface.ZoneFormOpen]
	if !open {
		body = []string{fit(styles.Placeholder.Render("Take a note..."), inner)}
		regions = append(regions, placed{
			zone: surface.FieldNoteText,
			rect: mouse.Rect{X: cx, Y: 1, W: inner, H: 1},
		})
	} else {
		title := s.fields[surface.FieldNoteTitle]
		text := s.fields[surface.FieldNoteText]
		title.SetWidth(inner)
		text.SetWidth(inner)

		body = append(body, fit(title.View(), inner))
		body = append(body, fitBlock(text.View(), inner, formTextRows)...)

		hint := styles.Muted.Render("ctrl+s add")
		button := styles.Button.Render(closeLabel)
		bw := lipgloss.Width(button)
		gap := max(inner-lipgloss.Width(hint)-bw, 1)
		body = append(body, fit(hint+strings.Repeat(" ", gap)+button, inner))

		buttonsY := 1 + 1 + formTextRows
		regions = append(regions,
			placed{zone: surface.ZoneFormOpen, rect: mouse.Rect{X: cx, Y: 1, W: inner, H: buttonsY}},
			placed{zone: surface.FieldNoteTitle, rect: mouse.Rect{X: cx, Y: 1, W: inner, H: 1}},
			placed{zone: surface.FieldNoteText, rect: mouse.Rect{X: cx, Y: 2, W: inner, H: formTextRows}},
			placed{zone: surface.ZoneFormButtons, rect: mouse.Rect{X: cx, Y: buttonsY, W: inner, H: 1}},
			placed{zone: surface.ZoneFormClose, rect: mouse.Rect{X: cx + inner - bw, Y: buttonsY, W: bw, H: 1}},
		)
	}

	style := styles.FormInactive
	if open {
		style = styles.FormActive
	}
	box := style.Width(formW - 2).Render(strings.Join(body, "\n"))

	lines := make([]string, 0, len(body)+2)
	pad := strings.Repeat(" ", x)
	for _, l := range strings.Split(box, "\n") {
		lines = append(lines, pad+l)
	}

	formRegion := placed{
		zone: surface.ZoneForm,
		rect: mouse.Rect{X: x, Y: 0, W: formW, H: len(lines)},
	}
	return lines, append([]placed{formRegion}, regions...)
}

// renderNotes draws the placeholder or the card grid. The grid is cached
// until the card list, the width, the layout or the theme changes.
func (s *Screen) renderNotes(width int) ([]string, []placed) {
	var lines []string
	var regions []placed

	if s.visible[surface.ZonePlaceholder] {
		text := styles.Placeholder.Render(placeholderText)
		w := lipgloss.Width(text)
		x := max((width-w)/2, 0)
		lines = append(lines, strings.Repeat(" ", x)+text, "")
		regions = append(regions, placed{
			zone: surface.ZonePlaceholder,
			rect: mouse.Rect{X: x, Y: 0, W: w, H: 1},
		})
	}

	key := gridKey{
		fingerprint: s.fingerprint,
		width:       width,
		layout:      s.layout,
		theme:       styles.GetCurrentThemeName(),
	}
	if !s.grid.valid || s.grid.key != key {
		s.grid.lines, s.grid.regions = s.layoutGrid(width)
		s.grid.key = key
		s.grid.valid = true
		s.layouts++
	}

	top := len(lines)
	for _, r := range s.grid.regions {
		r.rect.Y += top
		regions = append(regions, r)
	}
	return append(lines, s.grid.lines...), regions
}

// layoutGrid lays the cards out left to right in rows of equal height.
func (s *Screen) layoutGrid(width int) ([]string, []placed) {
	if len(s.cards) == 0 {
		return nil, nil
	}

	cardW := min(s.layout.CardWidth, width)
	cols := max((width+cardGap)/(cardW+cardGap), 1)
	gridW := cols*cardW + (cols-1)*cardGap
	left := max((width-gridW)/2, 0)
	inner := max(cardW-2, 1)

	var lines []string
	var regions []placed

	for start := 0; start < len(s.cards); start += cols {
		row := s.cards[start:min(start+cols, len(s.cards))]

		bodies := make([][]string, len(row))
		rowH := 0
		for i, c := range row {
			bodies[i] = cardBody(c, inner, s.layout.CardMaxLines)
			rowH = max(rowH, len(bodies[i])+2) // blank line + toolbar
		}

		y := len(lines)
		blocks := make([]string, 0, len(row)*2)
		for i, c := range row {
			cl := bodies[i]
			for len(cl) < rowH-1 {
				cl = append(cl, "")
			}
			cl = append(cl, toolbar(inner))
			blocks = append(blocks, styles.CardStyle(c.Color, cardW).Render(strings.Join(cl, "\n")))
			if i < len(row)-1 {
				blocks = append(blocks, strings.Repeat(" ", cardGap))
			}

			x := left + i*(cardW+cardGap)
			attrs := map[string]string{surface.AttrID: strconv.Itoa(c.ID)}
			ty := y + rowH - 1
			regions = append(regions,
				placed{zone: surface.ZoneCard, attrs: attrs, rect: mouse.Rect{X: x, Y: y, W: cardW, H: rowH}},
				placed{zone: surface.ZoneColorIcon, attrs: attrs, rect: mouse.Rect{X: x + 1, Y: ty, W: len(colorIconLabel), H: 1}},
				placed{zone: surface.ZoneDeleteIcon, attrs: attrs, rect: mouse.Rect{X: x + 2 + len(colorIconLabel), Y: ty, W: len(deleteIconLabel), H: 1}},
			)
		}

		joined := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
		pad := strings.Repeat(" ", left)
		for _, l := range strings.Split(joined, "\n") {
			lines = append(lines, pad+l)
		}
		lines = append(lines, "")
	}
	return lines, regions
}

// cardBody returns the title and wrapped text lines of a card, with the
// text clipped to maxLines.
func cardBody(c surface.Card, width, maxLines int) []string {
	var out []string
	if c.Title != "" {
		out = append(out, styles.CardTitleStyle(c.Color).Render(runewidth.Truncate(c.Title, width, "…")))
	}
	if c.Text == "" {
		return out
	}
	wrapped := strings.Split(ansi.Wrap(c.Text, width, ""), "\n")
	if len(wrapped) > maxLines {
		wrapped = wrapped[:maxLines]
		last := ansi.Truncate(wrapped[maxLines-1], width-1, "")
		wrapped[maxLines-1] = last + "…"
	}
	return append(out, wrapped...)
}

func toolbar(width int) string {
	return fit(colorIconLabel+" "+deleteIconLabel, width)
}

// renderModal draws the detail editor. Region coordinates are relative to
// the modal's top-left cell.
func (s *Screen) renderModal(width, height int) (string, []placed) {
	modalW := max(min(width-4, maxModalWidth), 20)
	inner := max(modalW-6, 1) // border + horizontal padding

	title := s.fields[surface.FieldModalTitle]
	text := s.fields[surface.FieldModalText]
	title.SetWidth(inner)
	text.SetWidth(inner)

	var body []string
	body = append(body, styles.Title.Render("Edit note"), "")
	titleY := len(body)
	body = append(body, fit(title.View(), inner))
	textY := len(body)
	body = append(body, fitBlock(text.View(), inner, modalRows)...)

	if s.layout.MarkdownPreview {
		if preview := s.preview(text.Value(), inner); preview != "" {
			body = append(body, "", styles.Muted.Render("Preview"))
			pl := strings.Split(preview, "\n")
			if len(pl) > previewMaxRows {
				pl = pl[:previewMaxRows]
			}
			for _, l := range pl {
				body = append(body, fit(l, inner))
			}
		}
	}

	body = append(body, "")
	hint := styles.Muted.Render("ctrl+y copy  esc close")
	button := styles.Button.Render(closeLabel)
	bw := lipgloss.Width(button)
	gap := max(inner-lipgloss.Width(hint)-bw, 1)
	buttonsY := len(body)
	body = append(body, fit(hint+strings.Repeat(" ", gap)+button, inner))

	box := styles.ModalBox.Width(modalW - 2).Render(strings.Join(body, "\n"))

	const ox, oy = 3, 2 // border + padding
	regions := []placed{
		{zone: surface.FieldModalTitle, rect: mouse.Rect{X: ox, Y: oy + titleY, W: inner, H: 1}},
		{zone: surface.FieldModalText, rect: mouse.Rect{X: ox, Y: oy + textY, W: inner, H: modalRows}},
		{zone: surface.ZoneModalClose, rect: mouse.Rect{X: ox + inner - bw, Y: oy + buttonsY, W: bw, H: 1}},
	}
	return box, regions
}

// renderTooltip draws the color palette as one row of swatches.
func renderTooltip() (string, []placed) {
	gap := styles.Tooltip.Render(" ")
	var b strings.Builder
	b.WriteString(gap)
	regions := make([]placed, 0, len(notes.Palette)+1)
	for i, c := range notes.Palette {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(styles.SwatchStyle(c).Render("  "))
		regions = append(regions, placed{
			zone:  surface.ZoneColorSwatch,
			attrs: map[string]string{surface.AttrColor: c},
			rect:  mouse.Rect{X: 1 + i*3, Y: 0, W: 2, H: 1},
		})
	}
	b.WriteString(gap)
	tip := b.String()
	tooltip := placed{
		zone: surface.ZoneColorTooltip,
		rect: mouse.Rect{X: 0, Y: 0, W: lipgloss.Width(tip), H: 1},
	}
	return tip, append([]placed{tooltip}, regions...)
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// fitBlock fits every line of s to width and the block to rows lines.
func fitBlock(s string, width, rows int) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, rows)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fit(line, width)
	}
	return out
}
