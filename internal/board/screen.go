// Package board draws the note board in the terminal.
//
// Screen is both the renderer the controller draws through and the event
// source it listens on. Every View call re-registers the hit regions of the
// frame so the app can turn raw mouse coordinates into zone origins.
package board

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/corkboard/internal/surface"
)

// Layout holds the user-tunable sizing of the board.
type Layout struct {
	CardWidth       int
	CardMaxLines    int
	MarkdownPreview bool
}

// DefaultLayout returns the layout used when nothing is configured.
func DefaultLayout() Layout {
	return Layout{
		CardWidth:    28,
		CardMaxLines: 6,
	}
}

const (
	minCardWidth = 16
	formTextRows = 3
	modalRows    = 5
)

type point struct{ x, y int }

// Screen is the terminal implementation of surface.Renderer.
type Screen struct {
	*surface.Dispatcher

	layout  Layout
	logger  *slog.Logger
	visible map[string]bool
	float   map[string]point
	fields  map[string]field
	focused string

	cards       []surface.Card
	fingerprint uint64

	grid     gridCache
	layouts  int // grid rebuilds, for tests
	markdown markdownRenderer

	scroll        int
	contentHeight int
	viewHeight    int
}

// New creates a Screen with the form collapsed and no cards.
func New(layout Layout, logger *slog.Logger) *Screen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Screen{
		Dispatcher: surface.NewDispatcher(),
		logger:     logger,
		visible: map[string]bool{
			surface.ZonePlaceholder: true,
		},
		float: make(map[string]point),
		fields: map[string]field{
			surface.FieldNoteTitle:  newInputField("Title"),
			surface.FieldNoteText:   newAreaField("Take a note...", formTextRows),
			surface.FieldModalTitle: newInputField("Title"),
			surface.FieldModalText:  newAreaField("Note", modalRows),
		},
		fingerprint: fingerprint(nil),
	}
	s.SetLayout(layout)
	return s
}

// SetLayout replaces the sizing options. Invalid values fall back to the
// defaults.
func (s *Screen) SetLayout(l Layout) {
	def := DefaultLayout()
	if l.CardWidth < minCardWidth {
		l.CardWidth = def.CardWidth
	}
	if l.CardMaxLines < 1 {
		l.CardMaxLines = def.CardMaxLines
	}
	s.layout = l
}

// SetVisibility shows or hides a zone. Hiding a zone blurs the fields
// inside it.
func (s *Screen) SetVisibility(zone string, visible bool) {
	s.visible[zone] = visible
	if visible {
		return
	}
	for _, name := range fieldsIn(zone) {
		if s.focused == name {
			s.Blur()
		}
	}
}

// Visible reports whether zone is currently shown.
func (s *Screen) Visible(zone string) bool { return s.visible[zone] }

// SetFieldValue sets the contents of a field. Unknown fields are ignored.
func (s *Screen) SetFieldValue(name, value string) {
	if f, ok := s.fields[name]; ok {
		f.SetValue(value)
	}
}

// FieldValue returns the contents of a field, or "" for unknown fields.
func (s *Screen) FieldValue(name string) string {
	if f, ok := s.fields[name]; ok {
		return f.Value()
	}
	return ""
}

// RenderList replaces the card list. An identical list keeps the previous
// grid layout.
func (s *Screen) RenderList(cards []surface.Card) {
	fp := fingerprint(cards)
	if fp == s.fingerprint && len(cards) == len(s.cards) {
		return
	}
	s.cards = slices.Clone(cards)
	s.fingerprint = fp
}

// Cards returns a copy of the rendered card list.
func (s *Screen) Cards() []surface.Card { return slices.Clone(s.cards) }

// Fingerprint returns the hash of the current card list.
func (s *Screen) Fingerprint() uint64 { return s.fingerprint }

// PositionFloating moves a floating zone to document coordinates.
func (s *Screen) PositionFloating(zone string, x, y int) {
	s.float[zone] = point{x, y}
}

// Floating returns the document position of a floating zone.
func (s *Screen) Floating(zone string) (x, y int, ok bool) {
	p, ok := s.float[zone]
	return p.x, p.y, ok
}

// Scroll returns the board's vertical scroll offset.
func (s *Screen) Scroll() int { return s.scroll }

// ScrollBy moves the board by delta rows, clamped to the content.
func (s *Screen) ScrollBy(delta int) {
	s.scroll = clampScroll(s.scroll+delta, s.contentHeight, s.viewHeight)
}

func clampScroll(scroll, content, view int) int {
	return max(0, min(scroll, content-view))
}

// Focus moves keyboard focus to the named field.
func (s *Screen) Focus(name string) tea.Cmd {
	f, ok := s.fields[name]
	if !ok {
		return nil
	}
	if s.focused == name {
		return nil
	}
	s.Blur()
	s.focused = name
	return f.Focus()
}

// Blur removes keyboard focus from every field.
func (s *Screen) Blur() {
	if f, ok := s.fields[s.focused]; ok {
		f.Blur()
	}
	s.focused = ""
}

// Focused returns the focused field name, or "".
func (s *Screen) Focused() string { return s.focused }

// FocusNext cycles focus through the fields of the active context.
func (s *Screen) FocusNext() tea.Cmd {
	ring := s.activeFields()
	if len(ring) == 0 {
		return nil
	}
	i := slices.Index(ring, s.focused)
	return s.Focus(ring[(i+1)%len(ring)])
}

// FocusFor moves focus after a click: onto the clicked field when it is
// visible, otherwise onto the first field of the active context, or off
// every field when no editor is open.
func (s *Screen) FocusFor(o surface.Origin) tea.Cmd {
	ring := s.activeFields()
	if len(ring) == 0 {
		s.Blur()
		return nil
	}
	for _, name := range ring {
		if o.Within(name) {
			return s.Focus(name)
		}
	}
	if slices.Contains(ring, s.focused) {
		return nil
	}
	return s.Focus(ring[len(ring)-1])
}

// activeFields lists the editable fields in tab order. The modal takes
// precedence over the form.
func (s *Screen) activeFields() []string {
	switch {
	case s.visible[surface.ZoneModal]:
		return fieldsIn(surface.ZoneModal)
	case s.visible[surface.ZoneFormOpen]:
		return fieldsIn(surface.ZoneFormOpen)
	}
	return nil
}

func fieldsIn(zone string) []string {
	switch zone {
	case surface.ZoneModal:
		return []string{surface.FieldModalTitle, surface.FieldModalText}
	case surface.ZoneFormOpen:
		return []string{surface.FieldNoteTitle, surface.FieldNoteText}
	}
	return nil
}

// Update forwards msg to the focused field.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	f, ok := s.fields[s.focused]
	if !ok {
		return nil
	}
	return f.Update(msg)
}

func fingerprint(cards []surface.Card) uint64 {
	d := xxhash.New()
	for _, c := range cards {
		_, _ = d.WriteString(strconv.Itoa(c.ID))
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(c.Title)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(c.Text)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(c.Color)
		_, _ = d.WriteString("\x1e")
	}
	return d.Sum64()
}
