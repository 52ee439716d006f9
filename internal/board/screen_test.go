package board

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/corkboard/internal/mouse"
	"github.com/marcus/corkboard/internal/surface"
)

func newTestScreen() *Screen {
	return New(DefaultLayout(), nil)
}

func twoCards() []surface.Card {
	return []surface.Card{
		{ID: 1, Title: "groceries", Text: "milk, eggs", Color: "white"},
		{ID: 2, Title: "", Text: "call mom", Color: "yellow"},
	}
}

func findRegion(t *testing.T, hits *mouse.HitMap, zone string, attrs map[string]string) mouse.Region {
	t.Helper()
	for _, r := range hits.Regions() {
		if r.ID != zone {
			continue
		}
		data, _ := r.Data.(map[string]string)
		match := true
		for k, v := range attrs {
			if data[k] != v {
				match = false
			}
		}
		if match {
			return r
		}
	}
	t.Fatalf("no region %q with attrs %v", zone, attrs)
	return mouse.Region{}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func zonesAt(hits *mouse.HitMap, x, y int) []string {
	var out []string
	for _, r := range hits.Stack(x, y) {
		out = append(out, r.ID)
	}
	return out
}

func TestNew_InitialState(t *testing.T) {
	s := newTestScreen()

	assert.True(t, s.Visible(surface.ZonePlaceholder))
	assert.False(t, s.Visible(surface.ZoneFormOpen))
	assert.False(t, s.Visible(surface.ZoneModal))
	assert.False(t, s.Visible(surface.ZoneColorTooltip))
	assert.Empty(t, s.FieldValue(surface.FieldNoteTitle))
	assert.Empty(t, s.Cards())
	assert.Empty(t, s.Focused())
}

func TestSetLayout_InvalidFallsBack(t *testing.T) {
	s := New(Layout{CardWidth: 3, CardMaxLines: 0}, nil)
	assert.Equal(t, DefaultLayout().CardWidth, s.layout.CardWidth)
	assert.Equal(t, DefaultLayout().CardMaxLines, s.layout.CardMaxLines)
}

func TestFieldValues(t *testing.T) {
	s := newTestScreen()

	s.SetFieldValue(surface.FieldNoteTitle, "hello")
	s.SetFieldValue(surface.FieldModalText, "line one\nline two")
	s.SetFieldValue("no-such-field", "x")

	assert.Equal(t, "hello", s.FieldValue(surface.FieldNoteTitle))
	assert.Equal(t, "line one\nline two", s.FieldValue(surface.FieldModalText))
	assert.Empty(t, s.FieldValue("no-such-field"))
}

func TestRenderList_IdenticalListKeepsLayout(t *testing.T) {
	s := newTestScreen()
	s.RenderList(twoCards())
	fp := s.Fingerprint()

	hits := mouse.NewHitMap()
	first := s.View(80, 30, hits)
	require.Equal(t, 1, s.layouts)

	s.RenderList(twoCards())
	hits.Clear()
	second := s.View(80, 30, hits)

	assert.Equal(t, fp, s.Fingerprint())
	assert.Equal(t, 1, s.layouts, "unchanged list should reuse the grid")
	assert.Equal(t, first, second)

	changed := twoCards()
	changed[1].Color = "red"
	s.RenderList(changed)
	s.View(80, 30, nil)

	assert.NotEqual(t, fp, s.Fingerprint())
	assert.Equal(t, 2, s.layouts)
}

func TestRenderList_CopiesInput(t *testing.T) {
	s := newTestScreen()
	cards := twoCards()
	s.RenderList(cards)
	cards[0].Title = "mutated"

	assert.Equal(t, "groceries", s.Cards()[0].Title)
}

func TestView_PlaceholderRegion(t *testing.T) {
	s := newTestScreen()
	hits := mouse.NewHitMap()
	out := s.View(80, 20, hits)

	assert.Contains(t, ansi.Strip(out), placeholderText)
	r := findRegion(t, hits, surface.ZonePlaceholder, nil)
	assert.Equal(t, []string{surface.ZonePlaceholder, surface.ZoneNotes}, zonesAt(hits, r.Rect.X, r.Rect.Y))

	s.SetVisibility(surface.ZonePlaceholder, false)
	hits.Clear()
	out = s.View(80, 20, hits)
	assert.NotContains(t, ansi.Strip(out), placeholderText)
}

func TestView_CardRegions(t *testing.T) {
	s := newTestScreen()
	s.SetVisibility(surface.ZonePlaceholder, false)
	s.RenderList(twoCards())

	hits := mouse.NewHitMap()
	out := s.View(80, 30, hits)
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "groceries")
	assert.Contains(t, plain, "call mom")

	card := findRegion(t, hits, surface.ZoneCard, map[string]string{surface.AttrID: "2"})
	assert.Equal(t, []string{surface.ZoneCard, surface.ZoneNotes}, zonesAt(hits, card.Rect.X+1, card.Rect.Y))

	icon := findRegion(t, hits, surface.ZoneColorIcon, map[string]string{surface.AttrID: "2"})
	stack := hits.Stack(icon.Rect.X, icon.Rect.Y)
	require.Len(t, stack, 3)
	assert.Equal(t, surface.ZoneColorIcon, stack[0].ID)
	assert.Equal(t, surface.ZoneCard, stack[1].ID)
	assert.Equal(t, surface.ZoneNotes, stack[2].ID)
	assert.Equal(t, card.Rect.Y+card.Rect.H-1, icon.Rect.Y, "toolbar sits on the card's last row")

	del := findRegion(t, hits, surface.ZoneDeleteIcon, map[string]string{surface.AttrID: "1"})
	assert.Equal(t, []string{surface.ZoneDeleteIcon, surface.ZoneCard, surface.ZoneNotes}, zonesAt(hits, del.Rect.X, del.Rect.Y))
}

func TestView_CardsWrapIntoRows(t *testing.T) {
	s := newTestScreen()
	var cards []surface.Card
	for i := 1; i <= 5; i++ {
		cards = append(cards, surface.Card{ID: i, Text: "note", Color: "white"})
	}
	s.RenderList(cards)

	hits := mouse.NewHitMap()
	s.View(60, 40, hits) // two 28-wide columns

	first := findRegion(t, hits, surface.ZoneCard, map[string]string{surface.AttrID: "1"})
	second := findRegion(t, hits, surface.ZoneCard, map[string]string{surface.AttrID: "2"})
	third := findRegion(t, hits, surface.ZoneCard, map[string]string{surface.AttrID: "3"})

	assert.Equal(t, first.Rect.Y, second.Rect.Y)
	assert.Greater(t, second.Rect.X, first.Rect.X)
	assert.Greater(t, third.Rect.Y, first.Rect.Y)
	assert.Equal(t, first.Rect.X, third.Rect.X)
}

func TestView_LongTextIsClipped(t *testing.T) {
	s := New(Layout{CardWidth: 20, CardMaxLines: 2}, nil)
	s.RenderList([]surface.Card{{ID: 1, Text: strings.Repeat("word ", 40), Color: "white"}})

	hits := mouse.NewHitMap()
	s.View(40, 30, hits)
	card := findRegion(t, hits, surface.ZoneCard, nil)

	// two text lines, a blank line and the toolbar
	assert.Equal(t, 4, card.Rect.H)
}

func TestView_ClosedFormRegions(t *testing.T) {
	s := newTestScreen()
	hits := mouse.NewHitMap()
	s.View(80, 20, hits)

	form := findRegion(t, hits, surface.ZoneForm, nil)
	assert.Equal(t, 3, form.Rect.H)
	text := findRegion(t, hits, surface.FieldNoteText, nil)
	assert.Equal(t, []string{surface.FieldNoteText, surface.ZoneForm}, zonesAt(hits, text.Rect.X, text.Rect.Y))

	for _, r := range hits.Regions() {
		assert.NotEqual(t, surface.ZoneFormClose, r.ID, "close button hidden while collapsed")
	}
}

func TestView_OpenFormRegions(t *testing.T) {
	s := newTestScreen()
	s.SetVisibility(surface.ZoneFormOpen, true)
	hits := mouse.NewHitMap()
	s.View(80, 20, hits)

	closeBtn := findRegion(t, hits, surface.ZoneFormClose, nil)
	zones := zonesAt(hits, closeBtn.Rect.X, closeBtn.Rect.Y)
	assert.Equal(t, surface.ZoneFormClose, zones[0])
	assert.Contains(t, zones, surface.ZoneFormButtons)
	assert.Contains(t, zones, surface.ZoneForm)

	title := findRegion(t, hits, surface.FieldNoteTitle, nil)
	assert.Equal(t, surface.FieldNoteTitle, zonesAt(hits, title.Rect.X, title.Rect.Y)[0])
}

func TestView_ModalCoversBoard(t *testing.T) {
	s := newTestScreen()
	s.RenderList(twoCards())
	s.SetVisibility(surface.ZoneModal, true)
	s.SetFieldValue(surface.FieldModalTitle, "groceries")

	hits := mouse.NewHitMap()
	out := s.View(80, 30, hits)
	assert.Contains(t, ansi.Strip(out), "Edit note")

	card := findRegion(t, hits, surface.ZoneCard, map[string]string{surface.AttrID: "1"})
	assert.Equal(t, []string{surface.ZoneModal}, zonesAt(hits, card.Rect.X, card.Rect.Y),
		"board regions are covered by the modal layer")

	closeBtn := findRegion(t, hits, surface.ZoneModalClose, nil)
	assert.Equal(t, []string{surface.ZoneModalClose, surface.ZoneModal}, zonesAt(hits, closeBtn.Rect.X, closeBtn.Rect.Y))

	text := findRegion(t, hits, surface.FieldModalText, nil)
	assert.Equal(t, surface.FieldModalText, zonesAt(hits, text.Rect.X, text.Rect.Y)[0])
}

func TestView_TooltipAtFloatingPosition(t *testing.T) {
	s := newTestScreen()
	s.RenderList(twoCards())
	s.SetVisibility(surface.ZoneColorTooltip, true)
	s.PositionFloating(surface.ZoneColorTooltip, 4, 10)

	hits := mouse.NewHitMap()
	s.View(80, 30, hits)

	tip := findRegion(t, hits, surface.ZoneColorTooltip, nil)
	assert.Equal(t, 4, tip.Rect.X)
	assert.Equal(t, 10, tip.Rect.Y)
	assert.Equal(t, LayerTooltip, tip.Layer)

	red := findRegion(t, hits, surface.ZoneColorSwatch, map[string]string{surface.AttrColor: "red"})
	stack := hits.Stack(red.Rect.X, red.Rect.Y)
	require.Len(t, stack, 2)
	assert.Equal(t, surface.ZoneColorSwatch, stack[0].ID)
	assert.Equal(t, surface.ZoneColorTooltip, stack[1].ID)
}

func TestView_TooltipFollowsScroll(t *testing.T) {
	s := newTestScreen()
	var cards []surface.Card
	for i := 1; i <= 20; i++ {
		cards = append(cards, surface.Card{ID: i, Text: "note", Color: "white"})
	}
	s.RenderList(cards)
	s.View(30, 10, nil)
	s.ScrollBy(3)
	require.Equal(t, 3, s.Scroll())

	s.SetVisibility(surface.ZoneColorTooltip, true)
	s.PositionFloating(surface.ZoneColorTooltip, 0, 8)

	hits := mouse.NewHitMap()
	s.View(30, 10, hits)
	tip := findRegion(t, hits, surface.ZoneColorTooltip, nil)
	assert.Equal(t, 5, tip.Rect.Y, "document row 8 shows at frame row 5 when scrolled by 3")
}

func TestScrollBy_Clamps(t *testing.T) {
	s := newTestScreen()
	s.View(80, 20, nil)

	s.ScrollBy(-5)
	assert.Equal(t, 0, s.Scroll())

	s.ScrollBy(100)
	assert.Equal(t, 0, s.Scroll(), "content shorter than the frame cannot scroll")
}

func TestFocus_Cycling(t *testing.T) {
	s := newTestScreen()

	assert.Nil(t, s.FocusNext(), "nothing to focus while the form is closed")
	assert.Empty(t, s.Focused())

	s.SetVisibility(surface.ZoneFormOpen, true)
	s.FocusNext()
	assert.Equal(t, surface.FieldNoteTitle, s.Focused())
	s.FocusNext()
	assert.Equal(t, surface.FieldNoteText, s.Focused())
	s.FocusNext()
	assert.Equal(t, surface.FieldNoteTitle, s.Focused())

	s.SetVisibility(surface.ZoneFormOpen, false)
	assert.Empty(t, s.Focused(), "hiding the form blurs its fields")
}

func TestFocusFor(t *testing.T) {
	s := newTestScreen()
	s.SetVisibility(surface.ZoneFormOpen, true)

	s.FocusFor(surface.Origin{{Zone: surface.FieldNoteTitle}, {Zone: surface.ZoneForm}})
	assert.Equal(t, surface.FieldNoteTitle, s.Focused())

	s.FocusFor(surface.Origin{{Zone: surface.ZoneForm}})
	assert.Equal(t, surface.FieldNoteTitle, s.Focused(), "clicks elsewhere in the form keep focus")

	s.SetVisibility(surface.ZoneModal, true)
	s.FocusFor(surface.Origin{{Zone: surface.ZoneModal}})
	assert.Equal(t, surface.FieldModalText, s.Focused(), "modal takes focus when it opens")

	s.SetVisibility(surface.ZoneModal, false)
	s.SetVisibility(surface.ZoneFormOpen, false)
	s.FocusFor(nil)
	assert.Empty(t, s.Focused())
}

func TestUpdate_TypesIntoFocusedField(t *testing.T) {
	s := newTestScreen()
	s.SetVisibility(surface.ZoneFormOpen, true)
	s.Focus(surface.FieldNoteTitle)

	for _, r := range "hi" {
		s.Update(keyRunes(r))
	}
	assert.Equal(t, "hi", s.FieldValue(surface.FieldNoteTitle))

	s.Blur()
	s.Update(keyRunes('x'))
	assert.Equal(t, "hi", s.FieldValue(surface.FieldNoteTitle), "keys are dropped without focus")
}

func TestEventSource(t *testing.T) {
	s := newTestScreen()
	var got []surface.Category
	s.OnEvent(surface.Click, func(ev surface.Event) { got = append(got, ev.Category) })

	assert.True(t, s.Emit(surface.Event{Category: surface.Click}))
	assert.False(t, s.Emit(surface.Event{Category: surface.Submit}))
	assert.Equal(t, []surface.Category{surface.Click}, got)
}

func TestView_MarkdownPreview(t *testing.T) {
	l := DefaultLayout()
	l.MarkdownPreview = true
	s := New(l, nil)
	s.SetVisibility(surface.ZoneModal, true)
	s.SetFieldValue(surface.FieldModalText, "# Heading\n\nsome *text*")

	out := ansi.Strip(s.View(80, 40, nil))
	assert.Contains(t, out, "Preview")
	assert.Contains(t, out, "Heading")
}
