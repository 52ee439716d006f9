// Package controller mediates between surface events and the note store.
//
// One delegated handler per event category classifies the event origin
// against zones and dispatches to store mutations or visibility toggles.
// Cards are rendered dynamically, so classification never relies on which
// element a listener was attached to, only on the zones the origin sits in.
package controller

import (
	"log/slog"

	"github.com/marcus/corkboard/internal/notes"
	"github.com/marcus/corkboard/internal/surface"
)

// DefaultTooltipMargin is the number of rows the color tooltip is lifted
// above its icon.
const DefaultTooltipMargin = 1

// SelectionState is the transient UI state shared between handlers.
type SelectionState struct {
	ActiveNoteID int // 0 = no selection
	Title        string
	Text         string

	FormOpen  bool
	ModalOpen bool

	TooltipOpen     bool
	TooltipTargetID int // 0 = none
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTooltipMargin sets how far above the color icon the tooltip opens.
// The tooltip is anchored at the icon's row plus the scroll offset, minus
// rows, in document coordinates (see the tooltip position entry in DESIGN.md).
func WithTooltipMargin(rows int) Option {
	return func(c *Controller) { c.tooltipMargin = rows }
}

// Controller is the interaction controller for the note board.
type Controller struct {
	store         *notes.Store
	r             surface.Renderer
	logger        *slog.Logger
	tooltipMargin int

	state SelectionState
}

// New creates a Controller. The form starts closed.
func New(store *notes.Store, r surface.Renderer, opts ...Option) *Controller {
	c := &Controller{
		store:         store,
		r:             r,
		logger:        slog.New(slog.DiscardHandler),
		tooltipMargin: DefaultTooltipMargin,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bind subscribes the controller to every event category of src.
func (c *Controller) Bind(src surface.EventSource) {
	for _, cat := range []surface.Category{
		surface.Click,
		surface.HoverStart,
		surface.HoverEnd,
		surface.Submit,
	} {
		src.OnEvent(cat, c.Handle)
	}
}

// SetTooltipMargin changes the tooltip margin for tooltips opened afterwards.
func (c *Controller) SetTooltipMargin(rows int) { c.tooltipMargin = rows }

// State returns a copy of the current selection state.
func (c *Controller) State() SelectionState { return c.state }

// Handle is the single delegated entry point for all event categories.
func (c *Controller) Handle(ev surface.Event) {
	c.logger.Debug("event", "category", ev.Category, "zones", ev.Origin.Zones())

	switch ev.Category {
	case surface.Click:
		c.handleClick(ev)
	case surface.HoverStart:
		c.openTooltip(ev)
	case surface.HoverEnd:
		c.closeTooltip(ev)
	case surface.Submit:
		c.handleSubmit(ev)
	}
}

// handleClick runs element-level actions first, then every body branch in
// order. Body branches are independent guards: one click may trigger more
// than one of them.
func (c *Controller) handleClick(ev surface.Event) {
	o := ev.Origin

	if o.Within(surface.ZoneFormClose) {
		// Close button swallows the click.
		c.closeForm()
		return
	}
	if o.Within(surface.ZoneColorTooltip) {
		c.applySwatch(o)
	}
	if o.Within(surface.ZoneModalClose) {
		c.closeModal()
	}

	c.handleFormClick(o)
	c.selectNote(o)
	c.openModal(o)
	c.deleteNote(o)
}

func (c *Controller) handleFormClick(o surface.Origin) {
	if o.Within(surface.ZoneForm) {
		c.openForm()
		return
	}

	title, text := c.formValues()
	if title != "" || text != "" {
		c.addNote(title, text)
		return
	}
	c.closeForm()
}

func (c *Controller) handleSubmit(ev surface.Event) {
	if !ev.Origin.Within(surface.ZoneForm) {
		return
	}
	title, text := c.formValues()
	if title == "" && text == "" {
		c.logger.Debug("submit ignored: empty note")
		return
	}
	c.addNote(title, text)
}

func (c *Controller) formValues() (string, string) {
	return c.r.FieldValue(surface.FieldNoteTitle), c.r.FieldValue(surface.FieldNoteText)
}

func (c *Controller) addNote(title, text string) {
	n := c.store.Create(title, text)
	c.logger.Debug("note created", "id", n.ID)
	c.Redraw()
	c.closeForm()
}

func (c *Controller) openForm() {
	c.state.FormOpen = true
	c.r.SetVisibility(surface.ZoneFormOpen, true)
}

func (c *Controller) closeForm() {
	c.state.FormOpen = false
	c.r.SetVisibility(surface.ZoneFormOpen, false)
	c.r.SetFieldValue(surface.FieldNoteTitle, "")
	c.r.SetFieldValue(surface.FieldNoteText, "")
}

// selectNote stages the clicked card as the active selection.
func (c *Controller) selectNote(o surface.Origin) {
	card, ok := o.Closest(surface.ZoneCard)
	if !ok || o.Within(surface.ZoneDeleteIcon) {
		return
	}
	id, ok := surface.Origin{card}.IntAttr(surface.AttrID)
	if !ok {
		return
	}
	n, ok := c.store.Get(id)
	if !ok {
		return
	}
	c.state.ActiveNoteID = n.ID
	c.state.Title = n.Title
	c.state.Text = n.Text
}

// openModal toggles the detail-edit modal for clicks on a card body.
func (c *Controller) openModal(o surface.Origin) {
	if o.Within(surface.ZoneDeleteIcon) || o.Within(surface.ZoneColorIcon) {
		return
	}
	if !o.Within(surface.ZoneCard) {
		return
	}
	c.state.ModalOpen = !c.state.ModalOpen
	c.r.SetVisibility(surface.ZoneModal, c.state.ModalOpen)
	c.r.SetFieldValue(surface.FieldModalTitle, c.state.Title)
	c.r.SetFieldValue(surface.FieldModalText, c.state.Text)
}

// closeModal commits the modal fields to the active note and closes it.
func (c *Controller) closeModal() {
	if !c.state.ModalOpen {
		return
	}
	title := c.r.FieldValue(surface.FieldModalTitle)
	text := c.r.FieldValue(surface.FieldModalText)
	c.store.EditText(c.state.ActiveNoteID, title, text)
	c.state.Title = title
	c.state.Text = text
	c.Redraw()

	c.state.ModalOpen = false
	c.r.SetVisibility(surface.ZoneModal, false)
}

func (c *Controller) deleteNote(o surface.Origin) {
	icon, ok := o.Closest(surface.ZoneDeleteIcon)
	if !ok {
		return
	}
	id, ok := surface.Origin{icon}.IntAttr(surface.AttrID)
	if !ok {
		return
	}
	c.store.Delete(id)
	c.logger.Debug("note deleted", "id", id)
	if c.state.ActiveNoteID == id {
		c.state.ActiveNoteID = 0
	}
	if c.state.TooltipTargetID == id {
		c.state.TooltipTargetID = 0
	}
	c.Redraw()
}

// applySwatch recolors the tooltip's target note from a swatch click.
func (c *Controller) applySwatch(o surface.Origin) {
	if !c.state.TooltipOpen {
		return
	}
	color, ok := o.Attr(surface.AttrColor)
	if !ok || color == "" {
		return
	}
	if !notes.IsPaletteColor(color) {
		c.logger.Debug("swatch ignored: unknown color", "color", color)
		return
	}
	id := c.state.TooltipTargetID
	if id == 0 {
		id = c.state.ActiveNoteID
	}
	c.store.EditColor(id, color)
	c.Redraw()
}

func (c *Controller) openTooltip(ev surface.Event) {
	o := ev.Origin
	if o.Within(surface.ZoneColorTooltip) {
		c.showTooltip()
		return
	}
	if !o.Matches(surface.ZoneColorIcon) {
		return
	}
	icon := o[0]
	id, _ := surface.Origin{icon}.IntAttr(surface.AttrID)
	c.state.TooltipTargetID = id
	x := icon.Bounds.X
	y := icon.Bounds.Y + ev.Scroll - c.tooltipMargin
	c.r.PositionFloating(surface.ZoneColorTooltip, x, y)
	c.showTooltip()
}

func (c *Controller) showTooltip() {
	c.state.TooltipOpen = true
	c.r.SetVisibility(surface.ZoneColorTooltip, true)
}

func (c *Controller) closeTooltip(ev surface.Event) {
	o := ev.Origin
	if !o.Matches(surface.ZoneColorIcon) && !o.Within(surface.ZoneColorTooltip) {
		return
	}
	c.state.TooltipOpen = false
	c.r.SetVisibility(surface.ZoneColorTooltip, false)
}
