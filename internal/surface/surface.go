// Package surface defines the contract between the note board core and the
// screen that draws it. The core issues declarative instructions through
// Renderer and receives input as Events whose Origin describes the zones
// under the pointer.
package surface

// Zone identifiers. A zone is a structurally identifiable region of the
// rendered board used to classify where an event came from.
const (
	ZoneForm         = "form"
	ZoneFormButtons  = "form-buttons"
	ZoneFormClose    = "form-close-button"
	ZoneNotes        = "notes"
	ZonePlaceholder  = "placeholder"
	ZoneCard         = "note"
	ZoneColorIcon    = "toolbar-color"
	ZoneDeleteIcon   = "toolbar-delete"
	ZoneColorTooltip = "color-tooltip"
	ZoneColorSwatch  = "color-swatch"
	ZoneModal        = "modal"
	ZoneModalClose   = "modal-close-button"
	ZoneFormOpen     = "form-open" // expanded form: title field and buttons
)

// Field identifiers. Fields are also zones so clicks on them classify.
const (
	FieldNoteTitle  = "note-title"
	FieldNoteText   = "note-text"
	FieldModalTitle = "modal-title"
	FieldModalText  = "modal-text"
)

// Attribute names carried by zones.
const (
	AttrID    = "id"
	AttrColor = "color"
)

// Card is the projection of one note handed to the renderer.
type Card struct {
	ID    int
	Title string
	Text  string
	Color string
}

// Renderer is the declarative surface the core draws through.
type Renderer interface {
	SetVisibility(zone string, visible bool)
	SetFieldValue(field, value string)
	FieldValue(field string) string
	// RenderList replaces the card list wholesale.
	RenderList(cards []Card)
	PositionFloating(zone string, x, y int)
}
