package keymap

// Contexts, most specific first. Lookups fall back to ContextGlobal.
const (
	ContextGlobal = "global"
	ContextBoard  = "board"
	ContextForm   = "form"
	// ContextFormTitle is active while the form's title field has focus.
	ContextFormTitle = "form-title"
	ContextModal     = "modal"
)

// Command IDs.
const (
	CmdQuit         = "quit"
	CmdNewNote      = "new-note"
	CmdSubmit       = "submit"
	CmdNextField    = "next-field"
	CmdClose        = "close"
	CmdCopyNote     = "copy-note"
	CmdScrollUp     = "scroll-up"
	CmdScrollDown   = "scroll-down"
	CmdCycleTheme   = "cycle-theme"
	CmdToggleFooter = "toggle-footer"
)

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextGlobal, Help: "quit"},

		// Board context (no editor open)
		{Key: "q", Command: CmdQuit, Context: ContextBoard, Help: "quit"},
		{Key: "n", Command: CmdNewNote, Context: ContextBoard, Help: "new note"},
		{Key: "k", Command: CmdScrollUp, Context: ContextBoard, Help: "scroll up"},
		{Key: "up", Command: CmdScrollUp, Context: ContextBoard},
		{Key: "j", Command: CmdScrollDown, Context: ContextBoard, Help: "scroll down"},
		{Key: "down", Command: CmdScrollDown, Context: ContextBoard},
		{Key: "t", Command: CmdCycleTheme, Context: ContextBoard, Help: "theme"},
		{Key: "ctrl+h", Command: CmdToggleFooter, Context: ContextBoard},

		// Form context (note form expanded)
		{Key: "ctrl+s", Command: CmdSubmit, Context: ContextForm, Help: "add"},
		{Key: "tab", Command: CmdNextField, Context: ContextForm, Help: "next field"},
		{Key: "esc", Command: CmdClose, Context: ContextForm, Help: "close"},

		{Key: "enter", Command: CmdSubmit, Context: ContextFormTitle},

		// Modal context (detail editor)
		{Key: "tab", Command: CmdNextField, Context: ContextModal, Help: "next field"},
		{Key: "esc", Command: CmdClose, Context: ContextModal, Help: "save & close"},
		{Key: "ctrl+y", Command: CmdCopyNote, Context: ContextModal, Help: "copy"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
