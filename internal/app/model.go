// Package app is the Bubble Tea program for the note board: it owns the
// store, the screen and the controller, and turns terminal input into
// surface events.
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/corkboard/internal/board"
	"github.com/marcus/corkboard/internal/config"
	"github.com/marcus/corkboard/internal/controller"
	"github.com/marcus/corkboard/internal/keymap"
	"github.com/marcus/corkboard/internal/mouse"
	"github.com/marcus/corkboard/internal/notes"
	"github.com/marcus/corkboard/internal/state"
	"github.com/marcus/corkboard/internal/styles"
	"github.com/marcus/corkboard/internal/surface"
)

const (
	headerHeight = 2 // title row + spacing
	footerHeight = 1
	minWidth     = 40
	minHeight    = 10
)

// Option configures a Model.
type Option func(*Model)

// WithConfigPath sets the file config reloads and theme changes go to.
func WithConfigPath(path string) Option {
	return func(m *Model) { m.cfgPath = path }
}

// WithConfigChanges subscribes the model to config file notifications.
func WithConfigChanges(ch <-chan struct{}) Option {
	return func(m *Model) { m.cfgChanges = ch }
}

// WithLogger sets the logger passed down to the screen and controller.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model is the top-level application state.
type Model struct {
	cfg        *config.Config
	cfgPath    string
	cfgChanges <-chan struct{}
	logger     *slog.Logger

	keymap *keymap.Registry
	store  *notes.Store
	screen *board.Screen
	ctrl   *controller.Controller
	mouse  *mouse.Handler

	width, height int
	ready         bool
	showFooter    bool

	// Origin under the pointer at the last motion event.
	hover surface.Origin

	// Status/toast messages
	statusMsg     string
	statusIsError bool
	statusExpiry  time.Time
}

// New creates the application model from cfg.
func New(cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
		store:  notes.NewStore(),
		mouse:  mouse.NewHandler(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.screen = board.New(layoutFromConfig(cfg), m.logger)
	m.ctrl = controller.New(m.store, m.screen,
		controller.WithLogger(m.logger),
		controller.WithTooltipMargin(cfg.UI.TooltipMargin),
	)
	m.ctrl.Bind(m.screen)
	m.applyConfig(cfg)
	m.ctrl.Redraw()
	return m
}

func layoutFromConfig(cfg *config.Config) board.Layout {
	return board.Layout{
		CardWidth:       cfg.UI.CardWidth,
		CardMaxLines:    cfg.UI.CardMaxLines,
		MarkdownPreview: cfg.UI.MarkdownPreview,
	}
}

// applyConfig pushes cfg into every component. A remembered footer toggle
// wins over ui.showFooter.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.showFooter = cfg.UI.ShowFooter
	if show, ok := state.GetShowFooter(); ok {
		m.showFooter = show
	}
	m.keymap = keymap.NewDefaultRegistry(cfg.Keymap.Overrides)
	m.screen.SetLayout(layoutFromConfig(cfg))
	m.ctrl.SetTooltipMargin(cfg.UI.TooltipMargin)

	if !styles.IsValidTheme(cfg.UI.Theme.Name) {
		m.logger.Warn("unknown theme, using default", "theme", cfg.UI.Theme.Name)
	}
	styles.ApplyThemeWithOverrides(cfg.UI.Theme.Name, cfg.UI.Theme.Overrides)
}

// Init starts the toast clock and the config watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForConfigChange(m.cfgChanges))
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration) {
	m.statusMsg = msg
	m.statusIsError = false
	m.statusExpiry = time.Now().Add(duration)
}

// ShowErrorToast displays a temporary error message.
func (m *Model) ShowErrorToast(msg string, duration time.Duration) {
	m.ShowToast(msg, duration)
	m.statusIsError = true
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// footerVisible reports whether the footer row is drawn. Toasts show even
// when the footer is toggled off.
func (m Model) footerVisible() bool {
	return m.showFooter || m.statusMsg != ""
}

// contentHeight is the number of rows the board gets.
func (m Model) contentHeight() int {
	h := m.height - headerHeight
	if m.footerVisible() {
		h -= footerHeight
	}
	return max(h, 1)
}
