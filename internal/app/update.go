package app

import (
	"slices"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/corkboard/internal/config"
	"github.com/marcus/corkboard/internal/keymap"
	"github.com/marcus/corkboard/internal/mouse"
	"github.com/marcus/corkboard/internal/msg"
	"github.com/marcus/corkboard/internal/state"
	"github.com/marcus/corkboard/internal/styles"
	"github.com/marcus/corkboard/internal/surface"
)

const (
	toastDuration = 2 * time.Second
	keyScrollStep = 3
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch teaMsg := teaMsg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(teaMsg)

	case tea.MouseMsg:
		return m.handleMouse(teaMsg)

	case tea.WindowSizeMsg:
		m.width = teaMsg.Width
		m.height = teaMsg.Height
		m.ready = true
		return m, nil

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case msg.ToastMsg:
		if teaMsg.IsError {
			m.ShowErrorToast(teaMsg.Message, teaMsg.Duration)
		} else {
			m.ShowToast(teaMsg.Message, teaMsg.Duration)
		}
		return m, nil

	case ConfigChangedMsg:
		m.reloadConfig()
		return m, waitForConfigChange(m.cfgChanges)
	}

	// Cursor blinks and other field messages.
	return m, m.screen.Update(teaMsg)
}

// handleMouse converts a terminal mouse message into surface events.
// Hit regions are in board coordinates, below the header.
func (m Model) handleMouse(mm tea.MouseMsg) (tea.Model, tea.Cmd) {
	mm.Y -= headerHeight
	action := m.mouse.HandleMouse(mm)

	switch action.Type {
	case mouse.ActionClick:
		origin := originFrom(m.mouse.HitMap.Stack(action.X, action.Y))
		m.screen.Emit(surface.Event{
			Category: surface.Click,
			Origin:   origin,
			Scroll:   m.screen.Scroll(),
		})
		return m, m.screen.FocusFor(origin)

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		m.screen.ScrollBy(action.Delta)
		return m, nil

	case mouse.ActionHover:
		origin := originFrom(m.mouse.HitMap.Stack(action.X, action.Y))
		m.moveHover(origin)
		return m, nil
	}
	return m, nil
}

// moveHover emits hover transitions when the innermost element under the
// pointer changes. The old element ends before the new one starts.
func (m *Model) moveHover(origin surface.Origin) {
	if sameElement(m.hover, origin) {
		return
	}
	scroll := m.screen.Scroll()
	if len(m.hover) > 0 {
		m.screen.Emit(surface.Event{Category: surface.HoverEnd, Origin: m.hover, Scroll: scroll})
	}
	if len(origin) > 0 {
		m.screen.Emit(surface.Event{Category: surface.HoverStart, Origin: origin, Scroll: scroll})
	}
	m.hover = origin
}

func sameElement(a, b surface.Origin) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	return a[0].Zone == b[0].Zone && a[0].Bounds == b[0].Bounds
}

// originFrom turns a hit stack, topmost first, into an event origin.
func originFrom(stack []mouse.Region) surface.Origin {
	if len(stack) == 0 {
		return nil
	}
	origin := make(surface.Origin, 0, len(stack))
	for _, r := range stack {
		attrs, _ := r.Data.(map[string]string)
		origin = append(origin, surface.Node{
			Zone:  r.ID,
			Attrs: attrs,
			Bounds: surface.Bounds{
				X: r.Rect.X, Y: r.Rect.Y, W: r.Rect.W, H: r.Rect.H,
			},
		})
	}
	return origin
}

// keyContexts returns the active keymap contexts, most specific first.
func (m Model) keyContexts() []string {
	switch {
	case m.screen.Visible(surface.ZoneModal):
		return []string{keymap.ContextModal}
	case m.screen.Visible(surface.ZoneFormOpen):
		if m.screen.Focused() == surface.FieldNoteTitle {
			return []string{keymap.ContextFormTitle, keymap.ContextForm}
		}
		return []string{keymap.ContextForm}
	}
	return []string{keymap.ContextBoard}
}

// handleKeyMsg runs bound commands and sends everything else to the
// focused field.
func (m Model) handleKeyMsg(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keymap.Lookup(km.String(), m.keyContexts()...); ok {
		return m.runCommand(cmd)
	}
	return m, m.screen.Update(km)
}

func (m Model) runCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case keymap.CmdQuit:
		return m, tea.Quit

	case keymap.CmdNewNote:
		return m, m.click(surface.Origin{
			{Zone: surface.FieldNoteText},
			{Zone: surface.ZoneForm},
		})

	case keymap.CmdSubmit:
		m.screen.Emit(surface.Event{
			Category: surface.Submit,
			Origin:   surface.Origin{{Zone: surface.ZoneForm}},
			Scroll:   m.screen.Scroll(),
		})
		return m, m.screen.FocusFor(nil)

	case keymap.CmdNextField:
		return m, m.screen.FocusNext()

	case keymap.CmdClose:
		if m.screen.Visible(surface.ZoneModal) {
			return m, m.click(surface.Origin{
				{Zone: surface.ZoneModalClose},
				{Zone: surface.ZoneModal},
			})
		}
		return m, m.click(surface.Origin{
			{Zone: surface.ZoneFormClose},
			{Zone: surface.ZoneFormButtons},
			{Zone: surface.ZoneForm},
		})

	case keymap.CmdCopyNote:
		return m, copyToClipboard(m.screen.FieldValue(surface.FieldModalText))

	case keymap.CmdScrollUp:
		m.screen.ScrollBy(-keyScrollStep)
		return m, nil

	case keymap.CmdScrollDown:
		m.screen.ScrollBy(keyScrollStep)
		return m, nil

	case keymap.CmdCycleTheme:
		return m, m.cycleTheme()

	case keymap.CmdToggleFooter:
		m.showFooter = !m.showFooter
		if err := state.SetShowFooter(m.showFooter); err != nil {
			m.logger.Warn("save footer preference failed", "err", err)
		}
		return m, nil
	}
	return m, nil
}

// click emits a synthetic click and moves focus the way a real one would.
func (m Model) click(origin surface.Origin) tea.Cmd {
	m.screen.Emit(surface.Event{
		Category: surface.Click,
		Origin:   origin,
		Scroll:   m.screen.Scroll(),
	})
	return m.screen.FocusFor(origin)
}

func copyToClipboard(text string) tea.Cmd {
	if text == "" {
		return msg.ShowToast("Nothing to copy", toastDuration)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return msg.ShowErrorToast("Copy failed: "+err.Error(), toastDuration)
	}
	return msg.ShowToast("Copied note", toastDuration)
}

// cycleTheme switches to the next built-in theme and persists the choice.
func (m *Model) cycleTheme() tea.Cmd {
	themes := styles.ListThemes()
	i := slices.Index(themes, styles.GetCurrentThemeName())
	next := themes[(i+1)%len(themes)]

	styles.ApplyThemeWithOverrides(next, m.cfg.UI.Theme.Overrides)
	m.cfg.UI.Theme.Name = next

	if m.cfgPath != "" {
		if err := config.SaveTheme(m.cfgPath, next); err != nil {
			m.logger.Warn("save theme failed", "path", m.cfgPath, "err", err)
			return msg.ShowErrorToast("Theme not saved: "+err.Error(), toastDuration)
		}
	}
	return msg.ShowToast("Theme: "+next, toastDuration)
}

// reloadConfig re-reads the config file and applies it. A broken file
// keeps the current settings.
func (m *Model) reloadConfig() {
	cfg, err := config.LoadFrom(m.cfgPath)
	if err != nil {
		m.logger.Warn("config reload failed", "err", err)
		m.ShowErrorToast("Config error: "+err.Error(), 4*time.Second)
		return
	}
	m.applyConfig(cfg)
	m.ShowToast("Config reloaded", toastDuration)
}
