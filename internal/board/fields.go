package board

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	titleCharLimit = 120
	textCharLimit  = 4000
)

// field is the common surface of the single-line and multi-line editors.
type field interface {
	Value() string
	SetValue(string)
	Focus() tea.Cmd
	Blur()
	Focused() bool
	View() string
	Update(tea.Msg) tea.Cmd
	SetWidth(int)
}

type inputField struct {
	m textinput.Model
}

func newInputField(placeholder string) *inputField {
	m := textinput.New()
	m.Prompt = ""
	m.Placeholder = placeholder
	m.CharLimit = titleCharLimit
	return &inputField{m: m}
}

func (f *inputField) Value() string     { return f.m.Value() }
func (f *inputField) SetValue(v string) { f.m.SetValue(v) }
func (f *inputField) Focus() tea.Cmd    { return f.m.Focus() }
func (f *inputField) Blur()             { f.m.Blur() }
func (f *inputField) Focused() bool     { return f.m.Focused() }
func (f *inputField) View() string      { return f.m.View() }

// SetWidth leaves one cell for the cursor.
func (f *inputField) SetWidth(w int) { f.m.Width = max(w-1, 1) }

func (f *inputField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.m, cmd = f.m.Update(msg)
	return cmd
}

type areaField struct {
	m textarea.Model
}

func newAreaField(placeholder string, height int) *areaField {
	m := textarea.New()
	m.Prompt = ""
	m.ShowLineNumbers = false
	m.Placeholder = placeholder
	m.CharLimit = textCharLimit
	m.FocusedStyle.CursorLine = lipgloss.NewStyle()
	m.SetHeight(height)
	return &areaField{m: m}
}

func (f *areaField) Value() string     { return f.m.Value() }
func (f *areaField) SetValue(v string) { f.m.SetValue(v) }
func (f *areaField) Focus() tea.Cmd    { return f.m.Focus() }
func (f *areaField) Blur()             { f.m.Blur() }
func (f *areaField) Focused() bool     { return f.m.Focused() }
func (f *areaField) View() string      { return f.m.View() }
func (f *areaField) SetWidth(w int)    { f.m.SetWidth(w) }

func (f *areaField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.m, cmd = f.m.Update(msg)
	return cmd
}
