package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects access to themeRegistry and currentTheme for thread safety
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors
type ColorPalette struct {
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
	Success string `json:"success"`
	Error   string `json:"error"`

	TextPrimary string `json:"textPrimary"`
	TextMuted   string `json:"textMuted"`
	CardText    string `json:"cardText"`

	BgPrimary  string `json:"bgPrimary"`
	BgTertiary string `json:"bgTertiary"`

	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`

	ToastSuccessText string `json:"toastSuccessText"`
	ToastErrorText   string `json:"toastErrorText"`

	MarkdownTheme string `json:"markdownTheme"` // Glamour theme name
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			Primary:          "#7C3AED",
			Accent:           "#F59E0B",
			Success:          "#10B981",
			Error:            "#EF4444",
			TextPrimary:      "#F9FAFB",
			TextMuted:        "#6B7280",
			CardText:         "#202124",
			BgPrimary:        "#111827",
			BgTertiary:       "#374151",
			BorderNormal:     "#374151",
			BorderActive:     "#7C3AED",
			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",
			MarkdownTheme:    "dark",
		},
	}

	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary:          "#5B21B6",
			Accent:           "#B45309",
			Success:          "#047857",
			Error:            "#B91C1C",
			TextPrimary:      "#111827",
			TextMuted:        "#6B7280",
			CardText:         "#202124",
			BgPrimary:        "#F9FAFB",
			BgTertiary:       "#E5E7EB",
			BorderNormal:     "#D1D5DB",
			BorderActive:     "#5B21B6",
			ToastSuccessText: "#FFFFFF",
			ToastErrorText:   "#FFFFFF",
			MarkdownTheme:    "light",
		},
	}
)

var themeRegistry = map[string]Theme{
	"default": DefaultTheme,
	"light":   LightTheme,
}

var currentTheme = "default"

// IsValidHexColor checks if a string is a valid hex color code
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme checks if a theme name is registered
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, falling back to default
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return DefaultTheme
}

// GetCurrentThemeName returns the name of the active theme
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the registered theme names, sorted
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTheme applies a theme by name, updating all style variables
func ApplyTheme(name string) {
	ApplyThemeWithOverrides(name, nil)
}

// ApplyThemeWithOverrides applies a theme with color overrides from config.
// Overrides with invalid hex values are skipped.
func ApplyThemeWithOverrides(name string, overrides map[string]string) {
	theme := GetTheme(name)
	for key, value := range overrides {
		applySingleOverride(&theme.Colors, key, value)
	}

	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

func applySingleOverride(palette *ColorPalette, key, value string) {
	if key == "markdownTheme" {
		palette.MarkdownTheme = value
		return
	}
	if !IsValidHexColor(value) {
		return
	}
	switch key {
	case "primary":
		palette.Primary = value
	case "accent":
		palette.Accent = value
	case "success":
		palette.Success = value
	case "error":
		palette.Error = value
	case "textPrimary":
		palette.TextPrimary = value
	case "textMuted":
		palette.TextMuted = value
	case "cardText":
		palette.CardText = value
	case "bgPrimary":
		palette.BgPrimary = value
	case "bgTertiary":
		palette.BgTertiary = value
	case "borderNormal":
		palette.BorderNormal = value
	case "borderActive":
		palette.BorderActive = value
	case "toastSuccessText":
		palette.ToastSuccessText = value
	case "toastErrorText":
		palette.ToastErrorText = value
	}
}

// ApplyThemeColors updates the color variables and rebuilds styles.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors

	Primary = lipgloss.Color(c.Primary)
	Accent = lipgloss.Color(c.Accent)
	Success = lipgloss.Color(c.Success)
	Error = lipgloss.Color(c.Error)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextMuted = lipgloss.Color(c.TextMuted)
	CardText = lipgloss.Color(c.CardText)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgTertiary = lipgloss.Color(c.BgTertiary)

	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)

	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)
	ToastErrorTextColor = lipgloss.Color(c.ToastErrorText)

	CurrentMarkdownTheme = c.MarkdownTheme

	rebuildStyles()
}

// rebuildStyles recreates all lipgloss styles with current colors
func rebuildStyles() {
	FormActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)

	FormInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Background(BgPrimary).
		Padding(1, 2)

	Tooltip = lipgloss.NewStyle().
		Background(BgTertiary)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgTertiary).
		Padding(0, 1)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(ToastSuccessTextColor).
		Bold(true).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(ToastErrorTextColor).
		Bold(true).
		Padding(0, 1)
}
