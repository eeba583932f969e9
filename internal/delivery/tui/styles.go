package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/aliskhannn/kalvium-quiz/internal/domain/entities"
)

var (
	colorDarkBg    = lipgloss.Color("#333333")
	colorLightBg   = lipgloss.Color("#FFFFFF")
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorBlack     = lipgloss.Color("#000000")
	colorRed       = lipgloss.Color("#FF0000")
	colorBlue      = lipgloss.Color("#0000FF")
	colorOption    = lipgloss.Color("#888888")
	colorOptionSel = lipgloss.Color("#777777")
	colorPanel     = lipgloss.Color("#F2F2F2")
)

// Styles is the set of styles for one presentation mode.
type Styles struct {
	Header      lipgloss.Style
	Toggle      lipgloss.Style
	Panel       lipgloss.Style
	Progress    lipgloss.Style
	Question    lipgloss.Style
	Highlighted lipgloss.Style
	Option      lipgloss.Style
	OptionSel   lipgloss.Style
	Result      lipgloss.Style
	Restart     lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles returns the styles for the active mode of theme.
func NewStyles(theme *entities.Theme) Styles {
	var fg, bg color.Color = colorWhite, colorDarkBg
	if !theme.IsDark() {
		fg, bg = colorBlack, colorLightBg
	}

	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(fg).Background(bg).Padding(0, 1),
		Toggle:      lipgloss.NewStyle().Foreground(colorWhite).Background(colorBlack).Padding(0, 2),
		Panel:       lipgloss.NewStyle().Background(colorPanel).Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Progress:    lipgloss.NewStyle().Foreground(colorOption),
		Question:    lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		Highlighted: lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		Option:      lipgloss.NewStyle().Foreground(colorWhite).Background(colorOption).Padding(0, 2),
		OptionSel:   lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorOptionSel).Padding(0, 2),
		Result:      lipgloss.NewStyle().Bold(true).Foreground(colorBlack).Background(colorWhite).Padding(1, 2),
		Restart:     lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorRed).Padding(0, 2),
		Help:        lipgloss.NewStyle().Foreground(fg).Faint(true),
	}
}
