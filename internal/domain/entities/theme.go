package entities

// ThemeMode names one of the two presentation modes.
type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark-theme"
	ThemeLight ThemeMode = "light-theme"
)

// Theme holds the dark/light presentation toggle.
// It lives independently of any quiz attempt.
type Theme struct {
	dark bool
}

// NewTheme creates a theme starting in dark mode when dark is true.
func NewTheme(dark bool) *Theme {
	return &Theme{dark: dark}
}

// Toggle flips between dark and light mode.
func (t *Theme) Toggle() {
	t.dark = !t.dark
}

// IsDark reports whether dark mode is active.
func (t *Theme) IsDark() bool {
	return t.dark
}

// Mode returns the active presentation mode.
func (t *Theme) Mode() ThemeMode {
	if t.dark {
		return ThemeDark
	}
	return ThemeLight
}

// ToggleLabel returns the caption of the control that switches modes.
func (t *Theme) ToggleLabel() string {
	if t.dark {
		return "Light Mode"
	}
	return "Dark Mode"
}
