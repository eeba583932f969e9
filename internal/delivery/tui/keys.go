package tui

// Key bindings.
const (
	keyUp              = "up"
	keyUpAlt           = "k"
	keyDown            = "down"
	keyDownAlt         = "j"
	keyEnter           = "enter"
	keyHighlight       = "h"
	keyRemoveHighlight = "u"
	keyToggleTheme     = "t"
	keyRestart         = "r"
	keyQuit            = "q"
	keyInterrupt       = "ctrl+c"
)

// optionNumber maps "1".."9" to a zero-based option position.
func optionNumber(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}
