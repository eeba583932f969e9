package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aliskhannn/kalvium-quiz/internal/domain/entities"
)

// RenderHeader renders the title bar with the theme toggle caption.
func RenderHeader(title string, theme *entities.Theme) string {
	st := NewStyles(theme)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		st.Header.Render(title),
		"  ",
		st.Toggle.Render(fmt.Sprintf("[t] %s", theme.ToggleLabel())),
	)
}

// RenderQuestion renders the active question with its options.
// cursor is the position of the option under the selection marker.
func RenderQuestion(q entities.Question, state entities.QuizState, progress string, cursor int, theme *entities.Theme) string {
	st := NewStyles(theme)

	text := st.Question.Render(q.Text)
	if state.Highlighted {
		text = st.Highlighted.Render(q.Text)
	}

	var b strings.Builder
	b.WriteString(st.Progress.Render(progress))
	b.WriteString("\n\n")
	b.WriteString(text)
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("%d) %s", i+1, opt.Text)
		if i == cursor {
			b.WriteString("▸ " + st.OptionSel.Render(line))
		} else {
			b.WriteString("  " + st.Option.Render(line))
		}
		b.WriteString("\n")
	}

	return st.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderResult renders the final results screen.
func RenderResult(result entities.Result, theme *entities.Theme) string {
	st := NewStyles(theme)

	return lipgloss.JoinVertical(lipgloss.Center,
		st.Header.Render("Final Results"),
		"",
		st.Result.Render(result.String()),
		"",
		st.Restart.Render("[r] Restart Quiz"),
	)
}

// RenderHelp renders the key bindings for the current screen.
func RenderHelp(completed bool, theme *entities.Theme) string {
	st := NewStyles(theme)
	if completed {
		return st.Help.Render("r restart • t theme • q quit")
	}
	return st.Help.Render("1-9 answer • ↑/↓ move • enter answer • h highlight • u remove highlight • t theme • r restart • q quit")
}
