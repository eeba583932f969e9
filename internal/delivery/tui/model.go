package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/aliskhannn/kalvium-quiz/internal/domain/entities"
)

// Model is the Bubble Tea model of the quiz screen.
type Model struct {
	engine QuizEngine
	theme  *entities.Theme
	title  string
	logger *zap.Logger

	cursor   int
	lastErr  error
	quitting bool
}

// NewModel creates a model driving engine and rendering with theme.
func NewModel(engine QuizEngine, theme *entities.Theme, title string, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		engine: engine,
		theme:  theme,
		title:  title,
		logger: logger,
	}
}

// Init returns nil.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	return m, m.handleKey(kmsg.String())
}

// View renders the current screen.
func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	if m.quitting {
		return ""
	}

	s := RenderHeader(m.title, m.theme) + "\n\n"

	if result, ok := m.engine.Result(); ok {
		s += RenderResult(result, m.theme)
	} else if q, ok := m.engine.CurrentQuestion(); ok {
		s += RenderQuestion(q, m.engine.State(), m.engine.Progress(), m.cursor, m.theme)
	}

	if m.lastErr != nil {
		s += "\n\n" + NewStyles(m.theme).Highlighted.Render(m.lastErr.Error())
	}

	_, completed := m.engine.Result()
	return s + "\n\n" + RenderHelp(completed, m.theme) + "\n"
}

func (m *Model) handleKey(key string) tea.Cmd {
	m.lastErr = nil

	switch key {
	case keyQuit, keyInterrupt:
		m.quitting = true
		return tea.Quit

	case keyToggleTheme:
		m.theme.Toggle()
		m.logger.Debug("theme toggled", zap.String("mode", string(m.theme.Mode())))
		return nil

	case keyRestart:
		m.engine.Restart()
		m.cursor = 0
		return nil
	}

	q, ok := m.engine.CurrentQuestion()
	if !ok {
		return nil
	}

	switch key {
	case keyUp, keyUpAlt:
		if m.cursor > 0 {
			m.cursor--
		}

	case keyDown, keyDownAlt:
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}

	case keyEnter:
		m.answer(q, m.cursor)

	case keyHighlight:
		m.engine.SetHighlight(true)

	case keyRemoveHighlight:
		m.engine.SetHighlight(false)

	default:
		if n, ok := optionNumber(key); ok {
			m.answer(q, n)
		}
	}

	return nil
}

var errNoSuchOption = errors.New("no such option")

func (m *Model) answer(q entities.Question, pos int) {
	opt, ok := q.OptionAt(pos)
	if !ok {
		m.lastErr = errNoSuchOption
		return
	}

	if err := m.engine.Answer(opt.ID); err != nil {
		m.lastErr = err
		m.logger.Error("failed to record answer",
			zap.Int("index", q.Index),
			zap.String("option_id", opt.ID),
			zap.Error(err),
		)
		return
	}

	m.cursor = 0
}
