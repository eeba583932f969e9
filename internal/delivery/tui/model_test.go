package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/kalvium-quiz/internal/domain/entities"
	"github.com/aliskhannn/kalvium-quiz/internal/service"
)

func testQuestions() []entities.Question {
	return []entities.Question{
		{
			Text: "What is the capital of France?",
			Options: []entities.Option{
				{ID: "0", Text: "London"},
				{ID: "1", Text: "Paris", IsCorrect: true},
			},
		},
		{
			Text: "What does CSS stand for?",
			Options: []entities.Option{
				{ID: "0", Text: "Cascading Style Sheets", IsCorrect: true},
				{ID: "1", Text: "Central Style Sheets"},
				{ID: "2", Text: "Cars SUVs Sailboats"},
			},
		},
	}
}

func newTestModel(t *testing.T) (*Model, *service.QuizEngine, *entities.Theme) {
	t.Helper()
	engine, err := service.NewQuizEngine(testQuestions(), zap.NewNop())
	require.NoError(t, err)
	theme := entities.NewTheme(true)
	return NewModel(engine, theme, "Kalvium", zap.NewNop()), engine, theme
}

func TestModel_NumberKeyAnswersAndAdvances(t *testing.T) {
	m, engine, _ := newTestModel(t)

	m.handleKey("2")

	s := engine.State()
	assert.Equal(t, 1, s.CurrentIndex)
	id, ok := s.Answers.Get(0)
	require.True(t, ok)
	assert.Equal(t, "1", id)
}

func TestModel_CursorAndEnter(t *testing.T) {
	m, engine, _ := newTestModel(t)
	m.handleKey("1") // first question, wrong answer

	m.handleKey(keyDown)
	m.handleKey(keyDown)
	m.handleKey(keyDown) // clamped at the last option
	assert.Equal(t, 2, m.cursor)
	m.handleKey(keyUp)
	assert.Equal(t, 1, m.cursor)

	m.handleKey(keyEnter)

	res, ok := engine.Result()
	require.True(t, ok)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_OutOfRangeNumber(t *testing.T) {
	m, engine, _ := newTestModel(t)

	m.handleKey("9")

	assert.ErrorIs(t, m.lastErr, errNoSuchOption)
	assert.Equal(t, 0, engine.State().CurrentIndex)
	assert.Contains(t, m.render(), errNoSuchOption.Error())
}

func TestModel_HighlightKeys(t *testing.T) {
	m, engine, _ := newTestModel(t)

	m.handleKey(keyHighlight)
	assert.True(t, engine.State().Highlighted)

	m.handleKey(keyRemoveHighlight)
	assert.False(t, engine.State().Highlighted)
}

func TestModel_ThemeToggleSurvivesRestart(t *testing.T) {
	m, engine, theme := newTestModel(t)

	m.handleKey(keyToggleTheme)
	assert.False(t, theme.IsDark())

	m.handleKey("2")
	m.handleKey("1")
	require.True(t, engine.IsCompleted())

	m.handleKey(keyRestart)
	assert.False(t, engine.IsCompleted())
	assert.False(t, theme.IsDark())
}

func TestModel_KeysIgnoredAfterCompletion(t *testing.T) {
	m, engine, _ := newTestModel(t)
	m.handleKey("2")
	m.handleKey("1")
	before := engine.State()

	m.handleKey("1")
	m.handleKey(keyHighlight)
	m.handleKey(keyEnter)

	assert.Equal(t, before, engine.State())
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := m.handleKey(keyQuit)
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.render())
}

func TestModel_RenderScreens(t *testing.T) {
	m, _, _ := newTestModel(t)

	out := m.render()
	assert.Contains(t, out, "Kalvium")
	assert.Contains(t, out, "Light Mode")
	assert.Contains(t, out, "Question 1 of 2")
	assert.Contains(t, out, "What is the capital of France?")
	assert.Contains(t, out, "Paris")

	m.handleKey("2")
	m.handleKey("1")

	out = m.render()
	assert.Contains(t, out, "Final Results")
	assert.Contains(t, out, "2 out of 2 correct - (100%)")
	assert.Contains(t, out, "Restart Quiz")
}

func TestRenderQuestion_HighlightChangesStyle(t *testing.T) {
	q := testQuestions()[0]
	theme := entities.NewTheme(true)
	state := *entities.NewQuizState(2)

	normal := RenderQuestion(q, state, "Question 1 of 2", 0, theme)
	state.Highlighted = true
	highlighted := RenderQuestion(q, state, "Question 1 of 2", 0, theme)

	assert.NotEqual(t, normal, highlighted)
	assert.Contains(t, highlighted, q.Text)
}

func TestRenderHeader_FollowsTheme(t *testing.T) {
	theme := entities.NewTheme(false)
	assert.Contains(t, RenderHeader("Kalvium", theme), "Dark Mode")

	theme.Toggle()
	assert.Contains(t, RenderHeader("Kalvium", theme), "Light Mode")
}

func TestOptionNumber(t *testing.T) {
	n, ok := optionNumber("1")
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	n, ok = optionNumber("9")
	assert.True(t, ok)
	assert.Equal(t, 8, n)

	for _, key := range []string{"0", "a", "10", ""} {
		_, ok := optionNumber(key)
		assert.False(t, ok, key)
	}
}
