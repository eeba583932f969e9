package tui

import "github.com/aliskhannn/kalvium-quiz/internal/domain/entities"

// QuizEngine is the quiz state machine driven by the UI.
type QuizEngine interface {
	State() entities.QuizState
	CurrentQuestion() (entities.Question, bool)
	Result() (entities.Result, bool)
	Progress() string
	Answer(optionID string) error
	SetHighlight(on bool)
	Restart()
}
