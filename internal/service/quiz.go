package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/kalvium-quiz/internal/domain/entities"
)

var (
	ErrUnknownOption = errors.New("option does not belong to the current question")
	ErrUnknownAction = errors.New("unknown quiz action")
)

// ActionType names a quiz transition.
type ActionType string

const (
	ActionSelectAnswer ActionType = "select_answer" // record an option for the current question
	ActionAdvance      ActionType = "advance"       // move to the next question or complete
	ActionAnswer       ActionType = "answer"        // select_answer followed by advance
	ActionSetHighlight ActionType = "set_highlight" // toggle emphasis of the question text
	ActionRestart      ActionType = "restart"       // discard the attempt and start over
)

// Action is a single request to change the quiz state.
type Action struct {
	Type      ActionType
	OptionID  string // used by select_answer and answer
	Highlight bool   // used by set_highlight
}

type transition struct {
	// inCompleted is true when the transition applies after completion.
	// Other transitions are ignored once the quiz is completed.
	inCompleted bool
	apply       func(e *QuizEngine, a Action) error
}

var transitions = map[ActionType]transition{
	ActionSelectAnswer: {
		apply: func(e *QuizEngine, a Action) error {
			return e.selectAnswer(a.OptionID)
		},
	},
	ActionAdvance: {
		apply: func(e *QuizEngine, _ Action) error {
			e.advance()
			return nil
		},
	},
	ActionAnswer: {
		apply: func(e *QuizEngine, a Action) error {
			if err := e.selectAnswer(a.OptionID); err != nil {
				return err
			}
			e.advance()
			return nil
		},
	},
	ActionSetHighlight: {
		apply: func(e *QuizEngine, a Action) error {
			e.state.Highlighted = a.Highlight
			return nil
		},
	},
	ActionRestart: {
		inCompleted: true,
		apply: func(e *QuizEngine, _ Action) error {
			e.restart()
			return nil
		},
	},
}

// QuizEngine owns the state of one quiz attempt and enforces its transitions.
// It is not safe for concurrent use.
type QuizEngine struct {
	questions []entities.Question
	state     *entities.QuizState
	logger    *zap.Logger
}

// NewQuizEngine validates questions and starts an attempt at the first question.
func NewQuizEngine(questions []entities.Question, logger *zap.Logger) (*QuizEngine, error) {
	if err := NewQuestionSetValidator().Validate(questions); err != nil {
		return nil, fmt.Errorf("new quiz engine: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	qs := make([]entities.Question, len(questions))
	for i, q := range questions {
		qs[i] = q.Clone()
		qs[i].Index = i
	}

	e := &QuizEngine{
		questions: qs,
		state:     entities.NewQuizState(len(qs)),
		logger:    logger,
	}
	e.logger.Info("quiz started",
		zap.String("attempt_id", e.state.AttemptID),
		zap.Int("questions", len(qs)),
	)

	return e, nil
}

// Dispatch applies a to the quiz state.
// Actions other than restart are no-ops once the quiz is completed.
func (e *QuizEngine) Dispatch(a Action) error {
	t, ok := transitions[a.Type]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Type)
	}

	if e.state.Completed && !t.inCompleted {
		e.logger.Debug("action ignored after completion",
			zap.String("attempt_id", e.state.AttemptID),
			zap.String("action", string(a.Type)),
		)
		return nil
	}

	return t.apply(e, a)
}

// SelectAnswer records optionID for the current question without advancing.
func (e *QuizEngine) SelectAnswer(optionID string) error {
	return e.Dispatch(Action{Type: ActionSelectAnswer, OptionID: optionID})
}

// Advance moves to the next question, completing the quiz after the last one.
func (e *QuizEngine) Advance() {
	_ = e.Dispatch(Action{Type: ActionAdvance})
}

// Answer commits optionID for the current question and advances.
func (e *QuizEngine) Answer(optionID string) error {
	return e.Dispatch(Action{Type: ActionAnswer, OptionID: optionID})
}

// SetHighlight sets the emphasis flag of the current question.
func (e *QuizEngine) SetHighlight(on bool) {
	_ = e.Dispatch(Action{Type: ActionSetHighlight, Highlight: on})
}

// Restart discards the attempt and starts a new one at the first question.
func (e *QuizEngine) Restart() {
	_ = e.Dispatch(Action{Type: ActionRestart})
}

// State returns a copy of the current state.
func (e *QuizEngine) State() entities.QuizState {
	return e.state.Clone()
}

// Questions returns the question set of the quiz.
func (e *QuizEngine) Questions() []entities.Question {
	qs := make([]entities.Question, len(e.questions))
	for i, q := range e.questions {
		qs[i] = q.Clone()
	}
	return qs
}

// CurrentQuestion returns the active question, or false once completed.
func (e *QuizEngine) CurrentQuestion() (entities.Question, bool) {
	if e.state.Completed {
		return entities.Question{}, false
	}
	return e.questions[e.state.CurrentIndex].Clone(), true
}

// IsCompleted reports whether the last question has been passed.
func (e *QuizEngine) IsCompleted() bool {
	return e.state.Completed
}

// Result returns the cached result, or false before completion.
func (e *QuizEngine) Result() (entities.Result, bool) {
	if e.state.Result == nil {
		return entities.Result{}, false
	}
	return *e.state.Result, true
}

// Progress returns a "Question i of N" caption for the active question.
func (e *QuizEngine) Progress() string {
	n := len(e.questions)
	if e.state.Completed {
		return fmt.Sprintf("Question %d of %d", n, n)
	}
	return fmt.Sprintf("Question %d of %d", e.state.CurrentIndex+1, n)
}

func (e *QuizEngine) selectAnswer(optionID string) error {
	idx := e.state.CurrentIndex
	if !e.questions[idx].HasOption(optionID) {
		return fmt.Errorf("question %d: %w: %q", idx, ErrUnknownOption, optionID)
	}

	e.state.Answers.Set(idx, optionID)
	e.logger.Debug("answer selected",
		zap.String("attempt_id", e.state.AttemptID),
		zap.Int("index", idx),
		zap.String("option_id", optionID),
	)

	return nil
}

func (e *QuizEngine) advance() {
	if e.state.CurrentIndex < len(e.questions)-1 {
		e.state.CurrentIndex++
		return
	}

	result := Evaluate(e.questions, e.state.Answers)
	e.state.Complete(result)
	e.logger.Info("quiz completed",
		zap.String("attempt_id", e.state.AttemptID),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
		zap.Int("percentage", result.Percentage),
	)
}

func (e *QuizEngine) restart() {
	prev := e.state.AttemptID
	e.state = entities.NewQuizState(len(e.questions))
	e.logger.Info("quiz restarted",
		zap.String("previous_attempt_id", prev),
		zap.String("attempt_id", e.state.AttemptID),
	)
}
