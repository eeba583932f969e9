package entities

import (
	"fmt"

	"github.com/google/uuid"
)

// QuizStatus is the coarse state of a quiz attempt.
type QuizStatus string

const (
	StatusInProgress QuizStatus = "in_progress" // a question is active
	StatusCompleted  QuizStatus = "completed"   // every question has been passed
)

// Result is the final outcome of a quiz attempt.
type Result struct {
	Score      int // number of correctly answered questions
	Total      int // number of questions
	Percentage int // rounded share of correct answers, 0-100
}

// String renders the result the way the results screen shows it.
func (r Result) String() string {
	return fmt.Sprintf("%d out of %d correct - (%d%%)", r.Score, r.Total, r.Percentage)
}

// QuizState is the authoritative state of a single quiz attempt.
type QuizState struct {
	AttemptID    string       // identifies one attempt, renewed on restart
	CurrentIndex int          // 0-based index of the active question
	Answers      AnswerRecord // selected options per question
	Completed    bool         // one-way flag, set after the last question
	Highlighted  bool         // presentation-only emphasis of the question text
	Result       *Result      // computed once on completion, nil before
}

// NewQuizState creates the initial state for a quiz of n questions.
func NewQuizState(n int) *QuizState {
	return &QuizState{
		AttemptID:    uuid.NewString(),
		CurrentIndex: 0,
		Answers:      NewAnswerRecord(n),
		Completed:    false,
		Highlighted:  false,
	}
}

// Status returns the coarse state of the attempt.
func (s *QuizState) Status() QuizStatus {
	if s.Completed {
		return StatusCompleted
	}
	return StatusInProgress
}

// Complete marks the attempt as completed and caches its result.
func (s *QuizState) Complete(result Result) {
	s.Completed = true
	s.Result = &result
}

// Clone returns a deep copy of the state.
func (s *QuizState) Clone() QuizState {
	c := *s
	c.Answers = s.Answers.Clone()
	if s.Result != nil {
		r := *s.Result
		c.Result = &r
	}
	return c
}
