package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/aliskhannn/kalvium-quiz/internal/domain/entities"
)

var (
	ErrEmptyQuestionSet       = errors.New("question set is empty")
	ErrMalformedQuestion      = errors.New("malformed question")
	ErrDuplicateOptionID      = errors.New("duplicate option id")
	ErrNoCorrectOption        = errors.New("question has no correct option")
	ErrMultipleCorrectOptions = errors.New("question has more than one correct option")
)

// QuestionSetValidator checks a question set before a quiz is built from it.
type QuestionSetValidator struct {
	validate *validator.Validate
}

// NewQuestionSetValidator creates a new QuestionSetValidator.
func NewQuestionSetValidator() *QuestionSetValidator {
	return &QuestionSetValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate returns the first problem found in questions, or nil.
//
// A valid set is non-empty and every question:
//  1. has text and at least one option, each option with an id;
//  2. has no two options sharing an id;
//  3. has exactly one option flagged as correct.
func (v *QuestionSetValidator) Validate(questions []entities.Question) error {
	if len(questions) == 0 {
		return ErrEmptyQuestionSet
	}

	for i, q := range questions {
		if err := v.validate.Struct(q); err != nil {
			return fmt.Errorf("question %d: %w: %w", i, ErrMalformedQuestion, err)
		}

		seen := make(map[string]struct{}, len(q.Options))
		correct := 0
		for _, opt := range q.Options {
			if _, ok := seen[opt.ID]; ok {
				return fmt.Errorf("question %d: %w %q", i, ErrDuplicateOptionID, opt.ID)
			}
			seen[opt.ID] = struct{}{}

			if opt.IsCorrect {
				correct++
			}
		}

		switch {
		case correct == 0:
			return fmt.Errorf("question %d: %w", i, ErrNoCorrectOption)
		case correct > 1:
			return fmt.Errorf("question %d: %w", i, ErrMultipleCorrectOptions)
		}
	}

	return nil
}
