package service_test

import (
	"fmt"

	"github.com/aliskhannn/kalvium-quiz/internal/domain/entities"
)

// buildQuestions creates n questions with options "a", "b", "c",
// where the correct option id is taken from correct[i] (default "a").
func buildQuestions(n int, correct ...string) []entities.Question {
	qs := make([]entities.Question, 0, n)
	for i := 0; i < n; i++ {
		right := "a"
		if i < len(correct) {
			right = correct[i]
		}
		opts := make([]entities.Option, 0, 3)
		for _, id := range []string{"a", "b", "c"} {
			opts = append(opts, entities.Option{
				ID:        id,
				Text:      fmt.Sprintf("Option %s", id),
				IsCorrect: id == right,
			})
		}
		qs = append(qs, entities.Question{
			Text:    fmt.Sprintf("Question %d", i+1),
			Options: opts,
		})
	}
	return qs
}

// wrongOption returns an option id of q that is not the correct one.
func wrongOption(q entities.Question) string {
	for _, opt := range q.Options {
		if !opt.IsCorrect {
			return opt.ID
		}
	}
	return ""
}
