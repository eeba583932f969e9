package service

import "github.com/aliskhannn/kalvium-quiz/internal/domain/entities"

// ComputeScore counts the questions whose recorded answer is the correct option.
// Unanswered entries never count.
func ComputeScore(questions []entities.Question, answers entities.AnswerRecord) int {
	score := 0
	for i, q := range questions {
		selected, ok := answers.Get(i)
		if !ok {
			continue
		}
		correct, ok := q.CorrectOptionID()
		if ok && selected == correct {
			score++
		}
	}
	return score
}

// Percentage returns round(100 * score / total), rounding halves up.
// A zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}

// Evaluate computes the final result of an answer record.
func Evaluate(questions []entities.Question, answers entities.AnswerRecord) entities.Result {
	score := ComputeScore(questions, answers)
	return entities.Result{
		Score:      score,
		Total:      len(questions),
		Percentage: Percentage(score, len(questions)),
	}
}
