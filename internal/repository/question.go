package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/kalvium-quiz/assets"
	"github.com/aliskhannn/kalvium-quiz/internal/domain/entities"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoQuestions      = errors.New("question set contains no questions")
)

// QuestionRepository provides read-only access to a static question set.
type QuestionRepository struct {
	questions []entities.Question
}

// NewQuestionRepository loads questions from path.
// An empty path selects the embedded default set.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	data := assets.Questions
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read questions file: %w", err)
		}
	}

	questions, err := parseQuestions(data)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{questions: questions}, nil
}

// GetAll returns every question in order.
func (r *QuestionRepository) GetAll() []entities.Question {
	out := make([]entities.Question, len(r.questions))
	for i, q := range r.questions {
		out[i] = q.Clone()
	}
	return out
}

// GetByIndex returns the question at position index.
func (r *QuestionRepository) GetByIndex(index int) (entities.Question, error) {
	if index < 0 || index >= len(r.questions) {
		return entities.Question{}, ErrQuestionNotFound
	}
	return r.questions[index].Clone(), nil
}

// Count returns the number of questions.
func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

func parseQuestions(data []byte) ([]entities.Question, error) {
	var wrapper struct {
		Questions []entities.Question `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	if len(wrapper.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	for i := range wrapper.Questions {
		wrapper.Questions[i].Index = i
	}

	return wrapper.Questions, nil
}
