package entities

// Option is a single selectable choice of a question.
type Option struct {
	ID        string `json:"id" validate:"required"` // stable identifier, unique within the question
	Text      string `json:"text"`                   // display text
	IsCorrect bool   `json:"isCorrect"`              // exactly one option per question is correct
}

// Question is one quiz prompt with an ordered list of options.
type Question struct {
	Index   int      `json:"-"`                                      // position in the question sequence
	Text    string   `json:"text" validate:"required"`               // display text
	Options []Option `json:"options" validate:"required,min=1,dive"` // ordered choices
}

// Clone returns a copy of the question that shares no options with q.
func (q Question) Clone() Question {
	c := q
	c.Options = make([]Option, len(q.Options))
	copy(c.Options, q.Options)
	return c
}

// CorrectOptionID returns the identifier of the first option flagged as correct.
func (q Question) CorrectOptionID() (string, bool) {
	for _, opt := range q.Options {
		if opt.IsCorrect {
			return opt.ID, true
		}
	}
	return "", false
}

// HasOption reports whether id identifies one of the question's options.
func (q Question) HasOption(id string) bool {
	for _, opt := range q.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// OptionAt returns the option at position i.
func (q Question) OptionAt(i int) (Option, bool) {
	if i < 0 || i >= len(q.Options) {
		return Option{}, false
	}
	return q.Options[i], true
}
