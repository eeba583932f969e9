package entities

// Unanswered marks an AnswerRecord entry with no selected option.
const Unanswered = ""

// AnswerRecord maps question index to the selected option identifier.
// Its length is fixed when it is created.
type AnswerRecord struct {
	answers []string
}

// NewAnswerRecord creates a record of size n with every entry unanswered.
func NewAnswerRecord(n int) AnswerRecord {
	return AnswerRecord{answers: make([]string, n)}
}

// Len returns the number of entries.
func (r AnswerRecord) Len() int {
	return len(r.answers)
}

// Get returns the option identifier recorded at index i.
// The second result is false for unanswered or out-of-range entries.
func (r AnswerRecord) Get(i int) (string, bool) {
	if i < 0 || i >= len(r.answers) {
		return Unanswered, false
	}
	id := r.answers[i]
	return id, id != Unanswered
}

// Set records optionID at index i, overwriting any prior value.
// Out-of-range indexes are ignored.
func (r AnswerRecord) Set(i int, optionID string) {
	if i < 0 || i >= len(r.answers) {
		return
	}
	r.answers[i] = optionID
}

// AnsweredCount returns the number of answered entries.
func (r AnswerRecord) AnsweredCount() int {
	n := 0
	for _, id := range r.answers {
		if id != Unanswered {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the record.
func (r AnswerRecord) Clone() AnswerRecord {
	answers := make([]string, len(r.answers))
	copy(answers, r.answers)
	return AnswerRecord{answers: answers}
}
