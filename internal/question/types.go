package question

import "unicode/utf8"

// OptionID identifies an answer option by a single ASCII character. The zero
// value means unset.
type OptionID byte

// String returns the id as a one-character string, or "" when unset.
func (id OptionID) String() string {
	if id == 0 {
		return ""
	}
	return string(rune(id))
}

// IsSet reports whether the id carries a value.
func (id OptionID) IsSet() bool {
	return id != 0
}

// MarshalText encodes the id as a single character.
func (id OptionID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes the first byte of text as the id.
func (id *OptionID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = 0
		return nil
	}
	*id = OptionID(text[0])
	return nil
}

// ParseOptionID converts user input into an OptionID, taking the first
// non-space byte. It returns false for blank or non-ASCII input.
func ParseOptionID(value string) (OptionID, bool) {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			if value[i] >= utf8.RuneSelf {
				return 0, false
			}
			return OptionID(value[i]), true
		}
	}
	return 0, false
}

// Option is a single answer choice.
type Option struct {
	ID    OptionID `json:"id" yaml:"id"`
	Label string   `json:"label" yaml:"label"`
}

// Question is a multiple-choice question parsed from a quiz document.
type Question struct {
	Text            string   `json:"text" yaml:"text"`
	Options         []Option `json:"options" yaml:"options"`
	CorrectOptionID OptionID `json:"correct_option_id,omitempty" yaml:"correct_option_id,omitempty"`
}

// HasAnswer reports whether the question carries a correct option id.
func (q Question) HasAnswer() bool {
	return q.CorrectOptionID.IsSet()
}

// Option looks up an option by id.
func (q Question) Option(id OptionID) (Option, bool) {
	for _, option := range q.Options {
		if option.ID == id {
			return option, true
		}
	}
	return Option{}, false
}

// Deck is a parsed quiz document.
type Deck struct {
	Title     string     `json:"title" yaml:"title"`
	Source    string     `json:"source,omitempty" yaml:"source,omitempty"`
	Key       string     `json:"key" yaml:"key"`
	Questions []Question `json:"questions" yaml:"questions"`
	// Order maps each position in Questions to its index in the source
	// document. Nil means source order.
	Order []int `json:"-" yaml:"-"`
}

// SourceIndex returns the source document index of the question at i.
func (d Deck) SourceIndex(i int) int {
	if i >= 0 && i < len(d.Order) {
		return d.Order[i]
	}
	return i
}

// SourceQuestions returns the questions in source document order.
func (d Deck) SourceQuestions() []Question {
	if len(d.Order) != len(d.Questions) {
		return d.Questions
	}
	source := make([]Question, len(d.Questions))
	for i, q := range d.Questions {
		source[d.Order[i]] = q
	}
	return source
}
