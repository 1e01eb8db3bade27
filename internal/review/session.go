package review

import (
	"time"

	"quizmd/internal/question"
)

// State is the visual state of an option for the current question.
type State int

const (
	// StateNeutral is used for every option before a selection is made.
	StateNeutral State = iota
	// StateCorrect marks the correct option once a selection exists.
	StateCorrect
	// StateIncorrect marks the selected option when it is wrong.
	StateIncorrect
	// StateDisabled marks the remaining options once a selection exists.
	StateDisabled
)

// String returns the lowercase state name used in JSON and plain output.
func (s State) String() string {
	switch s {
	case StateCorrect:
		return "correct"
	case StateIncorrect:
		return "incorrect"
	case StateDisabled:
		return "disabled"
	default:
		return "neutral"
	}
}

// MarshalText encodes the state name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name. Unknown names decode as neutral.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "correct":
		*s = StateCorrect
	case "incorrect":
		*s = StateIncorrect
	case "disabled":
		*s = StateDisabled
	default:
		*s = StateNeutral
	}
	return nil
}

// Answer describes an accepted selection.
type Answer struct {
	Index    int
	Question question.Question
	Selected question.OptionID
	Correct  bool
	At       time.Time
}

// Observer receives every accepted selection.
type Observer func(Answer)

// Tally counts answered and correct questions in a session.
type Tally struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
	Total    int `json:"total"`
}

// Session walks a list of questions one at a time. It is not safe for
// concurrent use.
type Session struct {
	questions []question.Question
	index     int
	selected  question.OptionID
	answers   map[int]bool
	observer  Observer
	now       func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithObserver registers a callback for accepted selections.
func WithObserver(observer Observer) Option {
	return func(s *Session) {
		s.observer = observer
	}
}

// WithClock overrides the clock used to stamp answers.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New starts a session at the first question with no selection.
func New(questions []question.Question, opts ...Option) *Session {
	copied := make([]question.Question, len(questions))
	copy(copied, questions)
	s := &Session{
		questions: copied,
		answers:   map[int]bool{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Index returns the zero-based current position.
func (s *Session) Index() int {
	return s.index
}

// Selected returns the locked-in option id for the current question.
func (s *Session) Selected() (question.OptionID, bool) {
	return s.selected, s.selected.IsSet()
}

// Current returns the question under review. ok is false for empty sessions.
func (s *Session) Current() (question.Question, bool) {
	if len(s.questions) == 0 {
		return question.Question{}, false
	}
	return s.questions[s.index], true
}

// Select locks in an answer. It is ignored when an answer is already locked
// in or when id is not an option of the current question.
func (s *Session) Select(id question.OptionID) bool {
	current, ok := s.Current()
	if !ok || s.selected.IsSet() || !id.IsSet() {
		return false
	}
	if _, exists := current.Option(id); !exists {
		return false
	}
	s.selected = id
	correct := current.HasAnswer() && id == current.CorrectOptionID
	s.answers[s.index] = correct
	if s.observer != nil {
		s.observer(Answer{
			Index:    s.index,
			Question: current,
			Selected: id,
			Correct:  correct,
			At:       s.now(),
		})
	}
	return true
}

// CanNext reports whether Next would move.
func (s *Session) CanNext() bool {
	return s.index < len(s.questions)-1
}

// CanPrevious reports whether Previous would move.
func (s *Session) CanPrevious() bool {
	return s.index > 0
}

// Next advances one question and clears the selection.
func (s *Session) Next() bool {
	if !s.CanNext() {
		return false
	}
	s.index++
	s.selected = 0
	return true
}

// Previous goes back one question and clears the selection.
func (s *Session) Previous() bool {
	if !s.CanPrevious() {
		return false
	}
	s.index--
	s.selected = 0
	return true
}

// OptionState returns how an option of the current question should render.
func (s *Session) OptionState(option question.Option) State {
	current, _ := s.Current()
	return StateFor(option.ID, s.selected, current.CorrectOptionID)
}

// StateFor computes an option's visual state from the selection and the
// correct answer.
func StateFor(id, selected, correct question.OptionID) State {
	switch {
	case !selected.IsSet():
		return StateNeutral
	case id == correct:
		return StateCorrect
	case id == selected:
		return StateIncorrect
	default:
		return StateDisabled
	}
}

// Tally returns the latest answer result per question.
func (s *Session) Tally() Tally {
	tally := Tally{Answered: len(s.answers), Total: len(s.questions)}
	for _, correct := range s.answers {
		if correct {
			tally.Correct++
		}
	}
	return tally
}
