package review

import "quizmd/internal/question"

// OptionView is an option paired with its visual state.
type OptionView struct {
	ID    question.OptionID `json:"id"`
	Label string            `json:"label"`
	State State             `json:"state"`
}

// View is a read-only snapshot of a session.
type View struct {
	Index       int               `json:"index"`
	Total       int               `json:"total"`
	Text        string            `json:"text"`
	Options     []OptionView      `json:"options"`
	Selected    question.OptionID `json:"selected,omitempty"`
	CanNext     bool              `json:"can_next"`
	CanPrevious bool              `json:"can_previous"`
	Tally       Tally             `json:"tally"`
}

// Snapshot captures the current question and its option states.
func (s *Session) Snapshot() View {
	view := View{
		Index:       s.index,
		Total:       len(s.questions),
		Options:     []OptionView{},
		Selected:    s.selected,
		CanNext:     s.CanNext(),
		CanPrevious: s.CanPrevious(),
		Tally:       s.Tally(),
	}
	current, ok := s.Current()
	if !ok {
		return view
	}
	view.Text = current.Text
	for _, option := range current.Options {
		view.Options = append(view.Options, OptionView{
			ID:    option.ID,
			Label: option.Label,
			State: s.OptionState(option),
		})
	}
	return view
}
