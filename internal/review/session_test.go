package review

import (
	"testing"
	"time"

	"quizmd/internal/question"
)

func sampleQuestions() []question.Question {
	return []question.Question{
		{
			Text: "Capital of France?",
			Options: []question.Option{
				{ID: 'a', Label: "Berlin"},
				{ID: 'b', Label: "Paris"},
				{ID: 'c', Label: "Madrid"},
			},
			CorrectOptionID: 'b',
		},
		{
			Text: "Capital of Spain?",
			Options: []question.Option{
				{ID: 'a', Label: "Madrid"},
				{ID: 'b', Label: "Lisbon"},
			},
			CorrectOptionID: 'a',
		},
		{
			Text:    "No answer recorded",
			Options: []question.Option{{ID: 'a', Label: "x"}},
		},
	}
}

// TestNewSessionInitialState verifies index 0 and no selection.
func TestNewSessionInitialState(t *testing.T) {
	s := New(sampleQuestions())
	if s.Index() != 0 || s.Len() != 3 {
		t.Fatalf("unexpected initial state index=%d len=%d", s.Index(), s.Len())
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("expected no selection")
	}
	if s.CanPrevious() {
		t.Fatalf("expected previous to be disabled at first question")
	}
}

// TestSelectLocksFirstChoice verifies later selections are ignored.
func TestSelectLocksFirstChoice(t *testing.T) {
	s := New(sampleQuestions())
	if !s.Select('a') {
		t.Fatalf("expected first selection to be accepted")
	}
	if s.Select('b') {
		t.Fatalf("expected second selection to be ignored")
	}
	if got, _ := s.Selected(); got != 'a' {
		t.Fatalf("expected a to stay selected, got %q", got.String())
	}
}

// TestSelectUnknownOptionIgnored verifies ids outside the option list are rejected.
func TestSelectUnknownOptionIgnored(t *testing.T) {
	s := New(sampleQuestions())
	if s.Select('d') {
		t.Fatalf("expected unknown option to be ignored")
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("expected no selection")
	}
}

// TestNavigationBounds verifies next/previous stay within bounds and reset selection.
func TestNavigationBounds(t *testing.T) {
	s := New(sampleQuestions())
	if s.Previous() {
		t.Fatalf("expected previous to be a no-op at index 0")
	}
	s.Select('b')
	if !s.Next() {
		t.Fatalf("expected next to move")
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("expected selection reset after next")
	}
	s.Next()
	if s.Index() != 2 {
		t.Fatalf("expected last index, got %d", s.Index())
	}
	s.Select('a')
	if s.Next() {
		t.Fatalf("expected next to be a no-op at the last question")
	}
	if _, ok := s.Selected(); !ok {
		t.Fatalf("expected selection kept when next is a no-op")
	}
	if !s.Previous() || s.Index() != 1 {
		t.Fatalf("expected previous to move back to 1, got %d", s.Index())
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("expected selection reset after previous")
	}
}

// TestOptionStates verifies the four visual states.
func TestOptionStates(t *testing.T) {
	s := New(sampleQuestions())
	current, _ := s.Current()
	for _, option := range current.Options {
		if got := s.OptionState(option); got != StateNeutral {
			t.Fatalf("expected neutral before selection, got %s", got)
		}
	}
	s.Select('c')
	want := map[question.OptionID]State{'a': StateDisabled, 'b': StateCorrect, 'c': StateIncorrect}
	for _, option := range current.Options {
		if got := s.OptionState(option); got != want[option.ID] {
			t.Fatalf("option %s: expected %s, got %s", option.ID, want[option.ID], got)
		}
	}
}

// TestOptionStatesWithoutAnswer verifies unset answers never mark an option correct.
func TestOptionStatesWithoutAnswer(t *testing.T) {
	if got := StateFor('a', 'a', 0); got != StateIncorrect {
		t.Fatalf("expected incorrect, got %s", got)
	}
	if got := StateFor('b', 'a', 0); got != StateDisabled {
		t.Fatalf("expected disabled, got %s", got)
	}
}

// TestEmptySession verifies all transitions are no-ops without questions.
func TestEmptySession(t *testing.T) {
	s := New(nil)
	if _, ok := s.Current(); ok {
		t.Fatalf("expected no current question")
	}
	if s.Select('a') || s.Next() || s.Previous() {
		t.Fatalf("expected no-op transitions")
	}
	view := s.Snapshot()
	if view.Total != 0 || len(view.Options) != 0 {
		t.Fatalf("unexpected snapshot: %+v", view)
	}
}

// TestObserverAndTally verifies answers are reported and counted.
func TestObserverAndTally(t *testing.T) {
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var answers []Answer
	s := New(sampleQuestions(),
		WithObserver(func(a Answer) { answers = append(answers, a) }),
		WithClock(func() time.Time { return stamp }),
	)
	s.Select('b')
	s.Next()
	s.Select('b')
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if !answers[0].Correct || answers[1].Correct {
		t.Fatalf("unexpected correctness: %+v", answers)
	}
	if !answers[0].At.Equal(stamp) || answers[1].Index != 1 {
		t.Fatalf("unexpected answer metadata: %+v", answers[1])
	}
	tally := s.Tally()
	if tally.Answered != 2 || tally.Correct != 1 || tally.Total != 3 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
	s.Previous()
	s.Select('a')
	if got := s.Tally(); got.Answered != 2 || got.Correct != 0 {
		t.Fatalf("expected latest answer to replace the earlier one, got %+v", got)
	}
}

// TestSnapshot verifies the view mirrors session state.
func TestSnapshot(t *testing.T) {
	s := New(sampleQuestions())
	s.Select('a')
	view := s.Snapshot()
	if view.Text != "Capital of France?" || view.Total != 3 || !view.CanNext || view.CanPrevious {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Selected != 'a' || view.Options[1].State != StateCorrect || view.Options[0].State != StateIncorrect {
		t.Fatalf("unexpected option states: %+v", view.Options)
	}
}
