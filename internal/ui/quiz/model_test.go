package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"quizmd/internal/question"
	"quizmd/internal/review"
)

func sampleDeck() question.Deck {
	return question.Deck{
		Title: "Capitals",
		Questions: []question.Question{
			{
				Text: "Capital of **France**?",
				Options: []question.Option{
					{ID: 'a', Label: "Berlin"},
					{ID: 'b', Label: "Paris"},
				},
				CorrectOptionID: 'b',
			},
			{
				Text: "Capital of Spain?",
				Options: []question.Option{
					{ID: 'a', Label: "Madrid"},
					{ID: 'b', Label: "Rome"},
				},
				CorrectOptionID: 'a',
			},
		},
	}
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return typed, cmd
}

// TestModelSelectsAndNavigates verifies keys drive the session.
func TestModelSelectsAndNavigates(t *testing.T) {
	deck := sampleDeck()
	m := NewModel(Options{NoColor: true, Deck: &deck})

	m, _ = update(t, m, runes("a"))
	if id, ok := m.session.Selected(); !ok || id != 'a' {
		t.Fatalf("expected a selected, got %v %v", id, ok)
	}
	view := m.View()
	if !strings.Contains(view, "a) Berlin  ✗") || !strings.Contains(view, "b) Paris  ✓") {
		t.Fatalf("expected marked options, got:\n%s", view)
	}
	if !strings.Contains(view, "Capital of France?") {
		t.Fatalf("expected rendered question text, got:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.session.Index() != 1 {
		t.Fatalf("expected index 1, got %d", m.session.Index())
	}
	if _, ok := m.session.Selected(); ok {
		t.Fatalf("expected selection cleared after next")
	}

	m, _ = update(t, m, runes("1"))
	if id, _ := m.session.Selected(); id != 'a' {
		t.Fatalf("expected digit 1 to select a, got %v", id)
	}
	if !strings.Contains(m.View(), "Question 2/2 | Correct: 1/2") {
		t.Fatalf("expected header tally, got:\n%s", m.View())
	}

	m, _ = update(t, m, runes("p"))
	if m.session.Index() != 0 {
		t.Fatalf("expected index 0 after previous, got %d", m.session.Index())
	}
}

// TestModelQuit verifies q quits the program.
func TestModelQuit(t *testing.T) {
	deck := sampleDeck()
	m := NewModel(Options{NoColor: true, Deck: &deck})
	_, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

// TestModelLoadFailureStaysOnPicker verifies parse faults show an upload error.
func TestModelLoadFailureStaysOnPicker(t *testing.T) {
	m := NewModel(Options{NoColor: true, Dir: t.TempDir()})
	m, _ = update(t, m, deckFailedMsg{Path: "bad.md", Err: errors.New("parse quiz: line 1: option \"> a) x\" appears before any question")})
	if m.session != nil {
		t.Fatalf("expected picker to stay open")
	}
	if !strings.Contains(m.View(), "Upload failed: parse quiz: line 1") {
		t.Fatalf("expected upload error, got:\n%s", m.View())
	}
}

// TestModelEmptyDeckStaysOnPicker verifies empty decks do not start a review.
func TestModelEmptyDeckStaysOnPicker(t *testing.T) {
	m := NewModel(Options{NoColor: true, Dir: t.TempDir()})
	m, _ = update(t, m, deckLoadedMsg{Path: "empty.md", Deck: question.Deck{Title: "Empty", Questions: []question.Question{}}})
	if m.session != nil {
		t.Fatalf("expected picker to stay open")
	}
	if !errors.Is(m.err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", m.err)
	}
}

// TestModelLoadedDeckStartsReview verifies observers are attached per deck.
func TestModelLoadedDeckStartsReview(t *testing.T) {
	var answers []review.Answer
	m := NewModel(Options{
		NoColor: true,
		Dir:     t.TempDir(),
		SessionOptions: func(deck question.Deck) []review.Option {
			return []review.Option{review.WithObserver(func(answer review.Answer) {
				answers = append(answers, answer)
			})}
		},
	})
	m, _ = update(t, m, deckLoadedMsg{Path: "capitals.md", Deck: sampleDeck()})
	if m.session == nil {
		t.Fatalf("expected review to start")
	}
	m, _ = update(t, m, runes("b"))
	if len(answers) != 1 || !answers[0].Correct {
		t.Fatalf("expected one correct answer, got %+v", answers)
	}

	m, _ = update(t, m, runes("o"))
	if m.session != nil {
		t.Fatalf("expected open to return to the picker")
	}
}

// TestLoadDeckCommand verifies the load command reports parse faults.
func TestLoadDeckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	bad := filepath.Join(dir, "bad.md")
	if err := os.WriteFile(good, []byte("> [!question] Q?\n> a) yes\n>> [!success]\n>> a) yes\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(bad, []byte("> a) orphan\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	msg := loadDeck(question.LoadDeck, good)()
	loaded, ok := msg.(deckLoadedMsg)
	if !ok {
		t.Fatalf("expected deckLoadedMsg, got %T", msg)
	}
	if len(loaded.Deck.Questions) != 1 || loaded.Deck.Questions[0].CorrectOptionID != 'a' {
		t.Fatalf("unexpected deck %+v", loaded.Deck)
	}

	msg = loadDeck(question.LoadDeck, bad)()
	failed, ok := msg.(deckFailedMsg)
	if !ok {
		t.Fatalf("expected deckFailedMsg, got %T", msg)
	}
	if !errors.Is(failed.Err, question.ErrMalformedStructure) {
		t.Fatalf("expected malformed error, got %v", failed.Err)
	}
}

// TestPickerKeepsSizeDuringReview verifies resizes during a review reach the
// picker reopened with the open key.
func TestPickerKeepsSizeDuringReview(t *testing.T) {
	deck := sampleDeck()
	m := NewModel(Options{NoColor: true, Deck: &deck, Dir: t.TempDir()})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.session == nil {
		t.Fatalf("expected review to stay active after resize")
	}
	m, _ = update(t, m, runes("o"))
	if m.session != nil {
		t.Fatalf("expected open key to return to the picker")
	}
	if m.picker.Height <= 0 {
		t.Fatalf("expected picker height from window size, got %d", m.picker.Height)
	}
	if m.help.Width != 80 {
		t.Fatalf("expected help width 80, got %d", m.help.Width)
	}
}
