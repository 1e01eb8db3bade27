package question

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// TestCheckValidDeck verifies a consistent deck passes.
func TestCheckValidDeck(t *testing.T) {
	questions, err := Parse(capitalsDoc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Check(Deck{Questions: questions}); err != nil {
		t.Fatalf("expected deck to pass, got %v", err)
	}
}

// TestCheckReportsIssues verifies caller-side rules are collected.
func TestCheckReportsIssues(t *testing.T) {
	doc := `> [!question]
> a) one
> a) two
>> [!success]
>> z
> [!question] No options
> [!question] No answer
> a) x
`
	questions, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = Check(Deck{Questions: questions})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	wantFields := []string{
		"questions[0].text",
		"questions[0].options[1]",
		"questions[0].correct_option_id",
		"questions[1].options",
		"questions[1].correct_option_id",
		"questions[2].correct_option_id",
	}
	if len(validationErr.Issues) != len(wantFields) {
		t.Fatalf("expected %d issues, got %+v", len(wantFields), validationErr.Issues)
	}
	for i, field := range wantFields {
		if validationErr.Issues[i].Field != field {
			t.Fatalf("issue %d: expected field %s, got %s", i, field, validationErr.Issues[i].Field)
		}
	}
	if !strings.Contains(err.Error(), "unknown option \"z\"") {
		t.Fatalf("expected unknown option message, got %q", err.Error())
	}
}

// TestCheckEmptyDeck verifies an empty deck is rejected.
func TestCheckEmptyDeck(t *testing.T) {
	if err := Check(Deck{}); err == nil {
		t.Fatalf("expected error for empty deck")
	}
}

// TestShuffleKeepsInput verifies shuffling returns a permutation copy.
func TestShuffleKeepsInput(t *testing.T) {
	questions := []Question{{Text: "1"}, {Text: "2"}, {Text: "3"}, {Text: "4"}}
	shuffled := ShuffleDeck(Deck{Questions: questions}, rand.New(rand.NewSource(7))).Questions
	if len(shuffled) != len(questions) {
		t.Fatalf("expected %d questions, got %d", len(questions), len(shuffled))
	}
	if questions[0].Text != "1" || questions[3].Text != "4" {
		t.Fatalf("input was modified: %+v", questions)
	}
	seen := map[string]bool{}
	for _, q := range shuffled {
		seen[q.Text] = true
	}
	if len(seen) != len(questions) {
		t.Fatalf("expected a permutation, got %+v", shuffled)
	}
}

// TestShuffleDeckRecordsSourceOrder verifies shuffled decks map back to the document.
func TestShuffleDeckRecordsSourceOrder(t *testing.T) {
	deck := Deck{Questions: []Question{{Text: "1"}, {Text: "2"}, {Text: "3"}, {Text: "4"}, {Text: "5"}}}
	shuffled := ShuffleDeck(deck, rand.New(rand.NewSource(3)))
	if len(shuffled.Order) != len(deck.Questions) {
		t.Fatalf("expected order for every question, got %v", shuffled.Order)
	}
	for i, q := range shuffled.Questions {
		if want := deck.Questions[shuffled.SourceIndex(i)].Text; q.Text != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, q.Text)
		}
	}
	source := shuffled.SourceQuestions()
	for i, q := range source {
		if q.Text != deck.Questions[i].Text {
			t.Fatalf("expected source order restored, got %+v", source)
		}
	}
	again := ShuffleDeck(shuffled, rand.New(rand.NewSource(9)))
	for i, q := range again.Questions {
		if q.Text != deck.Questions[again.SourceIndex(i)].Text {
			t.Fatalf("reshuffle lost the source mapping at %d", i)
		}
	}
	if deck.SourceIndex(2) != 2 {
		t.Fatalf("expected identity index for unshuffled deck")
	}
}
