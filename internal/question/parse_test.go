package question

import (
	"errors"
	"testing"
)

const capitalsDoc = `# Capitals

> [!question] Capital of France?
> a) Berlin
> b) Paris
> c) Madrid
>> [!success]
>> b) Paris

> [!question] Capital of *Spain*?
> a) Lisbon
> b) Rome
> c) Madrid
> d) Porto
>> [!success]
>> c) Madrid
`

// TestParsePreservesOrder verifies questions and options keep source order.
func TestParsePreservesOrder(t *testing.T) {
	questions, err := Parse(capitalsDoc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Text != "Capital of France?" {
		t.Fatalf("unexpected first question %q", questions[0].Text)
	}
	if questions[1].Text != "Capital of *Spain*?" {
		t.Fatalf("unexpected second question %q", questions[1].Text)
	}
	wantIDs := "abcd"
	if len(questions[1].Options) != len(wantIDs) {
		t.Fatalf("expected %d options, got %+v", len(wantIDs), questions[1].Options)
	}
	for i, option := range questions[1].Options {
		if byte(option.ID) != wantIDs[i] {
			t.Fatalf("option %d: expected id %c, got %s", i, wantIDs[i], option.ID)
		}
	}
	if questions[0].CorrectOptionID != 'b' || questions[1].CorrectOptionID != 'c' {
		t.Fatalf("unexpected answers %s %s", questions[0].CorrectOptionID, questions[1].CorrectOptionID)
	}
}

// TestParseOptionIDAndLabel verifies the id/label split of an option line.
func TestParseOptionIDAndLabel(t *testing.T) {
	questions, err := Parse("> [!question] Q\n> c) Madrid")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := questions[0].Options[0]
	if got.ID != 'c' || got.Label != "Madrid" {
		t.Fatalf("expected {c Madrid}, got {%s %s}", got.ID, got.Label)
	}
}

// TestParseRevealUsesFollowingLine verifies the answer comes from the line
// after the success marker, not from the option list.
func TestParseRevealUsesFollowingLine(t *testing.T) {
	doc := "> [!question] Capital of France?\n> a) Berlin\n> b) Paris\n>> [!success]\n>> c) Paris"
	questions, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectOptionID != 'c' {
		t.Fatalf("expected answer c, got %q", questions[0].CorrectOptionID.String())
	}
	if len(questions[0].Options) != 2 {
		t.Fatalf("reveal line must not be parsed as an option: %+v", questions[0].Options)
	}
}

// TestParseRevealLineIsConsumed verifies the reveal line is never classified,
// even when it looks like a question marker.
func TestParseRevealLineIsConsumed(t *testing.T) {
	doc := "> [!question] Q1\n> a) yes\n>> [!success]\n> [!question] Q2\n> a) no"
	questions, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected reveal line to be consumed, got %d questions", len(questions))
	}
	if questions[0].CorrectOptionID != 0 {
		t.Fatalf("expected unset answer, got %q", questions[0].CorrectOptionID.String())
	}
	if len(questions[0].Options) != 2 {
		t.Fatalf("expected trailing option to attach to Q1, got %+v", questions[0].Options)
	}
}

// TestParseFlushesOnNextQuestion verifies back-to-back blocks yield two records.
func TestParseFlushesOnNextQuestion(t *testing.T) {
	doc := "> [!question] One\n> a) x\n> [!question] Two\n> a) y"
	questions, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Options[0].Label != "x" || questions[1].Options[0].Label != "y" {
		t.Fatalf("options attached to wrong question: %+v", questions)
	}
}

// TestParseTrailingFlush verifies the last question is kept without a trailing newline.
func TestParseTrailingFlush(t *testing.T) {
	questions, err := Parse("> [!question] Last\n> a) only")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 || questions[0].Text != "Last" {
		t.Fatalf("expected final question, got %+v", questions)
	}
}

// TestParseEmptyInput verifies empty input yields no questions and no error.
func TestParseEmptyInput(t *testing.T) {
	questions, err := Parse("")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
}

// TestParseMalformedStructure verifies option and success lines need a question.
func TestParseMalformedStructure(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		line int
		kind LineKind
	}{
		{name: "option first", doc: "> a) Paris", line: 1, kind: LineOption},
		{name: "option after prose", doc: "intro\n\n> b) Rome", line: 3, kind: LineOption},
		{name: "success first", doc: ">> [!success]\n>> a", line: 1, kind: LineSuccessMarker},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			questions, err := Parse(tc.doc)
			if err == nil {
				t.Fatalf("expected malformed fault")
			}
			if questions != nil {
				t.Fatalf("expected no partial result, got %+v", questions)
			}
			if !errors.Is(err, ErrMalformedStructure) {
				t.Fatalf("expected ErrMalformedStructure, got %v", err)
			}
			var malformed *MalformedError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedError, got %T", err)
			}
			if malformed.Line != tc.line || malformed.Kind != tc.kind {
				t.Fatalf("expected line %d kind %s, got line %d kind %s", tc.line, tc.kind, malformed.Line, malformed.Kind)
			}
		})
	}
}

// TestParseMissingRevealLine verifies a final success marker leaves the answer unset.
func TestParseMissingRevealLine(t *testing.T) {
	questions, err := Parse("> [!question] Q\n> a) x\n>> [!success]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].HasAnswer() {
		t.Fatalf("expected unset answer, got %q", questions[0].CorrectOptionID.String())
	}
}

// TestParseRevealWithoutAnswerFragment verifies blank reveal segments leave the answer unset.
func TestParseRevealWithoutAnswerFragment(t *testing.T) {
	cases := map[string]string{
		"no delimiter":  "just text",
		"blank segment": ">>   ",
		"empty line":    "",
	}
	for name, reveal := range cases {
		reveal := reveal
		t.Run(name, func(t *testing.T) {
			questions, err := Parse("> [!question] Q\n> a) x\n>> [!success]\n" + reveal)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if questions[0].HasAnswer() {
				t.Fatalf("expected unset answer, got %q", questions[0].CorrectOptionID.String())
			}
		})
	}
}

// TestParseIgnoresOtherLines verifies prose, blank lines, and CRLF endings are tolerated.
func TestParseIgnoresOtherLines(t *testing.T) {
	doc := "# Title\r\n\r\nSome prose.\r\n   > [!question]   Padded?  \r\n> e) not an option\r\n>a) no space\r\n> a) yes\r\n"
	questions, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Text != "Padded?" {
		t.Fatalf("expected trimmed text, got %q", questions[0].Text)
	}
	if len(questions[0].Options) != 1 || questions[0].Options[0].Label != "yes" {
		t.Fatalf("unexpected options: %+v", questions[0].Options)
	}
}

// TestParseKeepsDuplicates verifies the parser does not deduplicate or cross-check.
func TestParseKeepsDuplicates(t *testing.T) {
	doc := "> [!question] Q\n> a) one\n> a) two\n>> [!success]\n>> z"
	questions, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions[0].Options) != 2 {
		t.Fatalf("expected duplicate options to be kept, got %+v", questions[0].Options)
	}
	if questions[0].CorrectOptionID != 'z' {
		t.Fatalf("expected unvalidated answer z, got %q", questions[0].CorrectOptionID.String())
	}
}

// TestParseIsReentrant verifies repeated calls do not share state.
func TestParseIsReentrant(t *testing.T) {
	first, err := Parse(capitalsDoc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	first[0].Options[0].Label = "mutated"
	second, err := Parse(capitalsDoc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if second[0].Options[0].Label != "Berlin" {
		t.Fatalf("expected fresh result, got %q", second[0].Options[0].Label)
	}
}

// TestParseIgnoresByteOrderMark verifies a BOM does not hide the first question.
func TestParseIgnoresByteOrderMark(t *testing.T) {
	questions, err := Parse("\ufeff> [!question] Q\n> a) x\n>> [!success]\n>> a\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 || questions[0].Text != "Q" || questions[0].CorrectOptionID != 'a' {
		t.Fatalf("unexpected questions %+v", questions)
	}
}
