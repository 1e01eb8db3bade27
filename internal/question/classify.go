package question

import (
	"strings"
	"unicode/utf8"
)

const (
	questionPrefix = "> [!question]"
	successPrefix  = ">> [!success]"
	revealDelim    = ">>"

	optionIDOffset    = 2
	optionLabelOffset = 4
)

// LineKind classifies a trimmed line of a quiz document.
type LineKind int

const (
	// LineOther is any line without structural meaning.
	LineOther LineKind = iota
	// LineQuestionStart opens a new question.
	LineQuestionStart
	// LineSuccessMarker announces that the next line holds the answer.
	LineSuccessMarker
	// LineOption is an "> a) label" answer option.
	LineOption
)

// String returns a readable name for the kind.
func (kind LineKind) String() string {
	switch kind {
	case LineQuestionStart:
		return "question"
	case LineSuccessMarker:
		return "success marker"
	case LineOption:
		return "option"
	default:
		return "other"
	}
}

// Classify reports the kind of a line. The line is expected to be trimmed.
func Classify(line string) LineKind {
	switch {
	case strings.HasPrefix(line, questionPrefix):
		return LineQuestionStart
	case strings.HasPrefix(line, successPrefix):
		return LineSuccessMarker
	case isOptionLine(line):
		return LineOption
	default:
		return LineOther
	}
}

// isOptionLine matches "> " followed by a letter a-d and ")".
func isOptionLine(line string) bool {
	if len(line) < optionLabelOffset {
		return false
	}
	id := line[optionIDOffset]
	return line[0] == '>' && line[1] == ' ' && id >= 'a' && id <= 'd' && line[3] == ')'
}

// questionText strips the question marker from a question-start line.
func questionText(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, questionPrefix))
}

// parseOption splits an option line into id and label. The id is read at a
// fixed offset, so multi-character ids are not supported.
func parseOption(line string) Option {
	return Option{
		ID:    OptionID(line[optionIDOffset]),
		Label: strings.TrimSpace(line[optionLabelOffset:]),
	}
}

// revealAnswer extracts the answer id from the line following a success
// marker: the first character of the segment after the first ">>". Ids are
// single ASCII characters, so a non-ASCII reveal leaves the answer unset.
func revealAnswer(line string) OptionID {
	segments := strings.Split(line, revealDelim)
	if len(segments) < 2 {
		return 0
	}
	fragment := strings.TrimSpace(segments[1])
	if fragment == "" || fragment[0] >= utf8.RuneSelf {
		return 0
	}
	return OptionID(fragment[0])
}
