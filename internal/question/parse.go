package question

import "strings"

// Parse converts quiz markdown into questions in source order.
//
// Lines are trimmed and classified one at a time. A question-start line
// flushes the question in progress; a success marker consumes the following
// line as the answer reveal. Option or success lines with no question in
// progress fail the whole call with a *MalformedError. A leading byte order
// mark is ignored.
func Parse(text string) ([]Question, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	lines := strings.Split(text, "\n")
	state := parseState{questions: []Question{}}
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		kind := Classify(line)
		switch kind {
		case LineQuestionStart:
			state.flush()
			state.current = &Question{Text: questionText(line), Options: []Option{}}
		case LineSuccessMarker:
			if state.current == nil {
				return nil, &MalformedError{Line: i + 1, Kind: kind, Text: line}
			}
			reveal, ok := peek(lines, i)
			if !ok {
				continue
			}
			state.current.CorrectOptionID = revealAnswer(reveal)
			i++
		case LineOption:
			if state.current == nil {
				return nil, &MalformedError{Line: i + 1, Kind: kind, Text: line}
			}
			state.current.Options = append(state.current.Options, parseOption(line))
		}
	}
	state.flush()
	return state.questions, nil
}

// parseState is the scanner-local accumulator.
type parseState struct {
	current   *Question
	questions []Question
}

// flush appends the in-progress question, if any.
func (s *parseState) flush() {
	if s.current == nil {
		return
	}
	s.questions = append(s.questions, *s.current)
	s.current = nil
}

// peek returns the line after index i without classifying it.
func peek(lines []string, i int) (string, bool) {
	if i+1 >= len(lines) {
		return "", false
	}
	return lines[i+1], true
}
