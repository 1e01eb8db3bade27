package question

import (
	"fmt"
	"strings"
)

// Issue captures a problem found in a parsed deck.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more deck issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("quiz deck check failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Check applies the consistency rules Parse leaves to callers: every question
// has text, options with unique ids, and a correct answer naming one of them.
func Check(deck Deck) error {
	collector := &issueCollector{}
	if len(deck.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	for i, question := range deck.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(question.Text) == "" {
			collector.add(prefix+".text", "is required")
		}
		if len(question.Options) == 0 {
			collector.add(prefix+".options", "must include at least one entry")
		}
		seen := map[OptionID]struct{}{}
		for optionIndex, option := range question.Options {
			if _, exists := seen[option.ID]; exists {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), fmt.Sprintf("duplicate id %q", option.ID.String()))
				continue
			}
			seen[option.ID] = struct{}{}
		}
		if !question.HasAnswer() {
			collector.add(prefix+".correct_option_id", "is missing")
		} else if _, ok := seen[question.CorrectOptionID]; !ok && len(question.Options) > 0 {
			collector.add(prefix+".correct_option_id", fmt.Sprintf("unknown option %q", question.CorrectOptionID.String()))
		}
	}
	return collector.result()
}
