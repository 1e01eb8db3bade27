package config

// issueAdder records an issue for a field.
type issueAdder func(field, message string)

// issueCollector accumulates validation issues across config sections.
type issueCollector struct {
	issues []Issue
}

// section returns an adder that prefixes fields with the section name.
func (c *issueCollector) section(name string) issueAdder {
	return func(field, message string) {
		if name != "" {
			field = name + "." + field
		}
		c.issues = append(c.issues, Issue{Field: field, Message: message})
	}
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}
