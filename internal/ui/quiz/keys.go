package quiz

import (
	"github.com/charmbracelet/bubbles/key"

	"quizmd/internal/question"
)

// keyMap lists the review bindings shown in the footer.
type keyMap struct {
	Answer   key.Binding
	Next     key.Binding
	Previous key.Binding
	Open     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Answer: key.NewBinding(
			key.WithKeys("a", "b", "c", "d", "1", "2", "3", "4"),
			key.WithHelp("a-d", "answer"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open deck"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Answer, k.Next, k.Previous, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// optionForKey maps a pressed key to an option id. Digits count from 1.
func optionForKey(pressed string) (question.OptionID, bool) {
	if len(pressed) != 1 {
		return 0, false
	}
	switch c := pressed[0]; {
	case c >= 'a' && c <= 'd':
		return question.OptionID(c), true
	case c >= '1' && c <= '4':
		return question.OptionID('a' + c - '1'), true
	}
	return 0, false
}
