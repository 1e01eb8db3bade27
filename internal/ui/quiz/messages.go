package quiz

import (
	tea "github.com/charmbracelet/bubbletea"

	"quizmd/internal/question"
)

// deckLoadedMsg carries a deck read from disk.
type deckLoadedMsg struct {
	Path string
	Deck question.Deck
}

// deckFailedMsg reports a deck that could not be read or parsed.
type deckFailedMsg struct {
	Path string
	Err  error
}

// loadDeck reads and parses path off the update loop.
func loadDeck(load LoadFunc, path string) tea.Cmd {
	return func() tea.Msg {
		deck, err := load(path)
		if err != nil {
			return deckFailedMsg{Path: path, Err: err}
		}
		return deckLoadedMsg{Path: path, Deck: deck}
	}
}
