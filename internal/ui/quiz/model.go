package quiz

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizmd/internal/inline"
	"quizmd/internal/question"
	"quizmd/internal/review"
)

// ErrNoQuestions reports a deck that parsed but holds no questions.
var ErrNoQuestions = errors.New("no questions found")

// LoadFunc reads a deck from a path.
type LoadFunc func(path string) (question.Deck, error)

// Options configures the review UI model.
type Options struct {
	NoColor bool
	// Deck starts the review immediately instead of showing the picker.
	Deck *question.Deck
	// Dir is the picker's starting directory. Defaults to the working
	// directory.
	Dir string
	// Load defaults to question.LoadDeck.
	Load LoadFunc
	// SessionOptions returns extra options for each new session.
	SessionOptions func(question.Deck) []review.Option
}

// Model renders the deck picker and the review screen using Bubble Tea.
type Model struct {
	picker         filepicker.Model
	help           help.Model
	keys           keyMap
	load           LoadFunc
	sessionOptions func(question.Deck) []review.Option
	deck           question.Deck
	session        *review.Session
	loading        string
	err            error
	noColor        bool
	styles         inline.Styles
}

// NewModel constructs a review UI model.
func NewModel(opts Options) Model {
	picker := filepicker.New()
	picker.AllowedTypes = []string{".md"}
	picker.CurrentDirectory = opts.Dir
	if picker.CurrentDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			picker.CurrentDirectory = wd
		}
	}
	load := opts.Load
	if load == nil {
		load = question.LoadDeck
	}
	styles := inline.DefaultStyles()
	if opts.NoColor {
		styles = inline.PlainStyles()
	}
	m := Model{
		picker:         picker,
		help:           help.New(),
		keys:           defaultKeyMap(),
		load:           load,
		sessionOptions: opts.SessionOptions,
		noColor:        opts.NoColor,
		styles:         styles,
	}
	if opts.Deck != nil {
		m = m.startReview(*opts.Deck)
	}
	return m
}

// Run starts the UI on the given streams and blocks until the user quits.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	program := tea.NewProgram(
		NewModel(opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init reads the picker directory unless a deck is already under review.
func (m Model) Init() tea.Cmd {
	if m.session != nil {
		return nil
	}
	return m.picker.Init()
}

// Update handles key presses, window sizes, and deck loads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		if m.session != nil {
			// Keep the picker sized for when 'o' returns to it.
			m.picker, _ = m.picker.Update(typed)
			return m, nil
		}
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.session != nil {
			return m.handleReviewKey(typed)
		}
	case deckLoadedMsg:
		m.loading = ""
		if len(typed.Deck.Questions) == 0 {
			m.err = ErrNoQuestions
			return m, nil
		}
		return m.startReview(typed.Deck), nil
	case deckFailedMsg:
		m.loading = ""
		m.err = typed.Err
		return m, nil
	}
	if m.session != nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.loading = path
		m.err = nil
		return m, tea.Batch(cmd, loadDeck(m.load, path))
	}
	return m, cmd
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Answer):
		if id, ok := optionForKey(msg.String()); ok {
			m.session.Select(id)
		}
	case key.Matches(msg, m.keys.Next):
		m.session.Next()
	case key.Matches(msg, m.keys.Previous):
		m.session.Previous()
	case key.Matches(msg, m.keys.Open):
		m.session = nil
		m.deck = question.Deck{}
		m.err = nil
		return m, m.picker.Init()
	}
	return m, nil
}

func (m Model) startReview(deck question.Deck) Model {
	var opts []review.Option
	if m.sessionOptions != nil {
		opts = m.sessionOptions(deck)
	}
	m.deck = deck
	m.session = review.New(deck.Questions, opts...)
	m.err = nil
	return m
}

// View renders the current screen.
func (m Model) View() string {
	if m.session == nil {
		return m.pickerView()
	}
	view := m.session.Snapshot()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.deck.Title, view, m.noColor),
		"",
		renderQuestion(view, m.styles),
		"",
		renderOptions(view, m.styles, m.noColor),
		"",
		m.help.View(m.keys),
	)
}

func (m Model) pickerView() string {
	lines := []string{stylize("Pick a quiz deck (.md)", m.noColor, lipgloss.Color("33"))}
	if m.loading != "" {
		lines = append(lines, stylize("Loading "+m.loading+"…", m.noColor, lipgloss.Color("242")))
	}
	if m.err != nil {
		lines = append(lines, renderUploadError(m.err, m.noColor))
	}
	lines = append(lines, "", m.picker.View())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
