package server

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"quizmd/internal/inline"
	"quizmd/internal/question"
	"quizmd/internal/review"
)

// selectRequest is the body of POST /api/sessions/{id}/select.
type selectRequest struct {
	Option string `json:"option"`
}

// Validate checks the option is a single supported letter.
func (req selectRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Option,
			validation.Required,
			validation.Length(1, 1),
			validation.In("a", "b", "c", "d"),
		),
	)
}

// uploadResponse is returned after a deck upload creates a session.
type uploadResponse struct {
	SessionID string          `json:"session_id"`
	Title     string          `json:"title"`
	DeckKey   string          `json:"deck_key"`
	Questions int             `json:"questions"`
	Session   sessionResponse `json:"session"`
}

type optionResponse struct {
	ID        question.OptionID `json:"id"`
	Label     string            `json:"label"`
	LabelHTML string            `json:"label_html"`
	State     review.State      `json:"state"`
}

// sessionResponse is the current view of a session.
type sessionResponse struct {
	SessionID   string            `json:"session_id"`
	Title       string            `json:"title"`
	Index       int               `json:"index"`
	Total       int               `json:"total"`
	Text        string            `json:"text"`
	TextHTML    string            `json:"text_html"`
	Options     []optionResponse  `json:"options"`
	Selected    question.OptionID `json:"selected,omitempty"`
	CanNext     bool              `json:"can_next"`
	CanPrevious bool              `json:"can_previous"`
	Tally       review.Tally      `json:"tally"`
}

func newSessionResponse(id string, entry *sessionEntry) sessionResponse {
	view := entry.session.Snapshot()
	resp := sessionResponse{
		SessionID:   id,
		Title:       entry.deck.Title,
		Index:       view.Index,
		Total:       view.Total,
		Text:        view.Text,
		TextHTML:    inline.HTML(view.Text),
		Options:     make([]optionResponse, 0, len(view.Options)),
		Selected:    view.Selected,
		CanNext:     view.CanNext,
		CanPrevious: view.CanPrevious,
		Tally:       view.Tally,
	}
	for _, option := range view.Options {
		resp.Options = append(resp.Options, optionResponse{
			ID:        option.ID,
			Label:     option.Label,
			LabelHTML: inline.HTML(option.Label),
			State:     option.State,
		})
	}
	return resp
}
