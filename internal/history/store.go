// Package history persists answered questions in DuckDB so accuracy can be
// reported per deck across sessions.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"quizmd/internal/question"
	"quizmd/internal/review"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store records answers in a DuckDB database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Answer is one recorded selection.
type Answer struct {
	SessionID     string
	DeckKey       string
	DeckTitle     string
	QuestionIndex int
	QuestionText  string
	Selected      string
	CorrectOption string
	Correct       bool
	AnsweredAt    time.Time
}

// DeckSummary aggregates answers for one deck.
type DeckSummary struct {
	DeckKey  string    `json:"deck_key"`
	Title    string    `json:"title"`
	Sessions int       `json:"sessions"`
	Answered int       `json:"answered"`
	Correct  int       `json:"correct"`
	LastSeen time.Time `json:"last_seen"`
}

// Accuracy returns the correct share of answers in [0, 1].
func (s DeckSummary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path
	if path == MemoryPath {
		dsn = ""
	} else if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history: %w", err)
	}
	store := &Store{db: db, now: time.Now}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// DB exposes the underlying connection for tests and ad-hoc queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// EnsureSchema creates missing tables.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if err := EnsureSchema(ctx, s.db); err != nil {
		return fmt.Errorf("apply history schema: %w", err)
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// UpsertDeck stores the deck's questions in source order under its
// fingerprint and returns the deck id and key. Existing decks keep their
// original id.
func (s *Store) UpsertDeck(ctx context.Context, deck question.Deck) (string, string, error) {
	if ctx == nil {
		return "", "", errors.New("history: context is nil")
	}
	source := deck.SourceQuestions()
	canonical, err := question.CanonicalJSON(source)
	if err != nil {
		return "", "", err
	}
	key := deck.Key
	if key == "" {
		if key, err = question.DeckKey(source); err != nil {
			return "", "", err
		}
	}
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO decks (deck_id, deck_key, title, spec, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (deck_key) DO NOTHING`,
		uuid.NewString(),
		key,
		deck.Title,
		string(canonical),
		s.now().UTC(),
	); err != nil {
		return "", "", fmt.Errorf("upsert deck: %w", err)
	}
	var id string
	if err := s.db.QueryRowContext(ctx, `SELECT deck_id FROM decks WHERE deck_key = ?`, key).Scan(&id); err != nil {
		return "", "", fmt.Errorf("lookup deck id: %w", err)
	}
	return id, key, nil
}

// Record inserts an answer and returns its id.
func (s *Store) Record(ctx context.Context, answer Answer) (string, error) {
	if answer.SessionID == "" {
		return "", errors.New("history: session id is required")
	}
	if answer.DeckKey == "" {
		return "", errors.New("history: deck key is required")
	}
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = s.now()
	}
	id := uuid.NewString()
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO answers (answer_id, session_id, deck_key, deck_title, question_index,
		   question_text, selected, correct_option, is_correct, answered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		answer.SessionID,
		answer.DeckKey,
		answer.DeckTitle,
		answer.QuestionIndex,
		answer.QuestionText,
		answer.Selected,
		answer.CorrectOption,
		answer.Correct,
		answer.AnsweredAt.UTC(),
	); err != nil {
		return "", fmt.Errorf("record answer: %w", err)
	}
	return id, nil
}

// Summaries returns per-deck totals, most recently reviewed first.
func (s *Store) Summaries(ctx context.Context) ([]DeckSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT deck_key,
		       arg_max(deck_title, answered_at) AS title,
		       count(DISTINCT session_id) AS sessions,
		       count(*) AS answered,
		       count(*) FILTER (WHERE is_correct) AS correct,
		       max(answered_at) AS last_seen
		FROM answers
		GROUP BY deck_key
		ORDER BY last_seen DESC, deck_key`)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	summaries := []DeckSummary{}
	for rows.Next() {
		var summary DeckSummary
		if err := rows.Scan(
			&summary.DeckKey,
			&summary.Title,
			&summary.Sessions,
			&summary.Answered,
			&summary.Correct,
			&summary.LastSeen,
		); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read summaries: %w", err)
	}
	return summaries, nil
}

// FromReview converts a session answer into a history row. The question
// index refers to the source document, not the shuffled position.
func FromReview(sessionID string, deck question.Deck, answer review.Answer) Answer {
	return Answer{
		SessionID:     sessionID,
		DeckKey:       deck.Key,
		DeckTitle:     deck.Title,
		QuestionIndex: deck.SourceIndex(answer.Index),
		QuestionText:  answer.Question.Text,
		Selected:      answer.Selected.String(),
		CorrectOption: answer.Question.CorrectOptionID.String(),
		Correct:       answer.Correct,
		AnsweredAt:    answer.At,
	}
}

// Observer returns a session observer that records every answer for deck.
// Write failures are passed to onError when it is non-nil.
func (s *Store) Observer(ctx context.Context, sessionID string, deck question.Deck, onError func(error)) review.Observer {
	return func(answer review.Answer) {
		if _, err := s.Record(ctx, FromReview(sessionID, deck, answer)); err != nil && onError != nil {
			onError(err)
		}
	}
}
