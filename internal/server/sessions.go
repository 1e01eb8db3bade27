package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"quizmd/internal/question"
	"quizmd/internal/review"
)

// Session store limits used when the config leaves them unset.
const (
	defaultMaxSessions = 1000
	defaultSessionTTL  = 2 * time.Hour
)

// sessionEntry pairs a review session with the deck it was created from.
// mu serializes access to session, which is not goroutine-safe.
type sessionEntry struct {
	mu       sync.Mutex
	deck     question.Deck
	session  *review.Session
	lastUsed time.Time
}

// sessionStore keeps review sessions in memory by id. Sessions idle for
// longer than ttl are dropped, and the least recently used session is
// evicted once maxSessions is reached.
type sessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*sessionEntry
	maxSessions int
	ttl         time.Duration
	newID       func() string
	now         func() time.Time
}

func newSessionStore(maxSessions int, ttl time.Duration) *sessionStore {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &sessionStore{
		sessions:    map[string]*sessionEntry{},
		maxSessions: maxSessions,
		ttl:         ttl,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// create registers a session for deck. opts receives the new id so
// observers can tag answers with it.
func (s *sessionStore) create(deck question.Deck, opts func(id string) []review.Option) string {
	id := s.newID()
	var sessionOpts []review.Option
	if opts != nil {
		sessionOpts = opts(id)
	}
	entry := &sessionEntry{
		deck:    deck,
		session: review.New(deck.Questions, sessionOpts...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.evictExpired(now)
	for len(s.sessions) >= s.maxSessions {
		s.evictOldest()
	}
	entry.lastUsed = now
	s.sessions[id] = entry
	return id
}

// with runs fn while holding the session's lock. ok is false for unknown or
// expired ids.
func (s *sessionStore) with(id string, fn func(entry *sessionEntry)) bool {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	now := s.now()
	if ok && now.Sub(entry.lastUsed) > s.ttl {
		delete(s.sessions, id)
		ok = false
	}
	if ok {
		entry.lastUsed = now
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(entry)
	return true
}

// len reports the number of stored sessions, expired ones included.
func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// evictExpired drops idle sessions. Callers hold s.mu.
func (s *sessionStore) evictExpired(now time.Time) {
	for id, entry := range s.sessions {
		if now.Sub(entry.lastUsed) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// evictOldest drops the least recently used session. Callers hold s.mu.
func (s *sessionStore) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, entry := range s.sessions {
		if oldestID == "" || entry.lastUsed.Before(oldest) {
			oldestID, oldest = id, entry.lastUsed
		}
	}
	delete(s.sessions, oldestID)
}
