package session

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"schedula/internal/chat"
)

// State is one caller's conversation memory. Sessions are keyed by the
// caller-supplied session ID, never shared across callers.
type State struct {
	SessionID  string
	LastIntent chat.Intent
	UpdatedAt  time.Time
}

// Store keeps per-session conversation state in a bounded LRU cache, so
// abandoned sessions age out instead of accumulating forever. States are
// held by value and the read-modify-write in Touch runs under the store
// mutex, so concurrent requests on the same session ID never race.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[string, State]
}

func NewStore(size int) (*Store, error) {
	cache, err := lru.New[string, State](size)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

// Get returns a copy of the state for a session ID, if still cached.
func (s *Store) Get(sessionID string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(sessionID)
}

// Touch records the intent of the latest exchange, creating the session
// on first contact, and returns the resulting state.
func (s *Store) Touch(sessionID string, intent chat.Intent, at time.Time) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.cache.Get(sessionID)
	if !ok {
		st = State{SessionID: sessionID}
	}
	st.LastIntent = intent
	st.UpdatedAt = at
	s.cache.Add(sessionID, st)
	return st
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
