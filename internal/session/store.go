package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"lessoncard/domain/card"
)

// Session holds one browser session's loaded copy of the record batch.
// Each session keeps its own copy so a reload in one tab never changes
// what another session is looking at.
type Session struct {
	ID       string
	Records  []card.Record
	LoadedAt time.Time
}

// Record returns the session's record with the given generated ID.
func (s *Session) Record(generatedID string) (card.Record, bool) {
	for _, rec := range s.Records {
		if rec.GeneratedID == generatedID {
			return rec, true
		}
	}
	return card.Record{}, false
}

// Store keeps sessions in memory, keyed by a UUID handed to the browser
// as a cookie.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	maxAge   time.Duration
}

// NewStore creates a session store. Sessions older than maxAge are
// removed by CleanupExpired.
func NewStore(maxAge time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		maxAge:   maxAge,
	}
}

// Put stores a fresh record batch under a new session ID and returns it.
func (st *Store) Put(records []card.Record) *Session {
	session := &Session{
		ID:       uuid.NewString(),
		Records:  records,
		LoadedAt: time.Now(),
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	return session
}

// Replace swaps the record batch held under an existing session ID,
// creating the session when the ID is unknown or expired.
func (st *Store) Replace(id string, records []card.Record) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if session, ok := st.sessions[id]; ok {
		session.Records = records
		session.LoadedAt = time.Now()
		return session
	}

	session := &Session{
		ID:       uuid.NewString(),
		Records:  records,
		LoadedAt: time.Now(),
	}
	st.sessions[session.ID] = session
	return session
}

// Get returns the session for an ID, or nil when absent.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// CleanupExpired removes sessions older than the store's max age and
// returns how many were dropped.
func (st *Store) CleanupExpired() int {
	cutoff := time.Now().Add(-st.maxAge)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, session := range st.sessions {
		if session.LoadedAt.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[SessionStore] Removed %d expired sessions", removed)
	}
	return removed
}
