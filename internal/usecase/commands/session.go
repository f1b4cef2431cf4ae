package commands

import (
	"sync"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"

	"github.com/google/uuid"
)

// session is one booking surface: a single active draft and the venue it
// was built from. mu serializes every mutation of the draft.
type session struct {
	mu       sync.Mutex
	id       uuid.UUID
	venue    *venue.Venue
	draft    *reservation.Draft
	stale    bool
	adjusted bool
}

// markStale is the refresh hook invoked after a confirmed create or update;
// the venue is re-fetched on the next access. Callers hold mu.
func (s *session) markStale() {
	s.stale = true
}

func (s *session) view() *DraftView {
	return newDraftView(s.id, s.draft, s.adjusted)
}

// SessionStore keeps draft sessions in memory for the lifetime of the process.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*session)}
}

func (st *SessionStore) add(v *venue.Venue, d *reservation.Draft) *session {
	s := &session{id: uuid.New(), venue: v, draft: d}
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

func (st *SessionStore) get(id uuid.UUID) (*session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *SessionStore) remove(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
