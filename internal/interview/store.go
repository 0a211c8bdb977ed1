package interview

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	mu      sync.Mutex
	session *Session
	gone    bool
}

type Stats struct {
	Active int          `json:"activeSessions"`
	ByKind map[Kind]int `json:"breakdown"`
}

// Store maps session ids to sessions. The map lock only guards lookups,
// inserts and deletes; each session is mutated under its own lock so work on
// one session never blocks another.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry

	now   func() time.Time
	newID func(Kind, time.Time) string
}

type Option func(*Store)

// WithClock overrides the time source used for creation and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(fn func(Kind, time.Time) string) Option {
	return func(s *Store) { s.newID = fn }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: map[string]*entry{},
		now:      time.Now,
		newID:    defaultID,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func defaultID(k Kind, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", k.Prefix(), now.UnixMilli(), suffix)
}

// Create registers a new session for the flow. questions is copied and never
// re-fetched afterwards.
func (s *Store) Create(flow Flow, track, tech string, questions map[int][]string) *Session {
	now := s.now()
	sess := &Session{
		Kind:      flow.Kind,
		Track:     track,
		Tech:      tech,
		Questions: cloneRounds(questions),
		Answers:   map[int][]string{},
		StartedAt: now,
		ExpiresAt: now.Add(flow.TTL),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID(flow.Kind, now)
	for {
		if _, taken := s.sessions[id]; !taken {
			break
		}
		id = defaultID(flow.Kind, now)
	}
	sess.ID = id
	s.sessions[id] = &entry{session: sess}
	return sess.clone()
}

// lookup returns the live entry for id, dropping it if it has expired.
func (s *Store) lookup(id string) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if e.session.expired(s.now()) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	return e, nil
}

// Update runs fn against the session under its lock. The session passed to
// fn must not be retained after fn returns.
func (s *Store) Update(id string, fn func(*Session) error) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return ErrNotFound
	}
	return fn(e.session)
}

// Get returns a snapshot of the session without consuming it.
func (s *Store) Get(id string) (*Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return nil, ErrNotFound
	}
	return e.session.clone(), nil
}

// Take removes the session and returns its final state. Only one caller ever
// receives a given session.
func (s *Store) Take(id string) (*Session, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	now := s.now()
	s.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone || e.session.expired(now) {
		e.gone = true
		return nil, ErrNotFound
	}
	e.gone = true
	return e.session.clone(), nil
}

// Delete removes the session if present.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		e.mu.Lock()
		e.gone = true
		e.mu.Unlock()
	}
}

// Sweep drops every expired session and reports how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var expired []*entry
	for id, e := range s.sessions {
		if e.session.expired(now) {
			delete(s.sessions, id)
			expired = append(expired, e)
		}
	}
	s.mu.Unlock()

	for _, e := range expired {
		e.mu.Lock()
		e.gone = true
		e.mu.Unlock()
	}
	return len(expired)
}

func (s *Store) Stats() Stats {
	now := s.now()
	st := Stats{ByKind: map[Kind]int{KindBasic: 0, KindReal: 0}}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.sessions {
		if e.session.expired(now) {
			continue
		}
		st.Active++
		if strings.HasPrefix(id, KindReal.Prefix()+"_") {
			st.ByKind[KindReal]++
		} else {
			st.ByKind[KindBasic]++
		}
	}
	return st
}

// Len reports how many entries the store holds, including expired sessions
// not yet swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
