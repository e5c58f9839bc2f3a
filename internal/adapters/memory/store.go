// Package memory holds in-process session and usage stores for single-node
// runs and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/komekomeaaa/tarot/internal/domain"
)

// SessionStore keeps sessions in a map. Entries older than ttl are treated
// as missing; a zero ttl keeps them forever.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	s.now = now
	return s
}

func (s *SessionStore) Load(_ context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		delete(s.sessions, id)
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) SaveContext(_ context.Context, id string, uc domain.UserContext) error {
	s.update(id, func(sess *domain.Session) { sess.Context = &uc })
	return nil
}

func (s *SessionStore) SaveDraw(_ context.Context, id string, draw domain.DrawResult) error {
	s.update(id, func(sess *domain.Session) { sess.Draw = &draw })
	return nil
}

func (s *SessionStore) update(id string, fn func(*domain.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		sess = domain.Session{ID: id}
	}
	fn(&sess)
	sess.UpdatedAt = s.now()
	s.sessions[id] = sess
}

func (s *SessionStore) expired(sess domain.Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.UpdatedAt) > s.ttl
}

type usageRecord struct {
	lastReading time.Time
	sigilType   string
}

// UsageLimiter allows one reading per user per calendar month.
type UsageLimiter struct {
	mu      sync.Mutex
	records map[string]usageRecord
	now     func() time.Time
}

func NewUsageLimiter() *UsageLimiter {
	return &UsageLimiter{
		records: make(map[string]usageRecord),
		now:     time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (l *UsageLimiter) WithClock(now func() time.Time) *UsageLimiter {
	l.now = now
	return l
}

func (l *UsageLimiter) Check(_ context.Context, userID string) (domain.UsageStatus, error) {
	l.mu.Lock()
	rec, ok := l.records[userID]
	l.mu.Unlock()

	if !ok {
		return domain.UsageStatus{Allowed: true}, nil
	}
	now := l.now()
	st := domain.UsageStatus{
		Allowed:         !domain.SameMonth(now, rec.lastReading),
		LastReadingDate: rec.lastReading.Format(domain.UsageDateLayout),
		SigilType:       rec.sigilType,
	}
	if !st.Allowed {
		st.NextAvailable = domain.NextMonth(now)
	}
	return st, nil
}

func (l *UsageLimiter) Record(_ context.Context, userID, sigilType string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[userID] = usageRecord{lastReading: l.now(), sigilType: sigilType}
	return nil
}
