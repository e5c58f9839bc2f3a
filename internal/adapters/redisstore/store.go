// Package redisstore keeps sessions and the monthly allowance in Redis.
//
// Keys:
//
//	tarot:session:<id>  JSON-encoded domain.Session, expires after the TTL
//	tarot:usage:<user>  hash with lastReadingDate, sigilType, updatedAt
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/komekomeaaa/tarot/internal/domain"
)

const (
	defaultPrefix = "tarot"

	fieldLastReading = "lastReadingDate"
	fieldSigilType   = "sigilType"
	fieldUpdatedAt   = "updatedAt"
)

// Options configures the Redis stores.
type Options struct {
	Prefix     string        // key prefix, default "tarot"
	SessionTTL time.Duration // 0 = no expiry
}

func (o Options) prefix() string {
	if o.Prefix == "" {
		return defaultPrefix
	}
	return o.Prefix
}

// SessionStore implements ports.SessionStore.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionStore(client redis.UniversalClient, opts Options) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: opts.prefix(),
		ttl:    opts.SessionTTL,
		now:    time.Now,
	}
}

func (s *SessionStore) key(id string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, id)
}

func (s *SessionStore) Load(ctx context.Context, id string) (domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("get session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return sess, nil
}

func (s *SessionStore) SaveContext(ctx context.Context, id string, uc domain.UserContext) error {
	return s.update(ctx, id, func(sess *domain.Session) { sess.Context = &uc })
}

func (s *SessionStore) SaveDraw(ctx context.Context, id string, draw domain.DrawResult) error {
	return s.update(ctx, id, func(sess *domain.Session) { sess.Draw = &draw })
}

// update is a read-modify-write without WATCH; a session belongs to one
// browser tab, so concurrent writers are not expected.
func (s *SessionStore) update(ctx context.Context, id string, fn func(*domain.Session)) error {
	sess, err := s.Load(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		sess = domain.Session{ID: id}
	} else if err != nil {
		return err
	}

	fn(&sess)
	sess.UpdatedAt = s.now().UTC()

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// UsageLimiter implements ports.UsageLimiter with one hash per user. Check
// and Record are separate round trips, so two concurrent readings in the
// same month can both pass.
type UsageLimiter struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewUsageLimiter(client redis.UniversalClient, opts Options) *UsageLimiter {
	return &UsageLimiter{
		client: client,
		prefix: opts.prefix(),
		now:    time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (l *UsageLimiter) WithClock(now func() time.Time) *UsageLimiter {
	l.now = now
	return l
}

func (l *UsageLimiter) key(userID string) string {
	return fmt.Sprintf("%s:usage:%s", l.prefix, userID)
}

func (l *UsageLimiter) Check(ctx context.Context, userID string) (domain.UsageStatus, error) {
	rec, err := l.client.HGetAll(ctx, l.key(userID)).Result()
	if err != nil {
		return domain.UsageStatus{}, fmt.Errorf("get usage: %w", err)
	}

	last := rec[fieldLastReading]
	if last == "" {
		return domain.UsageStatus{Allowed: true}, nil
	}

	now := l.now()
	lastDate, err := time.ParseInLocation(domain.UsageDateLayout, last, now.Location())
	if err != nil {
		return domain.UsageStatus{}, fmt.Errorf("parse %s %q: %w", fieldLastReading, last, err)
	}

	st := domain.UsageStatus{
		Allowed:         !domain.SameMonth(now, lastDate),
		LastReadingDate: last,
		SigilType:       rec[fieldSigilType],
	}
	if !st.Allowed {
		st.NextAvailable = domain.NextMonth(now)
	}
	return st, nil
}

func (l *UsageLimiter) Record(ctx context.Context, userID, sigilType string) error {
	now := l.now()
	err := l.client.HSet(ctx, l.key(userID),
		fieldLastReading, now.Format(domain.UsageDateLayout),
		fieldSigilType, sigilType,
		fieldUpdatedAt, now.UTC().Format(time.RFC3339),
	).Err()
	if err != nil {
		return fmt.Errorf("record usage: %w", err)
	}
	return nil
}

// Ping reports whether the server answers, for health checks.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	return client.Ping(ctx).Err()
}
