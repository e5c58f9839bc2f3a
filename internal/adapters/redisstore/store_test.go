package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komekomeaaa/tarot/internal/adapters/redisstore"
	"github.com/komekomeaaa/tarot/internal/domain"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	s := redisstore.NewSessionStore(client, redisstore.Options{SessionTTL: time.Hour})

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	uc := domain.UserContext{Category: domain.CategoryMoney, Goal: "save more", Urgency: 3}
	require.NoError(t, s.SaveContext(ctx, "abc", uc))
	draw := domain.DrawResult{
		SpreadID: domain.SpreadOneCard,
		DrawnAt:  time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
		Cards:    []domain.DrawnCard{{PositionID: domain.PosTheme, CardID: "PE_10", Orientation: domain.Reversed}},
	}
	require.NoError(t, s.SaveDraw(ctx, "abc", draw))

	require.True(t, mr.Exists("tarot:session:abc"))
	assert.Equal(t, time.Hour, mr.TTL("tarot:session:abc"))

	sess, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, sess.Context)
	require.NotNil(t, sess.Draw)
	assert.Equal(t, uc, *sess.Context)
	assert.Equal(t, draw.Cards, sess.Draw.Cards)
	assert.True(t, draw.DrawnAt.Equal(sess.Draw.DrawnAt))

	mr.FastForward(2 * time.Hour)
	_, err = s.Load(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_CorruptPayload(t *testing.T) {
	mr, client := newRedis(t)
	require.NoError(t, mr.Set("tarot:session:bad", "{not json"))

	_, err := redisstore.NewSessionStore(client, redisstore.Options{}).Load(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestUsageLimiter(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	now := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	l := redisstore.NewUsageLimiter(client, redisstore.Options{Prefix: "test"}).
		WithClock(func() time.Time { return now })

	st, err := l.Check(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, st.Allowed)

	require.NoError(t, l.Record(ctx, "u1", "SCLD"))
	assert.Equal(t, "2026-02-14", mr.HGet("test:usage:u1", "lastReadingDate"))
	assert.Equal(t, "SCLD", mr.HGet("test:usage:u1", "sigilType"))
	assert.Equal(t, "2026-02-14T10:00:00Z", mr.HGet("test:usage:u1", "updatedAt"))

	st, err = l.Check(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, st.Allowed)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), st.NextAvailable)

	now = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	st, err = l.Check(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, st.Allowed)
	assert.Equal(t, "2026-02-14", st.LastReadingDate)
}

func TestUsageLimiter_BadDate(t *testing.T) {
	mr, client := newRedis(t)
	mr.HSet("tarot:usage:u1", "lastReadingDate", "yesterday")

	_, err := redisstore.NewUsageLimiter(client, redisstore.Options{}).Check(context.Background(), "u1")
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	mr, client := newRedis(t)
	require.NoError(t, redisstore.Ping(context.Background(), client))
	mr.Close()
	assert.Error(t, redisstore.Ping(context.Background(), client))
}
