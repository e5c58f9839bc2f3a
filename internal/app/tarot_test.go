package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komekomeaaa/tarot/internal/adapters/decks"
	"github.com/komekomeaaa/tarot/internal/adapters/memory"
	"github.com/komekomeaaa/tarot/internal/app"
	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/ports"
	"github.com/komekomeaaa/tarot/internal/reading"
	"github.com/komekomeaaa/tarot/internal/sigil"
)

type mockCatalogSource struct {
	err error
}

func (m *mockCatalogSource) Catalog(_ context.Context) (*domain.Catalog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return decks.MustLoad(), nil
}

type mockInterpreter struct {
	out  domain.Reading
	err  error
	seen ports.InterpretInput
}

func (m *mockInterpreter) Interpret(_ context.Context, in ports.InterpretInput) (domain.Reading, error) {
	m.seen = in
	return m.out, m.err
}

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

var march = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newService(interp ports.Interpreter, usage ports.UsageLimiter) (*app.ReadingService, *memory.SessionStore) {
	sessions := memory.NewSessionStore(0)
	svc := app.NewReadingService(&mockCatalogSource{}, interp, sessions, usage, fixedRNG{val: 0}, nil).
		WithClock(func() time.Time { return march })
	return svc, sessions
}

func loveContext() domain.UserContext {
	return domain.UserContext{Category: domain.CategoryLove, Goal: "reconnect", SigilCode: "VIEQ"}
}

func TestReadSpread_Success(t *testing.T) {
	interp := &mockInterpreter{out: domain.Reading{ID: "r1", Summary: "A reading."}}
	usage := memory.NewUsageLimiter().WithClock(func() time.Time { return march })
	svc, sessions := newService(interp, usage)

	resp, err := svc.ReadSpread(context.Background(), app.ReadSpreadRequest{
		UserID:    "u1",
		SessionID: "s1",
		Spread:    domain.SpreadThreeCard,
		User:      loveContext(),
	})
	require.NoError(t, err)

	require.Len(t, resp.Draw.Cards, 3)
	assert.Equal(t, domain.PosSituation, resp.Draw.Cards[0].PositionID)
	assert.Equal(t, march, resp.Draw.DrawnAt)
	assert.Equal(t, "r1", resp.Reading.ID)
	assert.Equal(t, domain.SpreadThreeCard, interp.seen.Spread)
	assert.Equal(t, loveContext(), interp.seen.User)

	st, err := usage.Check(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, st.Allowed)
	assert.Equal(t, "VIEQ", st.SigilType)

	sess, err := sessions.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, sess.Draw)
	assert.Equal(t, resp.Draw.Cards, sess.Draw.Cards)
}

func TestReadSpread_MonthlyLimit(t *testing.T) {
	usage := memory.NewUsageLimiter().WithClock(func() time.Time { return march })
	require.NoError(t, usage.Record(context.Background(), "u1", "VIEQ"))
	svc, _ := newService(&mockInterpreter{}, usage)

	_, err := svc.ReadSpread(context.Background(), app.ReadSpreadRequest{
		UserID: "u1",
		Spread: domain.SpreadOneCard,
		User:   loveContext(),
	})
	assert.ErrorIs(t, err, domain.ErrMonthlyLimit)
}

func TestReadSpread_BlockedReadingIsNotCounted(t *testing.T) {
	interp := &mockInterpreter{out: domain.Reading{Blocked: true}}
	usage := memory.NewUsageLimiter().WithClock(func() time.Time { return march })
	svc, _ := newService(interp, usage)

	_, err := svc.ReadSpread(context.Background(), app.ReadSpreadRequest{
		UserID: "u1",
		Spread: domain.SpreadOneCard,
		User:   loveContext(),
	})
	require.NoError(t, err)

	st, err := usage.Check(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, st.Allowed)
}

func TestReadSpread_Errors(t *testing.T) {
	tests := []struct {
		name    string
		catalog error
		interp  error
		req     app.ReadSpreadRequest
		want    error
	}{
		{"invalid category", nil, nil, app.ReadSpreadRequest{Spread: domain.SpreadOneCard, User: domain.UserContext{Category: "pets"}}, domain.ErrInvalidCategory},
		{"invalid sigil", nil, nil, app.ReadSpreadRequest{Spread: domain.SpreadOneCard, User: domain.UserContext{Category: domain.CategoryWork, SigilCode: "ABCD"}}, domain.ErrInvalidSigil},
		{"unknown spread", nil, nil, app.ReadSpreadRequest{Spread: "five_card", User: loveContext()}, domain.ErrUnknownSpread},
		{"catalog failure", domain.ErrCatalogInvalid, nil, app.ReadSpreadRequest{Spread: domain.SpreadOneCard, User: loveContext()}, domain.ErrCatalogInvalid},
		{"interpreter failure", nil, context.DeadlineExceeded, app.ReadSpreadRequest{Spread: domain.SpreadOneCard, User: loveContext()}, context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := app.NewReadingService(&mockCatalogSource{err: tt.catalog}, &mockInterpreter{err: tt.interp},
				memory.NewSessionStore(0), nil, fixedRNG{}, nil)
			_, err := svc.ReadSpread(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerate_FromSession(t *testing.T) {
	ctx := context.Background()
	composer := reading.NewComposer(decks.MustLoad(), fixedRNG{})
	svc, _ := newService(composer, nil)

	_, err := svc.Generate(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.Draw(ctx, "s1", domain.SpreadThreeCard)
	require.NoError(t, err)
	_, err = svc.Generate(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionPending)

	require.NoError(t, svc.SaveContext(ctx, "s1", loveContext()))
	r, err := svc.Generate(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, r.PositionReadings, 3)
	assert.Contains(t, r.Summary, "reconnect")

	err = svc.SaveContext(ctx, "s1", domain.UserContext{Category: "astrology"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestClassify(t *testing.T) {
	svc, _ := newService(&mockInterpreter{}, nil)

	res, err := svc.Classify(app.ClassifyRequest{
		Mode:   app.ModeBinary,
		Binary: []sigil.BinaryAnswer{{QuestionID: 1, Letter: "S"}, {QuestionID: 6, Letter: "C"}},
	})
	require.NoError(t, err)
	assert.Equal(t, sigil.Code("SCEQ"), res.Code)
	assert.Equal(t, res.Code, res.Profile.Code)

	res, err = svc.Classify(app.ClassifyRequest{Mode: app.ModeLikert})
	require.NoError(t, err)
	assert.Equal(t, sigil.DefaultCode, res.Code)
	assert.Len(t, res.Scores, 4)

	_, err = svc.Classify(app.ClassifyRequest{Mode: app.ModeLikert, Likert: []sigil.LikertAnswer{{QuestionID: 1, Letter: "V", Score: 3}}})
	assert.ErrorIs(t, err, domain.ErrInvalidAnswer)

	_, err = svc.Classify(app.ClassifyRequest{Mode: "tarot"})
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestQuestions(t *testing.T) {
	svc, _ := newService(&mockInterpreter{}, nil)

	q, err := svc.Questions(app.ModeLikert)
	require.NoError(t, err)
	assert.Len(t, q, len(sigil.LikertQuestions))

	_, err = svc.Questions("essay")
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestUsage(t *testing.T) {
	ctx := context.Background()
	usage := memory.NewUsageLimiter().WithClock(func() time.Time { return march })
	svc, _ := newService(&mockInterpreter{}, usage)

	st, err := svc.Usage(ctx, "u1", app.ActionCheck, "")
	require.NoError(t, err)
	assert.True(t, st.Allowed)

	_, err = svc.Usage(ctx, "u1", app.ActionRecord, "")
	assert.ErrorIs(t, err, domain.ErrSigilRequired)

	st, err = svc.Usage(ctx, "u1", app.ActionRecord, "SCLD")
	require.NoError(t, err)
	assert.False(t, st.Allowed)
	assert.Equal(t, "2026-03-10", st.LastReadingDate)

	_, err = svc.Usage(ctx, "u1", app.ActionRecord, "SCLD")
	assert.True(t, errors.Is(err, domain.ErrMonthlyLimit))

	_, err = svc.Usage(ctx, "u1", "reset", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
}

func TestUsage_Disabled(t *testing.T) {
	svc, _ := newService(&mockInterpreter{}, nil)
	st, err := svc.Usage(context.Background(), "u1", app.ActionRecord, "VIEQ")
	require.NoError(t, err)
	assert.True(t, st.Allowed)
}
