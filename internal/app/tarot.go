package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/ports"
	"github.com/komekomeaaa/tarot/internal/sigil"
)

// ReadSpreadRequest is the application-level input (no HTTP types).
type ReadSpreadRequest struct {
	UserID    string
	SessionID string
	Spread    domain.SpreadType
	User      domain.UserContext
}

// ReadSpreadResponse is the application-level output.
type ReadSpreadResponse struct {
	Draw      domain.DrawResult
	Reading   domain.Reading
	LatencyMS int64
}

// ClassifyRequest carries one answer sheet. Mode selects which slice is read.
type ClassifyRequest struct {
	Mode   string
	Binary []sigil.BinaryAnswer
	Likert []sigil.LikertAnswer
}

// ClassifyResult is a resolved sigil with its profile.
type ClassifyResult struct {
	Code    sigil.Code        `json:"code"`
	Profile sigil.Profile     `json:"profile"`
	Scores  []sigil.AxisScore `json:"scores,omitempty"`
}

// Question modes.
const (
	ModeBinary = "binary"
	ModeLikert = "likert"
)

// Usage actions.
const (
	ActionCheck  = "check"
	ActionRecord = "record"
)

// ReadingService orchestrates draws, sessions, the monthly allowance and
// interpretation.
type ReadingService struct {
	catalogs    ports.CatalogSource
	interpreter ports.Interpreter
	sessions    ports.SessionStore
	usage       ports.UsageLimiter
	rng         domain.RNG
	logger      *slog.Logger
	now         func() time.Time
}

// NewReadingService wires the service. usage may be nil to disable the
// monthly allowance.
func NewReadingService(cs ports.CatalogSource, interp ports.Interpreter, sessions ports.SessionStore, usage ports.UsageLimiter, rng domain.RNG, logger *slog.Logger) *ReadingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadingService{
		catalogs:    cs,
		interpreter: interp,
		sessions:    sessions,
		usage:       usage,
		rng:         rng,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *ReadingService) WithClock(now func() time.Time) *ReadingService {
	s.now = now
	return s
}

// Catalog returns the card catalog.
func (s *ReadingService) Catalog(ctx context.Context) (*domain.Catalog, error) {
	return s.catalogs.Catalog(ctx)
}

// Spreads lists the supported layouts.
func (s *ReadingService) Spreads() []domain.SpreadDefinition {
	return domain.Spreads()
}

// Draw deals a spread and stores it on the session when one is given.
func (s *ReadingService) Draw(ctx context.Context, sessionID string, spread domain.SpreadType) (domain.DrawResult, error) {
	catalog, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return domain.DrawResult{}, fmt.Errorf("get catalog: %w", err)
	}

	draw, err := domain.DrawSpread(catalog, spread, s.rng, s.now())
	if err != nil {
		return domain.DrawResult{}, fmt.Errorf("draw spread: %w", err)
	}
	s.logger.InfoContext(ctx, "spread drawn", "spread", spread, "cards", len(draw.Cards))

	if sessionID != "" {
		if err := s.sessions.SaveDraw(ctx, sessionID, draw); err != nil {
			return domain.DrawResult{}, fmt.Errorf("save draw: %w", err)
		}
	}
	return draw, nil
}

// SaveContext validates and stores the user's answers on a session.
func (s *ReadingService) SaveContext(ctx context.Context, sessionID string, uc domain.UserContext) error {
	if err := validateContext(uc); err != nil {
		return err
	}
	if err := s.sessions.SaveContext(ctx, sessionID, uc); err != nil {
		return fmt.Errorf("save context: %w", err)
	}
	return nil
}

// Generate interprets the draw and context already stored on a session.
func (s *ReadingService) Generate(ctx context.Context, sessionID string) (domain.Reading, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("load session: %w", err)
	}
	if sess.Context == nil || sess.Draw == nil {
		return domain.Reading{}, domain.ErrSessionPending
	}
	return s.interpret(ctx, sess.Draw.SpreadID, sess.Draw.Cards, *sess.Context)
}

// ReadSpread runs a whole reading: allowance check, draw, interpretation,
// allowance record and session persistence.
func (s *ReadingService) ReadSpread(ctx context.Context, req ReadSpreadRequest) (ReadSpreadResponse, error) {
	if err := validateContext(req.User); err != nil {
		return ReadSpreadResponse{}, err
	}

	limited := s.usage != nil && req.UserID != ""
	if limited {
		st, err := s.usage.Check(ctx, req.UserID)
		if err != nil {
			return ReadSpreadResponse{}, fmt.Errorf("check usage: %w", err)
		}
		if !st.Allowed {
			s.logger.InfoContext(ctx, "reading denied", "user_id", req.UserID, "last_reading_date", st.LastReadingDate)
			return ReadSpreadResponse{}, domain.ErrMonthlyLimit
		}
	}

	draw, err := s.Draw(ctx, "", req.Spread)
	if err != nil {
		return ReadSpreadResponse{}, err
	}

	start := time.Now()
	reading, err := s.interpret(ctx, draw.SpreadID, draw.Cards, req.User)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return ReadSpreadResponse{}, err
	}

	if limited && !reading.Blocked {
		if err := s.usage.Record(ctx, req.UserID, req.User.SigilCode); err != nil {
			return ReadSpreadResponse{}, fmt.Errorf("record usage: %w", err)
		}
	}

	if req.SessionID != "" {
		if err := s.sessions.SaveContext(ctx, req.SessionID, req.User); err != nil {
			return ReadSpreadResponse{}, fmt.Errorf("save context: %w", err)
		}
		if err := s.sessions.SaveDraw(ctx, req.SessionID, draw); err != nil {
			return ReadSpreadResponse{}, fmt.Errorf("save draw: %w", err)
		}
	}

	return ReadSpreadResponse{
		Draw:      draw,
		Reading:   reading,
		LatencyMS: latency,
	}, nil
}

func (s *ReadingService) interpret(ctx context.Context, spread domain.SpreadType, cards []domain.DrawnCard, uc domain.UserContext) (domain.Reading, error) {
	reading, err := s.interpreter.Interpret(ctx, ports.InterpretInput{
		Spread: spread,
		Cards:  cards,
		User:   uc,
	})
	if err != nil {
		return domain.Reading{}, fmt.Errorf("interpret: %w", err)
	}
	if reading.Blocked {
		s.logger.WarnContext(ctx, "reading blocked by safety filter",
			"category", uc.Category,
			"warnings", warningTypes(reading.Warnings),
		)
	}
	return reading, nil
}

// Classify resolves an answer sheet to a sigil code.
func (s *ReadingService) Classify(req ClassifyRequest) (ClassifyResult, error) {
	var res ClassifyResult
	switch req.Mode {
	case ModeBinary:
		if err := sigil.ValidateBinary(req.Binary); err != nil {
			return ClassifyResult{}, err
		}
		res.Code = sigil.ClassifyBinary(req.Binary)
	case ModeLikert:
		if err := sigil.ValidateLikert(req.Likert); err != nil {
			return ClassifyResult{}, err
		}
		res.Code, res.Scores = sigil.ClassifyLikert(req.Likert)
	default:
		return ClassifyResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidMode, req.Mode)
	}
	res.Profile, _ = sigil.LookupProfile(res.Code)
	return res, nil
}

// Questions returns the question bank for a mode.
func (s *ReadingService) Questions(mode string) (any, error) {
	switch mode {
	case ModeBinary, "":
		return sigil.BinaryQuestions, nil
	case ModeLikert:
		return sigil.LikertQuestions, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
}

// Usage checks or records the monthly allowance of a user. Recording while
// the month is used up returns ErrMonthlyLimit with the current status.
func (s *ReadingService) Usage(ctx context.Context, userID, action, sigilType string) (domain.UsageStatus, error) {
	if s.usage == nil {
		return domain.UsageStatus{Allowed: true}, nil
	}
	switch action {
	case ActionCheck:
		st, err := s.usage.Check(ctx, userID)
		if err != nil {
			return domain.UsageStatus{}, fmt.Errorf("check usage: %w", err)
		}
		return st, nil
	case ActionRecord:
		if sigilType == "" {
			return domain.UsageStatus{}, domain.ErrSigilRequired
		}
		st, err := s.usage.Check(ctx, userID)
		if err != nil {
			return domain.UsageStatus{}, fmt.Errorf("check usage: %w", err)
		}
		if !st.Allowed {
			s.logger.InfoContext(ctx, "usage record denied", "user_id", userID)
			return st, domain.ErrMonthlyLimit
		}
		if err := s.usage.Record(ctx, userID, sigilType); err != nil {
			return domain.UsageStatus{}, fmt.Errorf("record usage: %w", err)
		}
		st, err = s.usage.Check(ctx, userID)
		if err != nil {
			return domain.UsageStatus{}, fmt.Errorf("check usage: %w", err)
		}
		return st, nil
	}
	return domain.UsageStatus{}, fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
}

func validateContext(uc domain.UserContext) error {
	if !uc.Category.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCategory, uc.Category)
	}
	if uc.SigilCode != "" {
		if _, err := sigil.ParseCode(uc.SigilCode); err != nil {
			return err
		}
	}
	return nil
}

func warningTypes(ws []domain.SafetyWarning) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Type)
	}
	return out
}
