package ports

import (
	"context"

	"github.com/komekomeaaa/tarot/internal/domain"
)

// SessionStore keeps the answers and the draw of a session. Load returns
// domain.ErrSessionNotFound for unknown or expired ids.
type SessionStore interface {
	Load(ctx context.Context, id string) (domain.Session, error)
	SaveContext(ctx context.Context, id string, uc domain.UserContext) error
	SaveDraw(ctx context.Context, id string, draw domain.DrawResult) error
}

// UsageLimiter enforces one reading per user per calendar month.
type UsageLimiter interface {
	Check(ctx context.Context, userID string) (domain.UsageStatus, error)
	Record(ctx context.Context, userID, sigilType string) error
}
