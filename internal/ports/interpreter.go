package ports

import (
	"context"

	"github.com/komekomeaaa/tarot/internal/domain"
)

// InterpretInput holds everything needed to write a reading.
type InterpretInput struct {
	Spread domain.SpreadType
	Cards  []domain.DrawnCard
	User   domain.UserContext
}

// Interpreter turns a draw and a user context into a reading.
type Interpreter interface {
	Interpret(ctx context.Context, in InterpretInput) (domain.Reading, error)
}
