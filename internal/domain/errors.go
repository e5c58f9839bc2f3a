package domain

import "errors"

var (
	ErrInvalidN        = errors.New("n must be at least 1")
	ErrNExceedsDeck    = errors.New("n exceeds number of cards in deck")
	ErrUnknownSpread   = errors.New("unknown spread")
	ErrCatalogInvalid  = errors.New("invalid card catalog")
	ErrInvalidSigil    = errors.New("invalid sigil code")
	ErrInvalidAnswer   = errors.New("invalid answer")
	ErrSigilRequired   = errors.New("sigil code is required")
	ErrMonthlyLimit    = errors.New("a reading was already taken this month")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionPending  = errors.New("session has no context or draw yet")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidMode     = errors.New("invalid question mode")
	ErrInvalidAction   = errors.New("invalid usage action")
)
