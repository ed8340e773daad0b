package ports

import "github.com/jobhive/market-system/internal/core/domain"

// TokenService issues and verifies signed, time-bounded session credentials.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	// Verify returns the embedded identity payload, or
	// domain.ErrInvalidCredential on bad signature, malformed input, or
	// expiry. It never panics on malformed tokens.
	Verify(token string) (domain.Claims, error)
}
