package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobhive/market-system/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService signs and verifies session credentials. Logout is purely a
// client-side discard: there is no server-side revocation list, so an
// issued credential stays valid until its expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue embeds the identity payload in an HS256 token expiring after the
// configured TTL. A client-supplied "exp" claim is overwritten.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = time.Now().Add(s.ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString(s.secret)
}

// Verify recovers the identity payload from a presented credential. Every
// failure mode (wrong signature, malformed token, expired, wrong algorithm)
// collapses into domain.ErrInvalidCredential; malformed input never panics.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredential
	}

	claims := make(domain.Claims, len(mc))
	for k, v := range mc {
		claims[k] = v
	}
	// exp is a transport detail, not part of the identity payload.
	delete(claims, "exp")
	return claims, nil
}
