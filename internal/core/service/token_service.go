package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/niini/minishop/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// JWTTokenService issues and validates HS256-signed tokens. It is stateless:
// the only shared state is the signing secret, set at construction and never
// mutated, so all methods are safe for concurrent use.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the subject with issued-at and expiry claims.
func (s *JWTTokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate reports whether the token has a valid signature and has not
// expired. Malformed input yields false, never an error.
func (s *JWTTokenService) Validate(token string) bool {
	_, err := s.parse(token)
	return err == nil
}

// Subject extracts the subject claim from a verified token.
func (s *JWTTokenService) Subject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *JWTTokenService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
