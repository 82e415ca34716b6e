package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = 45 * time.Minute

var (
	// ErrMalformed is returned when the token cannot be parsed at all.
	ErrMalformed = errors.New("malformed token")
	// ErrInvalidSignature is returned when the signature does not match.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpired is returned when the embedded expiry has passed.
	ErrExpired = errors.New("token expired")
)

// Claims is the decoded payload of a verified token. Kind is bound into the
// signed payload so each guard can reject tokens minted for another kind.
type Claims struct {
	Kind    domain.Kind
	Subject string
	Email   string
}

// TokenManager issues and verifies HS256-signed identity tokens. The signing
// secret is fixed at construction; rotating it invalidates all outstanding
// tokens with no grace period.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager returns a TokenManager signing with secret. A non-positive
// ttl falls back to DefaultTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs claims into a token expiring ttl from now.
func (m *TokenManager) Issue(claims Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"kind":  string(claims.Kind),
		"sub":   claims.Subject,
		"email": claims.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	})
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims.
func (m *TokenManager) Verify(token string) (*Claims, error) {
	parsed := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		default:
			return nil, ErrMalformed
		}
	}
	if !tkn.Valid {
		return nil, ErrInvalidSignature
	}

	kind, _ := parsed["kind"].(string)
	sub, _ := parsed["sub"].(string)
	email, _ := parsed["email"].(string)
	if kind == "" || sub == "" {
		return nil, ErrMalformed
	}

	return &Claims{Kind: domain.Kind(kind), Subject: sub, Email: email}, nil
}
