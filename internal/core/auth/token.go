package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openblog/blog-api/internal/core/domain"
)

const (
	// MinSecretBytes is the shortest signing secret accepted: 256 bits,
	// matching the security margin of HMAC-SHA256.
	MinSecretBytes = 32

	// DefaultTokenTTL is the token validity window when none is configured.
	DefaultTokenTTL = time.Hour
)

// Verification failures, ordered by what is checked first: signature, then
// issuer/audience, then expiry. Anything else unparseable is malformed.
var (
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenClaims    = errors.New("token claims invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// Principal is the identity and role recovered from a verified token. It
// lives for the duration of one request and is passed explicitly to every
// handler and policy check. The zero value is the anonymous principal.
type Principal struct {
	Username string
	Role     domain.Role
}

// Anonymous reports whether no authenticated identity is present.
func (p Principal) Anonymous() bool {
	return p.Username == ""
}

// Claims is the signed claim set carried by every issued token.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenService issues and verifies HS256 bearer tokens. The secret, issuer,
// and audience are fixed at construction and never mutated, so a single
// instance is safe for concurrent use.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenService builds a TokenService. It refuses secrets shorter than
// MinSecretBytes so a misconfigured deployment fails at startup instead of
// minting weakly signed tokens.
func NewTokenService(secret, issuer, audience string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < MinSecretBytes {
		return nil, fmt.Errorf("auth: signing secret must be at least %d bytes", MinSecretBytes)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}, nil
}

// Issue signs a token carrying the principal's identity and role along with
// the configured issuer, audience, and validity window.
func (s *TokenService) Issue(p Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: string(p.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a bearer token and recovers its Principal.
// Any failure yields the anonymous principal and one of the Err* sentinels;
// there is no partial success.
func (s *TokenService) Verify(token string) (Principal, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Principal{}, ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return Principal{}, ErrTokenClaims
	case errors.Is(err, jwt.ErrTokenExpired):
		return Principal{}, ErrTokenExpired
	default:
		return Principal{}, ErrTokenMalformed
	}
	if !tkn.Valid {
		return Principal{}, ErrTokenMalformed
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok || claims.Subject == "" {
		return Principal{}, ErrTokenClaims
	}
	return Principal{Username: claims.Subject, Role: role}, nil
}
