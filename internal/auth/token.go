package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/collabhq/roster/internal/models"
	srvErrors "github.com/collabhq/roster/pkg/errors"
)

// Claims is the token payload: the registered sub/iat/exp fields plus the
// subject's email.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256 bearer tokens. The
// signing key is loaded once at startup; there is no revocation list, so an
// issued token stays valid until its expiry regardless of logout calls.
type TokenService struct {
	key []byte
	ttl time.Duration
}

func NewTokenService(signingKey string, ttl time.Duration) *TokenService {
	return &TokenService{key: []byte(signingKey), ttl: ttl}
}

// Issue signs a token for the given subject with the expiry fixed at
// issuance time plus the configured TTL.
func (s *TokenService) Issue(subject, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.key)
}

// Verify parses and validates a token, returning the embedded identity.
// Failures map to exactly one of the three token error kinds so logs and
// tests can distinguish them; callers of the HTTP layer never see which.
func (s *TokenService) Verify(tokenString string) (models.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, srvErrors.NewTokenSignatureError()
		}
		return s.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Identity{}, srvErrors.NewTokenExpiredError()
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), srvErrors.IsTokenSignatureError(err):
			return models.Identity{}, srvErrors.NewTokenSignatureError()
		default:
			return models.Identity{}, srvErrors.NewTokenMalformedError()
		}
	}
	if !token.Valid {
		return models.Identity{}, srvErrors.NewTokenSignatureError()
	}

	return models.Identity{Subject: claims.Subject, Email: claims.Email}, nil
}
