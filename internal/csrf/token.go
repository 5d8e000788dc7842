package csrf

import (
	"crypto/subtle"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/membership-service/pkg/util"
)

// CookieName is the cookie carrying the double-submit counterpart of
// the issued token.
const CookieName = "csrf_token"

// TokenManager issues and verifies signed anti-forgery tokens. Tokens
// are not stored server-side; the signing secret is the only state.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue builds and signs a short-lived token.
func (tm *TokenManager) Issue() (string, time.Time, error) {
	expiresAt := time.Now().Add(tm.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks the request token against its cookie counterpart. Both
// must be present, equal, carry a valid signature, and be unexpired.
func (tm *TokenManager) Verify(requestToken, cookieToken string) error {
	if requestToken == "" || cookieToken == "" {
		return util.NewForbidden("invalid csrf token")
	}
	if subtle.ConstantTimeCompare([]byte(requestToken), []byte(cookieToken)) != 1 {
		return util.NewForbidden("invalid csrf token")
	}
	if err := tm.parse(requestToken); err != nil {
		return util.NewForbidden("invalid csrf token")
	}
	return nil
}

func (tm *TokenManager) parse(tokenStr string) error {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return errors.New("invalid token claims")
	}
	return nil
}
