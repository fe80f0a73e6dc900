package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenTTL is the fixed lifetime of every issued token.
const tokenTTL = 5 * time.Hour

// TokenService issues and verifies HS256 bearer tokens carrying an arbitrary
// caller-supplied payload. Tokens are stateless: nothing is persisted, and
// verification is a pure signature + expiry check against the shared secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return NewTokenServiceWithClock(secret, time.Now)
}

// NewTokenServiceWithClock allows injecting the clock used for both the
// issued-at/expiry claims and expiry validation.
func NewTokenServiceWithClock(secret string, now func() time.Time) *TokenService {
	return &TokenService{secret: []byte(secret), now: now}
}

// Issue signs a token embedding every payload field as a claim. The payload is
// not validated; exp, iat and jti are stamped by the service and override any
// caller-supplied values.
func (s *TokenService) Issue(payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}

	now := s.now()
	claims["exp"] = now.Add(tokenTTL).Unix()
	claims["iat"] = now.Unix()
	claims["jti"] = uuid.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
