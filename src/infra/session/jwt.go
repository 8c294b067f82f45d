// Package session implements the signed session token and its optional
// server-side revocation list.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"remixjokes/src/core/domain"
	"remixjokes/src/core/ports"
)

var _ ports.SessionCodec = (*JWTCodec)(nil)

// ErrInvalidToken is returned by Decode for any token that does not verify.
var ErrInvalidToken = errors.New("invalid session token")

// JWTCodec signs session tokens as HS256 JWTs.
type JWTCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a JWTCodec.
type Option func(*JWTCodec)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *JWTCodec) {
		c.now = now
	}
}

// NewJWTCodec creates a codec. secret must not be empty.
func NewJWTCodec(secret, issuer string, ttl time.Duration, opts ...Option) (*JWTCodec, error) {
	if secret == "" {
		return nil, errors.New("session secret must be set")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	c := &JWTCodec{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *JWTCodec) Encode(userID string) (string, domain.SessionClaims, error) {
	now := c.now()
	rc := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, rc).SignedString(c.secret)
	if err != nil {
		return "", domain.SessionClaims{}, err
	}
	return token, toDomain(rc), nil
}

func (c *JWTCodec) Decode(token string) (domain.SessionClaims, error) {
	var rc jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &rc,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return domain.SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if rc.Subject == "" || rc.ID == "" {
		return domain.SessionClaims{}, fmt.Errorf("%w: missing subject or id", ErrInvalidToken)
	}
	return toDomain(rc), nil
}

func toDomain(rc jwt.RegisteredClaims) domain.SessionClaims {
	sc := domain.SessionClaims{
		ID:     rc.ID,
		UserID: rc.Subject,
	}
	if rc.ExpiresAt != nil {
		sc.ExpiresAt = rc.ExpiresAt.Time
	}
	return sc
}
