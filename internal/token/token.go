package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed covers anything that cannot be parsed or verified
	// against the signing secret.
	ErrMalformed = errors.New("token is malformed or has an invalid signature")
	// ErrExpired is returned once the embedded expiry has passed.
	ErrExpired = errors.New("token has expired")
)

// Claims is the signed payload: subject identity, role snapshot and expiry.
// Roles are a snapshot taken at issuance; live membership is re-checked by
// the authorization guard, not here.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Issuer signs and validates bearer tokens with a single process-wide
// HS256 secret. Expiry is the only bound on token lifetime; there is no
// rotation or revocation list.
type Issuer struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewIssuer(secret string, defaultTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
	}
}

// Issue produces a signed token for subject with the given role snapshot.
// A zero ttl falls back to the issuer default.
func (i *Issuer) Issue(subject string, roles []string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = i.defaultTTL
	}

	now := time.Now()
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token for %s: %w", subject, err)
	}

	return signed, nil
}

// Validate parses and verifies a token string. It fails with ErrExpired
// when the embedded expiry has passed and ErrMalformed for every other
// parse or signature problem.
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}

	if claims.Subject == "" {
		return nil, ErrMalformed
	}

	return claims, nil
}
