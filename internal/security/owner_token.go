package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const secretAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

var (
	ErrEmptySecret  = errors.New("token secret must not be empty")
	ErrEmptyOwner   = errors.New("token owner must not be empty")
	ErrInvalidToken = errors.New("invalid owner token")
)

// IssueOwnerToken signs an HS256 token whose subject is owner.
// A zero ttl issues a token without expiry.
func IssueOwnerToken(secret string, owner string, now time.Time, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return "", ErrEmptyOwner
	}

	claims := jwt.RegisteredClaims{
		Subject:  owner,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseOwnerToken verifies raw and returns its subject.
func ParseOwnerToken(secret string, raw string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	owner := strings.TrimSpace(claims.Subject)
	if owner == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return owner, nil
}

// GenerateSecret returns an unbiased random secret suitable for AUTH_SECRET.
func GenerateSecret(length int) (string, error) {
	if length < 32 {
		length = 32
	}
	limit := big.NewInt(int64(len(secretAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = secretAlphabet[position.Int64()]
	}
	return string(value), nil
}
