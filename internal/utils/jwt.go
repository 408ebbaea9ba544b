package utils // package utils provides token and password hashing helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature, issuer,
// audience or expiry verification, or lacks a usable userId claim.
var ErrInvalidToken = errors.New("invalid token")

// UserClaims is what a verified token carries about its subject.
type UserClaims struct {
	UserID   string
	Username string
}

// NewUserToken builds and signs an HS256 JWT for a user. The token
// carries the user's id and username as claims alongside the standard
// issuer, audience, expiration and issued-at claims. ttlMin controls
// the token lifetime in minutes.
func NewUserToken(secret, issuer, audience, userID, username string, ttlMin int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"iss":      issuer,
		"aud":      audience,
		"exp":      now.Add(time.Duration(ttlMin) * time.Minute).Unix(),
		"iat":      now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseUserToken verifies a token's signature, issuer, audience and
// expiry, and returns the user claims embedded in it. Any failure
// collapses to ErrInvalidToken so callers never leak which check
// rejected the token.
func ParseUserToken(secret, issuer, audience, raw string) (UserClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// reject tokens signed with a different algorithm
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return UserClaims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return UserClaims{}, ErrInvalidToken
	}
	uid, _ := claims["userId"].(string)
	if uid == "" {
		return UserClaims{}, ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	return UserClaims{UserID: uid, Username: username}, nil
}
