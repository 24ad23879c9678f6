package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenValidity is how long an issued access key stays usable.
const TokenValidity = 14 * 24 * time.Hour

// IssueToken mints an HS256 token whose subject is the user id. Verification
// is stateless: the claims carry everything needed.
func IssueToken(signingKey string, userID uuid.UUID) (string, time.Time, error) {
	expiration := time.Now().Add(TokenValidity)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expiration),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signingKey))
	if err != nil {
		return "", time.Time{}, Internal("failed to parse jwt")
	}

	return signed, expiration, nil
}

// VerifyToken validates signature and expiration and returns the subject.
// Failures in the payload bytes themselves (corrupt base64, claims that are
// not JSON) or in the signing setup are internal errors; everything a client
// could cause, including expiry, bad signatures and wrong segment counts, is
// a bad request.
func VerifyToken(signingKey, tokenString string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		var (
			base64Err    base64.CorruptInputError
			syntaxErr    *json.SyntaxError
			unmarshalErr *json.UnmarshalTypeError
		)
		if errors.Is(err, jwt.ErrTokenUnverifiable) ||
			errors.Is(err, jwt.ErrHashUnavailable) ||
			errors.As(err, &base64Err) ||
			errors.As(err, &syntaxErr) ||
			errors.As(err, &unmarshalErr) {
			return uuid.Nil, Internal("failed to parse jwt")
		}
		return uuid.Nil, BadRequest("invalid jwt")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, BadRequest("invalid jwt")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, BadRequest("invalid jwt")
	}

	return subject, nil
}
