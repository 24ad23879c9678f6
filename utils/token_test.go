package utils

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, expiration, err := IssueToken("super-secret", userID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenValidity), expiration, time.Minute)

	subject, err := VerifyToken("super-secret", token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestTokenWrongSecret(t *testing.T) {
	token, _, err := IssueToken("super-secret", uuid.New())
	require.NoError(t, err)

	_, err = VerifyToken("other-secret", token)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "invalid jwt", apiErr.Message)
}

func TestTokenExpired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = VerifyToken("super-secret", token)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "invalid jwt", apiErr.Message)
}

func TestTokenWrongSegmentCount(t *testing.T) {
	_, err := VerifyToken("super-secret", "garbage")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "invalid jwt", apiErr.Message)
}

// Payload bytes that cannot be decoded indicate something other than a
// client with a stale or forged token, so they surface as a server fault.
func TestTokenCorruptPayloadBase64(t *testing.T) {
	token, _, err := IssueToken("super-secret", uuid.New())
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)
	segments[1] = "!!!not-base64!!!"

	_, err = VerifyToken("super-secret", strings.Join(segments, "."))
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "failed to parse jwt", apiErr.Message)
}

func TestTokenCorruptPayloadNotJSON(t *testing.T) {
	token, _, err := IssueToken("super-secret", uuid.New())
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)
	segments[1] = base64.RawURLEncoding.EncodeToString([]byte("hello"))

	_, err = VerifyToken("super-secret", strings.Join(segments, "."))
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "failed to parse jwt", apiErr.Message)
}

func TestTokenNonUUIDSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = VerifyToken("super-secret", token)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
}
