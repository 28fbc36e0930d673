package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel-odulate22/NutriTrack-API/models"
)

var testPrincipal = Principal{
	ID:    7,
	Name:  "Ada",
	Email: "ada@example.com",
	Goal:  models.GoalWeightLoss,
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	token, err := svc.Issue(testPrincipal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testPrincipal, got)
}

func TestTokenExpiry(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	token, err := svc.Issue(testPrincipal)
	require.NoError(t, err)

	// valid just before the TTL elapses
	svc.now = func() time.Time { return time.Now().Add(TokenTTL - time.Minute) }
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	// rejected once past it
	svc.now = func() time.Time { return time.Now().Add(TokenTTL + time.Minute) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongKey(t *testing.T) {
	issuer := NewTokenService([]byte("key-one"))
	verifier := NewTokenService([]byte("key-two"))

	token, err := issuer.Issue(testPrincipal)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestTokenTampered(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	token, err := svc.Issue(testPrincipal)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "xx"

	_, err = svc.Verify(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	_, err := svc.Verify("definitely-not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
