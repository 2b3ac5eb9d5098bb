package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymnarium/visualisers-base/internal/typeid"
)

func TestCreateAndValidateToken(t *testing.T) {
	svc, err := NewService("letmein", "test-secret")
	require.NoError(t, err)

	result, err := svc.Create("cartpole", "letmein")
	require.NoError(t, err)
	require.NoError(t, typeid.Validate(result.Session.ID, typeid.PrefixSession))
	assert.Equal(t, "cartpole", result.Session.Name)
	assert.False(t, result.Session.HasPublisher)

	sessionID, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Session.ID, sessionID)
}

func TestCreateRejectsBadKey(t *testing.T) {
	svc, err := NewService("letmein", "test-secret")
	require.NoError(t, err)

	_, err = svc.Create("cartpole", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPublisherKey)
}

func TestEmptyKeyDisablesAuth(t *testing.T) {
	svc, err := NewService("", "test-secret")
	require.NoError(t, err)

	_, err = svc.Create("open", "anything")
	require.NoError(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, err := NewService("", "test-secret")
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer, err := NewService("", "secret-a")
	require.NoError(t, err)
	verifier, err := NewService("", "secret-b")
	require.NoError(t, err)

	result, err := issuer.Create("s", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(result.Token)
	require.Error(t, err)
}

func TestGetAndList(t *testing.T) {
	svc, err := NewService("", "test-secret")
	require.NoError(t, err)

	first, err := svc.Create("first", "")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Create("second", "")
	require.NoError(t, err)

	got, err := svc.Get(first.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	_, err = svc.Get("sess_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.Session.ID, list[0].ID, "newest first")
}

func TestSetPublisherPresent(t *testing.T) {
	svc, err := NewService("", "test-secret")
	require.NoError(t, err)

	result, err := svc.Create("s", "")
	require.NoError(t, err)

	svc.SetPublisherPresent(result.Session.ID, true)
	got, err := svc.Get(result.Session.ID)
	require.NoError(t, err)
	assert.True(t, got.HasPublisher)

	svc.SetPublisherPresent(result.Session.ID, false)
	got, err = svc.Get(result.Session.ID)
	require.NoError(t, err)
	assert.False(t, got.HasPublisher)
}
