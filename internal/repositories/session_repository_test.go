package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warblerapp/warbler/internal/apperror"
)

func TestCreateAndResolveSession(t *testing.T) {
	db := newTestDB(t)
	sessions := NewGormSessionRepository(db)
	alice := createTestUser(t, db, "alice")

	session, err := sessions.CreateSession(alice.ID)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	userID, err := sessions.ResolveToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, userID)
}

func TestResolveUnknownToken(t *testing.T) {
	db := newTestDB(t)
	sessions := NewGormSessionRepository(db)

	_, err := sessions.ResolveToken("not-a-token")
	require.ErrorIs(t, err, apperror.ErrAuth)
}

func TestDeleteSessionInvalidatesToken(t *testing.T) {
	db := newTestDB(t)
	sessions := NewGormSessionRepository(db)
	alice := createTestUser(t, db, "alice")

	session, err := sessions.CreateSession(alice.ID)
	require.NoError(t, err)

	require.NoError(t, sessions.DeleteSession(session.Token))

	_, err = sessions.ResolveToken(session.Token)
	assert.ErrorIs(t, err, apperror.ErrAuth)
}

func TestSessionTokensAreUnique(t *testing.T) {
	db := newTestDB(t)
	sessions := NewGormSessionRepository(db)
	alice := createTestUser(t, db, "alice")

	s1, err := sessions.CreateSession(alice.ID)
	require.NoError(t, err)
	s2, err := sessions.CreateSession(alice.ID)
	require.NoError(t, err)
	assert.NotEqual(t, s1.Token, s2.Token)
}

func TestDeleteSessionsForUser(t *testing.T) {
	db := newTestDB(t)
	sessions := NewGormSessionRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	s1, err := sessions.CreateSession(alice.ID)
	require.NoError(t, err)
	s2, err := sessions.CreateSession(bob.ID)
	require.NoError(t, err)

	require.NoError(t, sessions.DeleteSessionsForUser(alice.ID))

	_, err = sessions.ResolveToken(s1.Token)
	assert.ErrorIs(t, err, apperror.ErrAuth)

	// Bob's session is untouched
	userID, err := sessions.ResolveToken(s2.Token)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, userID)
}
