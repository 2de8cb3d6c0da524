package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warblerapp/warbler/internal/apperror"
	"github.com/warblerapp/warbler/internal/models"
)

func TestCreateMessage(t *testing.T) {
	db := newTestDB(t)
	messages := NewGormMessageRepository(db)
	alice := createTestUser(t, db, "alice")

	msg, err := messages.CreateMessage(alice.ID, "Hello")
	require.NoError(t, err)
	require.NotZero(t, msg.ID)
	assert.Equal(t, "Hello", msg.Text)
	assert.Equal(t, alice.ID, msg.UserID)
}

func TestCreateMessageEmptyText(t *testing.T) {
	db := newTestDB(t)
	messages := NewGormMessageRepository(db)
	alice := createTestUser(t, db, "alice")

	_, err := messages.CreateMessage(alice.ID, "")
	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.EqualValues(t, 0, countRows(t, db, &models.Message{}))
}

func TestCreateMessageTooLong(t *testing.T) {
	db := newTestDB(t)
	messages := NewGormMessageRepository(db)
	alice := createTestUser(t, db, "alice")

	_, err := messages.CreateMessage(alice.ID, strings.Repeat("x", models.MaxMessageLength+1))
	require.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCreateMessageUnknownUser(t *testing.T) {
	db := newTestDB(t)
	messages := NewGormMessageRepository(db)

	_, err := messages.CreateMessage(9999, "hi")
	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.EqualValues(t, 0, countRows(t, db, &models.Message{}))
}

func TestDeleteMessageNonOwner(t *testing.T) {
	db := newTestDB(t)
	messages := NewGormMessageRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	msg, err := messages.CreateMessage(alice.ID, "mine")
	require.NoError(t, err)

	err = messages.DeleteMessage(msg.ID, bob.ID)
	require.ErrorIs(t, err, apperror.ErrAuth)

	// The message survives the failed delete
	_, err = messages.GetMessageByID(msg.ID)
	assert.NoError(t, err)
}

func TestDeleteMessageOwner(t *testing.T) {
	db := newTestDB(t)
	messages := NewGormMessageRepository(db)
	likes := NewGormLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	msg, err := messages.CreateMessage(alice.ID, "mine")
	require.NoError(t, err)
	require.NoError(t, likes.Like(bob.ID, msg.ID))

	require.NoError(t, messages.DeleteMessage(msg.ID, alice.ID))

	_, err = messages.GetMessageByID(msg.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &models.Like{}))
}

func TestDeleteMessageMissing(t *testing.T) {
	db := newTestDB(t)
	messages := NewGormMessageRepository(db)
	alice := createTestUser(t, db, "alice")

	err := messages.DeleteMessage(9999, alice.ID)
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetMessagesByUserID(t *testing.T) {
	db := newTestDB(t)
	messages := NewGormMessageRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := messages.CreateMessage(alice.ID, "one")
	require.NoError(t, err)
	_, err = messages.CreateMessage(alice.ID, "two")
	require.NoError(t, err)
	_, err = messages.CreateMessage(bob.ID, "other")
	require.NoError(t, err)

	list, err := messages.GetMessagesByUserID(alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, m := range list {
		assert.Equal(t, alice.ID, m.UserID)
	}
}
