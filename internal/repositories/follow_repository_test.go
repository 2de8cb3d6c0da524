package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warblerapp/warbler/internal/apperror"
	"github.com/warblerapp/warbler/internal/models"
)

func TestFollowAndMembershipSymmetry(t *testing.T) {
	db := newTestDB(t)
	follows := NewGormFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, follows.Follow(alice.ID, bob.ID))

	following, err := follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	followedBy, err := follows.IsFollowedBy(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, followedBy)

	// The edge is directed: bob does not follow alice back
	reverse, err := follows.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, reverse)

	require.NoError(t, follows.Unfollow(alice.ID, bob.ID))

	following, err = follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followedBy, err = follows.IsFollowedBy(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, followedBy)
}

func TestFollowSelf(t *testing.T) {
	db := newTestDB(t)
	follows := NewGormFollowRepository(db)
	alice := createTestUser(t, db, "alice")

	err := follows.Follow(alice.ID, alice.ID)
	require.ErrorIs(t, err, apperror.ErrValidation)
}

func TestFollowUnknownUser(t *testing.T) {
	db := newTestDB(t)
	follows := NewGormFollowRepository(db)
	alice := createTestUser(t, db, "alice")

	assert.ErrorIs(t, follows.Follow(alice.ID, 9999), apperror.ErrValidation)
	assert.ErrorIs(t, follows.Follow(9999, alice.ID), apperror.ErrValidation)
	assert.EqualValues(t, 0, countRows(t, db, &models.Follow{}))
}

func TestFollowDuplicateEdge(t *testing.T) {
	db := newTestDB(t)
	follows := NewGormFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, follows.Follow(alice.ID, bob.ID))
	err := follows.Follow(alice.ID, bob.ID)
	require.ErrorIs(t, err, apperror.ErrConflict)
	assert.EqualValues(t, 1, countRows(t, db, &models.Follow{}))
}

func TestUnfollowAbsentEdgeIsNoop(t *testing.T) {
	db := newTestDB(t)
	follows := NewGormFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	assert.NoError(t, follows.Unfollow(alice.ID, bob.ID))
}

func TestFollowersFollowingAndCounts(t *testing.T) {
	db := newTestDB(t)
	follows := NewGormFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, follows.Follow(bob.ID, alice.ID))
	require.NoError(t, follows.Follow(carol.ID, alice.ID))
	require.NoError(t, follows.Follow(alice.ID, bob.ID))

	followers, err := follows.GetFollowers(alice.ID)
	require.NoError(t, err)
	usernames := make([]string, 0, len(followers))
	for _, u := range followers {
		usernames = append(usernames, u.Username)
	}
	assert.ElementsMatch(t, []string{"bob", "carol"}, usernames)

	following, err := follows.GetFollowing(alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)

	followerCount, err := follows.GetFollowersCount(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, followerCount)

	followingCount, err := follows.GetFollowingCount(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, followingCount)
}
