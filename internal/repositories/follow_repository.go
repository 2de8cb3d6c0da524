package repositories

import (
	"errors"

	"github.com/warblerapp/warbler/internal/apperror"
	"github.com/warblerapp/warbler/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow-graph operations
type FollowRepository interface {
	Follow(followerID, followingID uint) error
	Unfollow(followerID, followingID uint) error
	IsFollowing(followerID, followingID uint) (bool, error)
	IsFollowedBy(userID, otherID uint) (bool, error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowersCount(userID uint) (int64, error)
	GetFollowingCount(userID uint) (int64, error)
}

// GormFollowRepository implements FollowRepository on a gorm-backed store
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GormFollowRepository
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// Follow creates the edge follower -> following. Self-follows and edges to
// nonexistent users are validation failures; a duplicate edge is a conflict.
// The existence checks and the insert share one transaction, with the
// composite unique index as backstop against concurrent inserts.
func (r *GormFollowRepository) Follow(followerID, followingID uint) error {
	if followerID == followingID {
		return apperror.Validation("following_id", "cannot follow yourself")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var userCount int64
		if err := tx.Model(&models.User{}).
			Where("id IN ?", []uint{followerID, followingID}).
			Count(&userCount).Error; err != nil {
			return err
		}
		if userCount != 2 {
			return apperror.Validation("user_id", "both users must exist")
		}

		var edgeCount int64
		if err := tx.Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Count(&edgeCount).Error; err != nil {
			return err
		}
		if edgeCount > 0 {
			return apperror.Conflict("already following this user")
		}

		follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
		if err := tx.Create(follow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("already following this user")
			}
			return err
		}
		return nil
	})
}

// Unfollow removes the edge follower -> following. An absent edge is a no-op.
func (r *GormFollowRepository) Unfollow(followerID, followingID uint) error {
	return r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

// IsFollowing reports whether followerID follows followingID
func (r *GormFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsFollowedBy reports whether otherID follows userID. By construction
// IsFollowedBy(a, b) == IsFollowing(b, a).
func (r *GormFollowRepository) IsFollowedBy(userID, otherID uint) (bool, error) {
	return r.IsFollowing(otherID, userID)
}

// GetFollowers returns the users following userID
func (r *GormFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("following_id = ?", userID),
	).Find(&users).Error
	return users, err
}

// GetFollowing returns the users userID follows
func (r *GormFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("following_id").Where("follower_id = ?", userID),
	).Find(&users).Error
	return users, err
}

// GetFollowersCount returns the number of followers. Counts are always
// derived from the edge set, never stored on the user row.
func (r *GormFollowRepository) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

// GetFollowingCount returns the number of users being followed
func (r *GormFollowRepository) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
