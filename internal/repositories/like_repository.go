package repositories

import (
	"errors"

	"github.com/warblerapp/warbler/internal/apperror"
	"github.com/warblerapp/warbler/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Like(userID, messageID uint) error
	Unlike(userID, messageID uint) error
	HasLiked(userID, messageID uint) (bool, error)
	GetLikedMessages(userID uint) ([]models.Message, error)
	GetLikesCount(messageID uint) (int64, error)
}

// GormLikeRepository implements LikeRepository on a gorm-backed store
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GormLikeRepository
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// Like records that userID liked messageID. Liking your own message is a
// validation failure, liking twice is a conflict.
func (r *GormLikeRepository) Like(userID, messageID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var message models.Message
		if err := tx.First(&message, messageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.Validation("message_id", "message does not exist")
			}
			return err
		}
		if message.UserID == userID {
			return apperror.Validation("message_id", "cannot like your own message")
		}

		var count int64
		if err := tx.Model(&models.Like{}).
			Where("user_id = ? AND message_id = ?", userID, messageID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict("message already liked")
		}

		like := &models.Like{UserID: userID, MessageID: messageID}
		if err := tx.Create(like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("message already liked")
			}
			return err
		}
		return nil
	})
}

// Unlike removes a like. An absent like is a no-op.
func (r *GormLikeRepository) Unlike(userID, messageID uint) error {
	return r.db.Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
}

// HasLiked reports whether userID has liked messageID
func (r *GormLikeRepository) HasLiked(userID, messageID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikedMessages returns the messages userID has liked, newest first
func (r *GormLikeRepository) GetLikedMessages(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("id IN (?)",
		r.db.Table("likes").Select("message_id").Where("user_id = ?", userID),
	).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// GetLikesCount returns the number of likes on a message
func (r *GormLikeRepository) GetLikesCount(messageID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("message_id = ?", messageID).Count(&count).Error
	return count, err
}
