package repositories

import (
	"errors"
	"unicode/utf8"

	"github.com/warblerapp/warbler/internal/apperror"
	"github.com/warblerapp/warbler/internal/models"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	CreateMessage(userID uint, text string) (*models.Message, error)
	GetMessageByID(id uint) (*models.Message, error)
	GetMessagesByUserID(userID uint) ([]models.Message, error)
	DeleteMessage(id, requesterID uint) error
}

// GormMessageRepository implements MessageRepository on a gorm-backed store
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// CreateMessage persists a new message for userID. Empty or over-length text
// and an unresolvable user are validation failures.
func (r *GormMessageRepository) CreateMessage(userID uint, text string) (*models.Message, error) {
	if text == "" {
		return nil, apperror.Validation("text", "text is required")
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		return nil, apperror.Validation("text", "text must be 140 characters or fewer")
	}

	message := &models.Message{UserID: userID, Text: text}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.Validation("user_id", "user does not exist")
			}
			return err
		}
		return tx.Create(message).Error
	})
	if err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessageByID retrieves a message by ID
func (r *GormMessageRepository) GetMessageByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("message", id)
		}
		return nil, err
	}
	return &message, nil
}

// GetMessagesByUserID retrieves a user's messages, newest first
func (r *GormMessageRepository) GetMessagesByUserID(userID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteMessage removes a message. Only the owner may delete it; anyone else
// gets an authorization failure and the message stays put. Likes on the
// message go with it.
func (r *GormMessageRepository) DeleteMessage(id, requesterID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var message models.Message
		if err := tx.First(&message, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("message", id)
			}
			return err
		}
		if message.UserID != requesterID {
			return apperror.Auth("only the owner can delete a message")
		}
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, id).Error
	})
}
