package repositories

import (
	"errors"

	"github.com/google/uuid"
	"github.com/warblerapp/warbler/internal/apperror"
	"github.com/warblerapp/warbler/internal/models"
	"gorm.io/gorm"
)

// SessionRepository maps opaque session tokens to logged-in user ids.
// Sessions live in the database so every server instance shares them.
type SessionRepository interface {
	CreateSession(userID uint) (*models.Session, error)
	ResolveToken(token string) (uint, error)
	DeleteSession(token string) error
	DeleteSessionsForUser(userID uint) error
}

// GormSessionRepository implements SessionRepository on a gorm-backed store
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// CreateSession issues a fresh opaque token for userID
func (r *GormSessionRepository) CreateSession(userID uint) (*models.Session, error) {
	session := &models.Session{
		Token:  uuid.NewString(),
		UserID: userID,
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// ResolveToken returns the user id behind a token. An unknown token is an
// authorization failure, not a storage fault.
func (r *GormSessionRepository) ResolveToken(token string) (uint, error) {
	var session models.Session
	if err := r.db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperror.Auth("invalid session token")
		}
		return 0, err
	}
	return session.UserID, nil
}

// DeleteSession invalidates a token. An unknown token is a no-op.
func (r *GormSessionRepository) DeleteSession(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteSessionsForUser invalidates every session belonging to userID
func (r *GormSessionRepository) DeleteSessionsForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}
