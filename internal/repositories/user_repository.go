package repositories

import (
	"errors"

	"github.com/warblerapp/warbler/internal/apperror"
	"github.com/warblerapp/warbler/internal/auth"
	"github.com/warblerapp/warbler/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Signup(req *models.SignupRequest) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateProfile(id uint, req *models.UpdateProfileRequest) (*models.User, error)
	DeleteUser(id uint) error
	SearchUsers(query string) ([]models.User, error)
}

// GormUserRepository implements UserRepository on a gorm-backed store
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Signup hashes the password and persists a new user. A taken username or
// email surfaces as a conflict; the check and the insert run in one
// transaction so concurrent signups cannot race past each other.
func (r *GormUserRepository) Signup(req *models.SignupRequest) (*models.User, error) {
	if req.Username == "" {
		return nil, apperror.Validation("username", "username is required")
	}
	if req.Email == "" {
		return nil, apperror.Validation("email", "email is required")
	}
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		Password:       hashed,
		ImageURL:       req.ImageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	if user.ImageURL == "" {
		user.ImageURL = models.DefaultImageURL
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", req.Username, req.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict("username or email already taken")
		}
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("username or email already taken")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate looks up a user by username and verifies the password.
// Unknown username and wrong password both return (nil, nil); invalid
// credentials are an expected outcome, not a fault.
func (r *GormUserRepository) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, nil
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *GormUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *GormUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperror.AppError{Err: apperror.ErrNotFound, Message: "user not found: " + username}
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies profile changes after the confirmation password
// verifies against the current hash. On a failed confirmation nothing is
// written.
func (r *GormUserRepository) UpdateProfile(id uint, req *models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("user", id)
			}
			return err
		}
		if !auth.CheckPassword(req.Password, user.Password) {
			return apperror.Auth("password confirmation failed")
		}

		if req.Username != "" {
			user.Username = req.Username
		}
		if req.Email != "" {
			user.Email = req.Email
		}
		if req.Bio != "" {
			user.Bio = req.Bio
		}
		if req.Location != "" {
			user.Location = req.Location
		}
		if req.ImageURL != "" {
			user.ImageURL = req.ImageURL
		}
		if req.HeaderImageURL != "" {
			user.HeaderImageURL = req.HeaderImageURL
		}

		var count int64
		if err := tx.Model(&models.User{}).
			Where("(username = ? OR email = ?) AND id <> ?", user.Username, user.Email, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict("username or email already taken")
		}
		if err := tx.Save(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("username or email already taken")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user and everything hanging off it: likes given and
// received, messages, follow edges in both directions, and open sessions.
// The teardown runs in one transaction.
func (r *GormUserRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("user", id)
			}
			return err
		}

		ownMessages := tx.Table("messages").Select("id").Where("user_id = ?", id)
		if err := tx.Where("message_id IN (?)", ownMessages).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR following_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

// SearchUsers searches for users by username or email (case-insensitive)
func (r *GormUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("LOWER(username) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
		"%"+query+"%", "%"+query+"%").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
