package models

import "time"

// Default profile images used when signup omits them.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password       string    `json:"-" gorm:"not null"` // bcrypt hash, never the plaintext
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	ImageURL       string    `json:"image_url"`
	HeaderImageURL string    `json:"header_image_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SignupRequest defines the request body for registering a new account
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	ImageURL string `json:"image_url,omitempty"`
}

// LoginRequest defines the request body for authenticating
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for editing the own profile.
// Password is the current password and must verify before any field is applied.
type UpdateProfileRequest struct {
	Username       string `json:"username,omitempty" validate:"omitempty,min=1,max=64"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	HeaderImageURL string `json:"header_image_url,omitempty"`
	Password       string `json:"password" validate:"required"`
}
