package models

import "time"

// Session maps an opaque token to a logged-in user. Sessions live in the
// database so every server instance sees the same login state.
type Session struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"uniqueIndex;size:36;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
