package models

import "time"

// Like marks that a user liked another user's message
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_message;not null"`
	MessageID uint      `json:"message_id" gorm:"index;uniqueIndex:idx_user_message;not null"`
	CreatedAt time.Time `json:"created_at"`
}
