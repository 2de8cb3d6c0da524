package models

import "time"

// MaxMessageLength is the warble length limit in runes.
const MaxMessageLength = 140

// Message is a short text post owned by a single user
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"size:140;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMessageRequest defines the request body for posting a message
type CreateMessageRequest struct {
	Text string `json:"text" validate:"required,max=140"`
}
