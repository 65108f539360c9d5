package model

import (
	"time"
)

// User is an authenticated owner identity. Every other entity is scoped to
// the owning user's id.
type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	UserID       string    `json:"userId" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
