// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The password is a bcrypt hash and is
// never serialized. Users are hard-deleted by account deletion; their posts
// deliberately survive (see Post).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}
