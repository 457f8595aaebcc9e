// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"
)

// User represents an account that owns workout sessions.
//
// Username and email uniqueness is enforced at the application layer
// (repository lookups before insert), not by schema constraints.
type User struct {
	ID                  uint             `gorm:"primaryKey" json:"id"`
	Username            string           `gorm:"not null" json:"username"`
	Email               string           `gorm:"not null" json:"email"`
	PasswordHash        string           `gorm:"not null" json:"-"`
	FirstName           string           `json:"first_name,omitempty"`
	LastName            string           `json:"last_name,omitempty"`
	CreatedTimestamp    time.Time        `gorm:"column:created_timestamp;autoCreateTime" json:"created_timestamp"`
	LastEditedTimestamp time.Time        `gorm:"column:last_edited_timestamp;autoUpdateTime" json:"last_edited_timestamp"`
	WorkoutSessions     []WorkoutSession `gorm:"foreignKey:UserID" json:"workout_sessions,omitempty"`
}

// Validate checks that all required fields are present.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return NewConstraintViolationError("username is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return NewConstraintViolationError("email is required")
	}
	if u.PasswordHash == "" {
		return NewConstraintViolationError("password_hash is required")
	}
	return nil
}
