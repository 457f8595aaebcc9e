package models

import (
	"strings"
	"time"
)

// WorkoutType is a category of workout (e.g. "Strength Training") that
// groups exercises for catalog purposes. Exercises keep an independent
// lifecycle: deleting a type with exercises still attached is rejected.
type WorkoutType struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	WorkoutName         string     `gorm:"not null" json:"workout_name"`
	MuscleGroupTargeted string     `gorm:"not null" json:"muscle_group_targeted"`
	CategoryType        string     `json:"category_type,omitempty"`
	Description         string     `json:"description,omitempty"`
	DifficultyLevel     string     `json:"difficulty_level,omitempty"`
	CreatedTimestamp    time.Time  `gorm:"column:created_timestamp;autoCreateTime" json:"created_timestamp"`
	LastEditedTimestamp time.Time  `gorm:"column:last_edited_timestamp;autoUpdateTime" json:"last_edited_timestamp"`
	Exercises           []Exercise `gorm:"foreignKey:WorkoutTypeID" json:"exercises,omitempty"`
}

// Validate checks that all required fields are present.
func (w *WorkoutType) Validate() error {
	if strings.TrimSpace(w.WorkoutName) == "" {
		return NewConstraintViolationError("workout_name is required")
	}
	if strings.TrimSpace(w.MuscleGroupTargeted) == "" {
		return NewConstraintViolationError("muscle_group_targeted is required")
	}
	return nil
}
