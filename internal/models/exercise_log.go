package models

import (
	"time"
)

// ExerciseLog records one set of one exercise performed within a workout
// session. It belongs to exactly one session and one exercise.
type ExerciseLog struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	SessionID           uint           `gorm:"not null;index" json:"session_id"`
	Session             WorkoutSession `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	ExerciseID          uint           `gorm:"not null;index" json:"exercise_id"`
	Exercise            Exercise       `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
	SetNumber           *int           `json:"set_number,omitempty"`
	Repetitions         *int           `json:"repetitions,omitempty"`
	Weight              *float64       `json:"weight,omitempty"`
	Duration            *int           `json:"duration,omitempty"`
	RestTime            *int           `json:"rest_time,omitempty"`
	Notes               string         `json:"notes,omitempty"`
	DifficultyLevel     string         `json:"difficulty_level,omitempty"`
	CreatedTimestamp    time.Time      `gorm:"column:created_timestamp;autoCreateTime" json:"created_timestamp"`
	LastEditedTimestamp time.Time      `gorm:"column:last_edited_timestamp;autoUpdateTime" json:"last_edited_timestamp"`
}

// Validate checks required fields and the set_number check constraint.
func (l *ExerciseLog) Validate() error {
	if l.SessionID == 0 {
		return NewConstraintViolationError("session_id is required")
	}
	if l.ExerciseID == 0 {
		return NewConstraintViolationError("exercise_id is required")
	}
	if l.SetNumber != nil && *l.SetNumber < 1 {
		return NewConstraintViolationError("set_number must be at least 1")
	}
	return nil
}
