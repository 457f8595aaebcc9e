package models

import (
	"strings"
	"time"
)

// Exercise is a catalog entry describing a single movement. Each exercise
// belongs to exactly one WorkoutType.
type Exercise struct {
	ID                      uint          `gorm:"primaryKey" json:"id"`
	WorkoutTypeID           uint          `gorm:"not null;index" json:"workout_type_id"`
	WorkoutType             WorkoutType   `gorm:"foreignKey:WorkoutTypeID" json:"workout_type,omitempty"`
	ExerciseName            string        `gorm:"not null" json:"exercise_name"`
	Description             string        `json:"description,omitempty"`
	EquipmentRequired       string        `json:"equipment_required,omitempty"`
	PrimaryMuscleGroup      string        `json:"primary_muscle_group,omitempty"`
	DifficultyLevel         string        `json:"difficulty_level,omitempty"`
	CaloriesBurnedPerMinute *float64      `json:"calories_burned_per_minute,omitempty"`
	MuscleGroupsSecondary   string        `json:"muscle_groups_secondary,omitempty"`
	VideoTutorialLink       string        `json:"video_tutorial_link,omitempty"`
	ImageURL                string        `json:"image_url,omitempty"`
	CreatedTimestamp        time.Time     `gorm:"column:created_timestamp;autoCreateTime" json:"created_timestamp"`
	LastEditedTimestamp     time.Time     `gorm:"column:last_edited_timestamp;autoUpdateTime" json:"last_edited_timestamp"`
	ExerciseLogs            []ExerciseLog `gorm:"foreignKey:ExerciseID" json:"exercise_logs,omitempty"`
}

// Validate checks required fields. Foreign key existence is verified by the
// repository against the current database session.
func (e *Exercise) Validate() error {
	if strings.TrimSpace(e.ExerciseName) == "" {
		return NewConstraintViolationError("exercise_name is required")
	}
	if e.WorkoutTypeID == 0 {
		return NewConstraintViolationError("workout_type_id is required")
	}
	return nil
}
