package models

import (
	"time"
)

// WorkoutSession is one workout performed by a user. A session owns its
// exercise logs: deleting the session removes the logs with it.
type WorkoutSession struct {
	ID                  uint          `gorm:"primaryKey" json:"id"`
	UserID              uint          `gorm:"not null;index" json:"user_id"`
	User                User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	WorkoutDate         time.Time     `gorm:"not null" json:"workout_date"`
	StartTime           *time.Time    `json:"start_time,omitempty"`
	EndTime             *time.Time    `json:"end_time,omitempty"`
	TotalDuration       *int          `json:"total_duration,omitempty"`
	Location            string        `json:"location,omitempty"`
	PerceivedExertion   *int          `json:"perceived_exertion,omitempty"`
	Notes               string        `json:"notes,omitempty"`
	WorkoutSource       string        `json:"workout_source,omitempty"`
	CreatedTimestamp    time.Time     `gorm:"column:created_timestamp;autoCreateTime" json:"created_timestamp"`
	LastEditedTimestamp time.Time     `gorm:"column:last_edited_timestamp;autoUpdateTime" json:"last_edited_timestamp"`
	ExerciseLogs        []ExerciseLog `gorm:"foreignKey:SessionID" json:"exercise_logs,omitempty"`
}

// Validate checks required fields and the start/end time invariant.
func (s *WorkoutSession) Validate() error {
	if s.UserID == 0 {
		return NewConstraintViolationError("user_id is required")
	}
	if s.StartTime != nil && s.EndTime != nil && s.EndTime.Before(*s.StartTime) {
		return NewConstraintViolationError("end_time must not be earlier than start_time")
	}
	return nil
}

// DurationMinutes returns the whole number of minutes between start and end
// time, or false when either is unset.
func (s *WorkoutSession) DurationMinutes() (int, bool) {
	if s.StartTime == nil || s.EndTime == nil {
		return 0, false
	}
	return int(s.EndTime.Sub(*s.StartTime) / time.Minute), true
}
