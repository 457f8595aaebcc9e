package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestUser_Validate(t *testing.T) {
	valid := User{Username: "lifter", Email: "lifter@example.com", PasswordHash: "hash"}
	assert.NoError(t, valid.Validate())

	missingEmail := User{Username: "lifter", PasswordHash: "hash"}
	err := missingEmail.Validate()
	assert.True(t, IsConstraintViolation(err))

	blankUsername := User{Username: "   ", Email: "a@b.c", PasswordHash: "hash"}
	assert.True(t, IsConstraintViolation(blankUsername.Validate()))
}

func TestWorkoutType_Validate(t *testing.T) {
	valid := WorkoutType{WorkoutName: "Strength Training", MuscleGroupTargeted: "Full Body"}
	assert.NoError(t, valid.Validate())

	missing := WorkoutType{WorkoutName: "Strength Training"}
	assert.True(t, IsConstraintViolation(missing.Validate()))
}

func TestExercise_Validate(t *testing.T) {
	valid := Exercise{ExerciseName: "Squat", WorkoutTypeID: 1}
	assert.NoError(t, valid.Validate())

	noType := Exercise{ExerciseName: "Squat"}
	assert.True(t, IsConstraintViolation(noType.Validate()))
}

func TestWorkoutSession_Validate(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	endBefore := start.Add(-time.Minute)
	endAfter := start.Add(45 * time.Minute)

	valid := WorkoutSession{UserID: 1, StartTime: &start, EndTime: &endAfter}
	assert.NoError(t, valid.Validate())

	inverted := WorkoutSession{UserID: 1, StartTime: &start, EndTime: &endBefore}
	assert.True(t, IsConstraintViolation(inverted.Validate()))

	noUser := WorkoutSession{}
	assert.True(t, IsConstraintViolation(noUser.Validate()))
}

func TestWorkoutSession_DurationMinutes(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("both times set", func(t *testing.T) {
		end := start.Add(47*time.Minute + 59*time.Second)
		s := WorkoutSession{UserID: 1, StartTime: &start, EndTime: &end}

		minutes, ok := s.DurationMinutes()
		assert.True(t, ok)
		// whole minutes, truncated
		assert.Equal(t, 47, minutes)
	})

	t.Run("missing end time", func(t *testing.T) {
		s := WorkoutSession{UserID: 1, StartTime: &start}
		_, ok := s.DurationMinutes()
		assert.False(t, ok)
	})
}

func TestExerciseLog_Validate(t *testing.T) {
	valid := ExerciseLog{SessionID: 1, ExerciseID: 2, SetNumber: intPtr(1)}
	assert.NoError(t, valid.Validate())

	zeroSet := ExerciseLog{SessionID: 1, ExerciseID: 2, SetNumber: intPtr(0)}
	assert.True(t, IsConstraintViolation(zeroSet.Validate()))

	noSession := ExerciseLog{ExerciseID: 2}
	assert.True(t, IsConstraintViolation(noSession.Validate()))

	noExercise := ExerciseLog{SessionID: 1}
	assert.True(t, IsConstraintViolation(noExercise.Validate()))
}
