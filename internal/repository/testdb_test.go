package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fitlog/internal/database"
	"fitlog/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var fixtureSeq atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := fixtureSeq.Add(1)
	user := &models.User{
		Username:     fmt.Sprintf("lifter%d", n),
		Email:        fmt.Sprintf("lifter%d@example.com", n),
		PasswordHash: "hashed-password",
		FirstName:    "Test",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createTestWorkoutType(t *testing.T, db *gorm.DB) *models.WorkoutType {
	t.Helper()
	n := fixtureSeq.Add(1)
	workoutType := &models.WorkoutType{
		WorkoutName:         fmt.Sprintf("Strength Training %d", n),
		MuscleGroupTargeted: "Full Body",
		CategoryType:        "Weightlifting",
		Description:         "A high-intensity workout for muscle building.",
	}
	require.NoError(t, NewWorkoutTypeRepository(db).Create(context.Background(), workoutType))
	return workoutType
}

func createTestExercise(t *testing.T, db *gorm.DB, workoutTypeID uint, muscleGroup string) *models.Exercise {
	t.Helper()
	n := fixtureSeq.Add(1)
	exercise := &models.Exercise{
		WorkoutTypeID:      workoutTypeID,
		ExerciseName:       fmt.Sprintf("Exercise %d", n),
		PrimaryMuscleGroup: muscleGroup,
		EquipmentRequired:  "Barbell",
	}
	require.NoError(t, NewExerciseRepository(db).Create(context.Background(), exercise))
	return exercise
}

func createTestSession(t *testing.T, db *gorm.DB, userID uint) *models.WorkoutSession {
	t.Helper()
	start := time.Now().UTC()
	session := &models.WorkoutSession{
		UserID:      userID,
		WorkoutDate: start,
		StartTime:   &start,
		Location:    "Home Gym",
	}
	require.NoError(t, NewWorkoutSessionRepository(db).Create(context.Background(), session))
	return session
}

func createTestLog(t *testing.T, db *gorm.DB, sessionID, exerciseID uint, set int) *models.ExerciseLog {
	t.Helper()
	reps := 10
	weight := 50.0
	rest := 60
	log := &models.ExerciseLog{
		SessionID:       sessionID,
		ExerciseID:      exerciseID,
		SetNumber:       &set,
		Repetitions:     &reps,
		Weight:          &weight,
		RestTime:        &rest,
		DifficultyLevel: "Medium",
	}
	require.NoError(t, NewExerciseLogRepository(db).Create(context.Background(), log))
	return log
}
