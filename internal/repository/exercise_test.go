package repository

import (
	"context"
	"testing"

	"fitlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	workoutType := createTestWorkoutType(t, db)

	t.Run("valid exercise", func(t *testing.T) {
		calories := 8.5
		exercise := &models.Exercise{
			WorkoutTypeID:           workoutType.ID,
			ExerciseName:            "Barbell Squat",
			PrimaryMuscleGroup:      "Legs",
			EquipmentRequired:       "Barbell",
			CaloriesBurnedPerMinute: &calories,
		}
		require.NoError(t, repo.Create(ctx, exercise))
		assert.NotZero(t, exercise.ID)
		assert.False(t, exercise.CreatedTimestamp.IsZero())
	})

	t.Run("dangling workout type", func(t *testing.T) {
		exercise := &models.Exercise{
			WorkoutTypeID: 999999,
			ExerciseName:  "Phantom Press",
		}
		err := repo.Create(ctx, exercise)
		assert.True(t, models.IsConstraintViolation(err))
	})

	t.Run("missing name", func(t *testing.T) {
		err := repo.Create(ctx, &models.Exercise{WorkoutTypeID: workoutType.ID})
		assert.True(t, models.IsConstraintViolation(err))
	})
}

func TestExerciseRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	workoutType := createTestWorkoutType(t, db)
	exercise := createTestExercise(t, db, workoutType.ID, "Chest")

	exercise.DifficultyLevel = "Intermediate"
	require.NoError(t, repo.Update(ctx, exercise))

	fetched, err := repo.GetByID(ctx, exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intermediate", fetched.DifficultyLevel)

	t.Run("rejects dangling foreign key", func(t *testing.T) {
		fetched.WorkoutTypeID = 999999
		err := repo.Update(ctx, fetched)
		assert.True(t, models.IsConstraintViolation(err))
	})

	t.Run("missing key", func(t *testing.T) {
		ghost := &models.Exercise{ID: 888888, ExerciseName: "Ghost", WorkoutTypeID: workoutType.ID}
		assert.True(t, models.IsNotFound(repo.Update(ctx, ghost)))
	})
}

func TestExerciseRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	workoutType := createTestWorkoutType(t, db)

	t.Run("restricted while logs reference it", func(t *testing.T) {
		user := createTestUser(t, db)
		session := createTestSession(t, db, user.ID)
		exercise := createTestExercise(t, db, workoutType.ID, "Back")
		createTestLog(t, db, session.ID, exercise.ID, 1)

		err := repo.Delete(ctx, exercise.ID)
		assert.True(t, models.IsDependencyConflict(err))
	})

	t.Run("deletable without logs", func(t *testing.T) {
		exercise := createTestExercise(t, db, workoutType.ID, "Shoulders")
		require.NoError(t, repo.Delete(ctx, exercise.ID))
		_, err := repo.GetByID(ctx, exercise.ID)
		assert.True(t, models.IsNotFound(err))
	})
}

func TestExerciseRepository_ListByWorkoutType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	typeA := createTestWorkoutType(t, db)
	typeB := createTestWorkoutType(t, db)
	createTestExercise(t, db, typeA.ID, "Legs")
	createTestExercise(t, db, typeA.ID, "Legs")
	createTestExercise(t, db, typeB.ID, "Chest")

	forA, err := repo.ListByWorkoutType(ctx, typeA.ID)
	require.NoError(t, err)
	assert.Len(t, forA, 2)

	forB, err := repo.ListByWorkoutType(ctx, typeB.ID)
	require.NoError(t, err)
	assert.Len(t, forB, 1)
}

func TestExerciseRepository_ListByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	workoutType := createTestWorkoutType(t, db)
	e1 := createTestExercise(t, db, workoutType.ID, "Legs")
	e2 := createTestExercise(t, db, workoutType.ID, "Biceps")

	found, err := repo.ListByIDs(ctx, []uint{e1.ID, e2.ID, 999999})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := repo.ListByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
