// Package seed provides helpers to create demo and development data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"context"
	"fmt"

	"fitlog/internal/models"
	"fitlog/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var muscleGroups = []string{
	"Chest", "Back", "Legs", "Shoulders", "Biceps", "Triceps", "Core", "Glutes",
}

var difficultyLevels = []string{"Beginner", "Intermediate", "Advanced"}

var equipmentPool = []string{
	"Barbell", "Dumbbells", "Kettlebell", "Resistance Band", "Bodyweight", "Cable Machine",
}

// Factory builds domain entities and persists them through the repository
// layer, so seeded data obeys the same invariants as application writes.
type Factory struct {
	users        repository.UserRepository
	workoutTypes repository.WorkoutTypeRepository
	exercises    repository.ExerciseRepository
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		users:        repository.NewUserRepository(db),
		workoutTypes: repository.NewWorkoutTypeRepository(db),
		exercises:    repository.NewExerciseRepository(db),
	}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:        gofakeit.Email(),
		PasswordHash: string(hashed),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateWorkoutType constructs and persists a sample workout type.
func (f *Factory) CreateWorkoutType(ctx context.Context, overrides ...func(*models.WorkoutType)) (*models.WorkoutType, error) {
	target := muscleGroups[gofakeit.Number(0, len(muscleGroups)-1)]
	workoutType := &models.WorkoutType{
		WorkoutName:         fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), target),
		MuscleGroupTargeted: target,
		CategoryType:        gofakeit.RandomString([]string{"Weightlifting", "Cardio", "Mobility", "Calisthenics"}),
		Description:         gofakeit.Sentence(10),
		DifficultyLevel:     difficultyLevels[gofakeit.Number(0, len(difficultyLevels)-1)],
	}

	for _, override := range overrides {
		override(workoutType)
	}

	if err := f.workoutTypes.Create(ctx, workoutType); err != nil {
		return nil, err
	}
	return workoutType, nil
}

// CreateExercise constructs and persists a sample exercise under the given
// workout type.
func (f *Factory) CreateExercise(ctx context.Context, workoutType *models.WorkoutType, overrides ...func(*models.Exercise)) (*models.Exercise, error) {
	calories := gofakeit.Float64Range(3, 15)
	exercise := &models.Exercise{
		WorkoutTypeID:           workoutType.ID,
		ExerciseName:            fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), gofakeit.NounConcrete()),
		Description:             gofakeit.Sentence(12),
		EquipmentRequired:       equipmentPool[gofakeit.Number(0, len(equipmentPool)-1)],
		PrimaryMuscleGroup:      workoutType.MuscleGroupTargeted,
		DifficultyLevel:         difficultyLevels[gofakeit.Number(0, len(difficultyLevels)-1)],
		CaloriesBurnedPerMinute: &calories,
		MuscleGroupsSecondary:   muscleGroups[gofakeit.Number(0, len(muscleGroups)-1)],
		VideoTutorialLink:       gofakeit.URL(),
		ImageURL:                fmt.Sprintf("https://picsum.photos/seed/%s/600/400", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(exercise)
	}

	if err := f.exercises.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}
