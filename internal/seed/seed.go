package seed

import (
	"context"
	"log/slog"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/observability"
	"fitlog/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much demo data the seeder creates.
type Options struct {
	Users               int
	WorkoutTypes        int
	ExercisesPerType    int
	SessionsPerUser     int
	ExercisesPerSession int
}

// DefaultOptions returns a small but representative demo dataset shape.
func DefaultOptions() Options {
	return Options{
		Users:               10,
		WorkoutTypes:        4,
		ExercisesPerType:    5,
		SessionsPerUser:     2,
		ExercisesPerSession: 3,
	}
}

// Seeder populates the database with demo data through the repository and
// service layers.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	svc     *service.WorkoutService
}

// NewSeeder creates a Seeder bound to the given database handle.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		svc:     service.NewWorkoutService(db),
	}
}

// ClearAll removes all seeded rows, children before parents so the restrict
// rules never fire.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.ExerciseLog{},
		&models.WorkoutSession{},
		&models.Exercise{},
		&models.WorkoutType{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// Run seeds users, workout types with exercises, and recorded workout
// sessions per the given options.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	logger := observability.GlobalLogger

	var exercises []*models.Exercise
	for i := 0; i < opts.WorkoutTypes; i++ {
		workoutType, err := s.factory.CreateWorkoutType(ctx)
		if err != nil {
			return err
		}
		for j := 0; j < opts.ExercisesPerType; j++ {
			exercise, err := s.factory.CreateExercise(ctx, workoutType)
			if err != nil {
				return err
			}
			exercises = append(exercises, exercise)
		}
	}
	logger.Info("seeded exercise catalog",
		slog.Int("workout_types", opts.WorkoutTypes),
		slog.Int("exercises", len(exercises)))

	for i := 0; i < opts.Users; i++ {
		user, err := s.factory.CreateUser(ctx)
		if err != nil {
			return err
		}

		for j := 0; j < opts.SessionsPerUser; j++ {
			ids := pickExerciseIDs(exercises, opts.ExercisesPerSession)
			if len(ids) == 0 {
				continue
			}
			exertion := gofakeit.Number(4, 9)
			_, err := s.svc.RecordWorkoutSession(ctx, service.RecordWorkoutSessionInput{
				UserID:            user.ID,
				ExerciseIDs:       ids,
				Location:          gofakeit.RandomString([]string{"Home Gym", "Downtown Gym", "Garage", "Park"}),
				PerceivedExertion: &exertion,
				Notes:             gofakeit.Sentence(6),
				WorkoutSource:     "seed",
			})
			if err != nil {
				return err
			}
		}
	}
	logger.Info("seeded users and sessions",
		slog.Int("users", opts.Users),
		slog.Int("sessions_per_user", opts.SessionsPerUser))

	return nil
}

// pickExerciseIDs samples up to n distinct exercise IDs from the catalog.
func pickExerciseIDs(exercises []*models.Exercise, n int) []uint {
	if n > len(exercises) {
		n = len(exercises)
	}
	indexes := make([]int, len(exercises))
	for i := range indexes {
		indexes[i] = i
	}
	gofakeit.ShuffleInts(indexes)

	ids := make([]uint, 0, n)
	for _, idx := range indexes[:n] {
		ids = append(ids, exercises[idx].ID)
	}
	return ids
}
