// Package service implements the composite workflows built on top of the
// repository layer.
package service

import (
	"context"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/repository"

	"gorm.io/gorm"
)

// DefaultSetsPerExercise is used when a recording request does not specify
// how many sets to log per exercise.
const DefaultSetsPerExercise = 3

const (
	standardReps       = 10
	finalSetReps       = 8
	compoundWeight     = 50.0
	accessoryWeight    = 25.0
	defaultRestSeconds = 60
	defaultDifficulty  = "Medium"
)

// compoundMuscleGroups are the muscle groups that get the heavier default
// working weight.
var compoundMuscleGroups = map[string]bool{
	"Chest": true,
	"Back":  true,
	"Legs":  true,
}

// WorkoutService exposes composite operations that span multiple entities.
// Multi-row writes run inside a single database transaction.
type WorkoutService struct {
	db           *gorm.DB
	users        repository.UserRepository
	workoutTypes repository.WorkoutTypeRepository
	exercises    repository.ExerciseRepository
	sessions     repository.WorkoutSessionRepository
}

// NewWorkoutService returns a WorkoutService bound to the given database handle.
func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{
		db:           db,
		users:        repository.NewUserRepository(db),
		workoutTypes: repository.NewWorkoutTypeRepository(db),
		exercises:    repository.NewExerciseRepository(db),
		sessions:     repository.NewWorkoutSessionRepository(db),
	}
}

// SeedWorkoutTypeInput carries the descriptive fields for a new workout type.
type SeedWorkoutTypeInput struct {
	WorkoutName         string
	MuscleGroupTargeted string
	CategoryType        string
	Description         string
	DifficultyLevel     string
}

// SeedWorkoutType constructs and persists one workout type. Repeated calls
// with the same fields create duplicate rows; the operation is intentionally
// not idempotent.
func (s *WorkoutService) SeedWorkoutType(ctx context.Context, in SeedWorkoutTypeInput) (*models.WorkoutType, error) {
	workoutType := &models.WorkoutType{
		WorkoutName:         in.WorkoutName,
		MuscleGroupTargeted: in.MuscleGroupTargeted,
		CategoryType:        in.CategoryType,
		Description:         in.Description,
		DifficultyLevel:     in.DifficultyLevel,
	}
	if err := s.workoutTypes.Create(ctx, workoutType); err != nil {
		return nil, err
	}
	return workoutType, nil
}

// RecordWorkoutSessionInput describes a workout to record for a user.
type RecordWorkoutSessionInput struct {
	UserID      uint
	ExerciseIDs []uint
	// SetsPerExercise defaults to DefaultSetsPerExercise when zero.
	SetsPerExercise   int
	Location          string
	PerceivedExertion *int
	Notes             string
	WorkoutSource     string
}

// RecordWorkoutSession creates a workout session for the user and one
// exercise log per exercise per set, atomically. The last set of each
// exercise logs fewer repetitions; exercises targeting a compound muscle
// group get the heavier default weight. Either the session and every log are
// persisted, or nothing is.
func (s *WorkoutService) RecordWorkoutSession(ctx context.Context, in RecordWorkoutSessionInput) (*models.WorkoutSession, error) {
	sets := in.SetsPerExercise
	if sets == 0 {
		sets = DefaultSetsPerExercise
	}
	if sets < 1 {
		return nil, models.NewPreconditionError("sets_per_exercise must be at least 1")
	}

	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewPreconditionError("user does not exist")
		}
		return nil, err
	}

	if len(in.ExerciseIDs) == 0 {
		return nil, models.NewPreconditionError("at least one exercise is required")
	}

	exercises, err := s.resolveExercises(ctx, in.ExerciseIDs)
	if err != nil {
		return nil, err
	}

	var session *models.WorkoutSession
	var created []models.ExerciseLog

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessions := repository.NewWorkoutSessionRepository(tx)
		logs := repository.NewExerciseLogRepository(tx)

		start := time.Now().UTC()
		session = &models.WorkoutSession{
			UserID:            in.UserID,
			WorkoutDate:       start,
			StartTime:         &start,
			Location:          in.Location,
			PerceivedExertion: in.PerceivedExertion,
			Notes:             in.Notes,
			WorkoutSource:     in.WorkoutSource,
		}
		if err := sessions.Create(ctx, session); err != nil {
			return err
		}

		for _, exercise := range exercises {
			for set := 1; set <= sets; set++ {
				log := buildSetLog(session.ID, exercise, set, sets)
				if err := logs.Create(ctx, log); err != nil {
					return err
				}
				created = append(created, *log)
			}
		}

		end := time.Now().UTC()
		session.EndTime = &end
		minutes, _ := session.DurationMinutes()
		session.TotalDuration = &minutes

		return sessions.Update(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	session.ExerciseLogs = created
	return session, nil
}

// buildSetLog produces the default log row for one set of an exercise.
func buildSetLog(sessionID uint, exercise models.Exercise, set, totalSets int) *models.ExerciseLog {
	reps := standardReps
	if set == totalSets {
		reps = finalSetReps
	}
	weight := accessoryWeight
	if compoundMuscleGroups[exercise.PrimaryMuscleGroup] {
		weight = compoundWeight
	}
	setNumber := set
	rest := defaultRestSeconds
	return &models.ExerciseLog{
		SessionID:       sessionID,
		ExerciseID:      exercise.ID,
		SetNumber:       &setNumber,
		Repetitions:     &reps,
		Weight:          &weight,
		RestTime:        &rest,
		DifficultyLevel: defaultDifficulty,
	}
}

// resolveExercises loads the requested exercises, preserving request order
// and rejecting IDs that do not exist.
func (s *WorkoutService) resolveExercises(ctx context.Context, ids []uint) ([]models.Exercise, error) {
	found, err := s.exercises.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, models.NewPreconditionError("none of the requested exercises exist")
	}

	byID := make(map[uint]models.Exercise, len(found))
	for _, exercise := range found {
		byID[exercise.ID] = exercise
	}

	seen := make(map[uint]bool, len(ids))
	ordered := make([]models.Exercise, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		exercise, ok := byID[id]
		if !ok {
			return nil, models.NewConstraintViolationError("exercise_id references a missing exercise")
		}
		ordered = append(ordered, exercise)
	}
	return ordered, nil
}

// CompleteSession closes an open session at the given end time and stores
// the derived total duration in whole minutes.
func (s *WorkoutService) CompleteSession(ctx context.Context, sessionID uint, endTime time.Time) (*models.WorkoutSession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.StartTime == nil {
		return nil, models.NewPreconditionError("session has no start_time")
	}

	end := endTime.UTC()
	session.EndTime = &end
	minutes, ok := session.DurationMinutes()
	if !ok {
		return nil, models.NewPreconditionError("session start and end time are required")
	}
	session.TotalDuration = &minutes

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
