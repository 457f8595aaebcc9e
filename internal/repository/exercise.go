package repository

import (
	"context"
	"errors"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/observability"

	"gorm.io/gorm"
)

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *models.Exercise) error
	GetByID(ctx context.Context, id uint) (*models.Exercise, error)
	Update(ctx context.Context, exercise *models.Exercise) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.Exercise, error)
	ListByWorkoutType(ctx context.Context, workoutTypeID uint) ([]models.Exercise, error)
	ListByIDs(ctx context.Context, ids []uint) ([]models.Exercise, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository returns a new ExerciseRepository implementation.
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	defer observability.ObserveQuery("create", "exercises", time.Now())

	if err := exercise.Validate(); err != nil {
		return observed("create", "exercises", err)
	}

	ok, err := rowExists(ctx, r.db, &models.WorkoutType{}, exercise.WorkoutTypeID)
	if err != nil {
		return observed("create", "exercises", err)
	}
	if !ok {
		return observed("create", "exercises",
			models.NewConstraintViolationError("workout_type_id references a missing workout type"))
	}

	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return observed("create", "exercises", models.NewInternalError(err))
	}
	return nil
}

func (r *exerciseRepository) GetByID(ctx context.Context, id uint) (*models.Exercise, error) {
	defer observability.ObserveQuery("get", "exercises", time.Now())

	var exercise models.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, observed("get", "exercises", models.NewNotFoundError("Exercise", id))
		}
		return nil, observed("get", "exercises", models.NewInternalError(err))
	}
	return &exercise, nil
}

func (r *exerciseRepository) Update(ctx context.Context, exercise *models.Exercise) error {
	defer observability.ObserveQuery("update", "exercises", time.Now())

	if err := exercise.Validate(); err != nil {
		return observed("update", "exercises", err)
	}

	var existing models.Exercise
	if err := r.db.WithContext(ctx).First(&existing, exercise.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return observed("update", "exercises", models.NewNotFoundError("Exercise", exercise.ID))
		}
		return observed("update", "exercises", models.NewInternalError(err))
	}

	ok, err := rowExists(ctx, r.db, &models.WorkoutType{}, exercise.WorkoutTypeID)
	if err != nil {
		return observed("update", "exercises", err)
	}
	if !ok {
		return observed("update", "exercises",
			models.NewConstraintViolationError("workout_type_id references a missing workout type"))
	}

	exercise.CreatedTimestamp = existing.CreatedTimestamp

	if err := r.db.WithContext(ctx).Save(exercise).Error; err != nil {
		return observed("update", "exercises", models.NewInternalError(err))
	}
	return nil
}

// Delete removes an exercise. Historical logs keep the exercise alive: the
// delete is rejected while any exercise log still references it.
func (r *exerciseRepository) Delete(ctx context.Context, id uint) error {
	defer observability.ObserveQuery("delete", "exercises", time.Now())

	var dependents int64
	if err := r.db.WithContext(ctx).Model(&models.ExerciseLog{}).
		Where("exercise_id = ?", id).Count(&dependents).Error; err != nil {
		return observed("delete", "exercises", models.NewInternalError(err))
	}
	if dependents > 0 {
		return observed("delete", "exercises", models.NewDependencyConflictError("exercise is referenced by exercise logs"))
	}

	res := r.db.WithContext(ctx).Delete(&models.Exercise{}, id)
	if res.Error != nil {
		return observed("delete", "exercises", models.NewInternalError(res.Error))
	}
	if res.RowsAffected == 0 {
		return observed("delete", "exercises", models.NewNotFoundError("Exercise", id))
	}
	return nil
}

func (r *exerciseRepository) List(ctx context.Context, limit, offset int) ([]models.Exercise, error) {
	defer observability.ObserveQuery("list", "exercises", time.Now())

	var exercises []models.Exercise
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&exercises).Error; err != nil {
		return nil, observed("list", "exercises", models.NewInternalError(err))
	}
	return exercises, nil
}

func (r *exerciseRepository) ListByWorkoutType(ctx context.Context, workoutTypeID uint) ([]models.Exercise, error) {
	defer observability.ObserveQuery("list", "exercises", time.Now())

	var exercises []models.Exercise
	if err := r.db.WithContext(ctx).Where("workout_type_id = ?", workoutTypeID).Find(&exercises).Error; err != nil {
		return nil, observed("list", "exercises", models.NewInternalError(err))
	}
	return exercises, nil
}

func (r *exerciseRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Exercise, error) {
	defer observability.ObserveQuery("list", "exercises", time.Now())

	if len(ids) == 0 {
		return nil, nil
	}
	var exercises []models.Exercise
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&exercises).Error; err != nil {
		return nil, observed("list", "exercises", models.NewInternalError(err))
	}
	return exercises, nil
}
