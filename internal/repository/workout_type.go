package repository

import (
	"context"
	"errors"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/observability"

	"gorm.io/gorm"
)

// WorkoutTypeRepository defines persistence operations for workout types.
type WorkoutTypeRepository interface {
	Create(ctx context.Context, workoutType *models.WorkoutType) error
	GetByID(ctx context.Context, id uint) (*models.WorkoutType, error)
	GetByName(ctx context.Context, name string) (*models.WorkoutType, error)
	Update(ctx context.Context, workoutType *models.WorkoutType) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.WorkoutType, error)
}

type workoutTypeRepository struct {
	db *gorm.DB
}

// NewWorkoutTypeRepository returns a new WorkoutTypeRepository implementation.
func NewWorkoutTypeRepository(db *gorm.DB) WorkoutTypeRepository {
	return &workoutTypeRepository{db: db}
}

func (r *workoutTypeRepository) Create(ctx context.Context, workoutType *models.WorkoutType) error {
	defer observability.ObserveQuery("create", "workout_types", time.Now())

	if err := workoutType.Validate(); err != nil {
		return observed("create", "workout_types", err)
	}
	if err := r.db.WithContext(ctx).Create(workoutType).Error; err != nil {
		return observed("create", "workout_types", models.NewInternalError(err))
	}
	return nil
}

func (r *workoutTypeRepository) GetByID(ctx context.Context, id uint) (*models.WorkoutType, error) {
	defer observability.ObserveQuery("get", "workout_types", time.Now())

	var workoutType models.WorkoutType
	if err := r.db.WithContext(ctx).First(&workoutType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, observed("get", "workout_types", models.NewNotFoundError("WorkoutType", id))
		}
		return nil, observed("get", "workout_types", models.NewInternalError(err))
	}
	return &workoutType, nil
}

func (r *workoutTypeRepository) GetByName(ctx context.Context, name string) (*models.WorkoutType, error) {
	var workoutType models.WorkoutType
	if err := r.db.WithContext(ctx).Where("workout_name = ?", name).First(&workoutType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, observed("get", "workout_types", models.NewInternalError(err))
	}
	return &workoutType, nil
}

func (r *workoutTypeRepository) Update(ctx context.Context, workoutType *models.WorkoutType) error {
	defer observability.ObserveQuery("update", "workout_types", time.Now())

	if err := workoutType.Validate(); err != nil {
		return observed("update", "workout_types", err)
	}

	var existing models.WorkoutType
	if err := r.db.WithContext(ctx).First(&existing, workoutType.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return observed("update", "workout_types", models.NewNotFoundError("WorkoutType", workoutType.ID))
		}
		return observed("update", "workout_types", models.NewInternalError(err))
	}

	workoutType.CreatedTimestamp = existing.CreatedTimestamp

	if err := r.db.WithContext(ctx).Save(workoutType).Error; err != nil {
		return observed("update", "workout_types", models.NewInternalError(err))
	}
	return nil
}

// Delete removes a workout type. Exercises keep an independent lifecycle, so
// the delete is rejected while any exercise still references the type.
func (r *workoutTypeRepository) Delete(ctx context.Context, id uint) error {
	defer observability.ObserveQuery("delete", "workout_types", time.Now())

	var dependents int64
	if err := r.db.WithContext(ctx).Model(&models.Exercise{}).
		Where("workout_type_id = ?", id).Count(&dependents).Error; err != nil {
		return observed("delete", "workout_types", models.NewInternalError(err))
	}
	if dependents > 0 {
		return observed("delete", "workout_types", models.NewDependencyConflictError("workout type still has exercises"))
	}

	res := r.db.WithContext(ctx).Delete(&models.WorkoutType{}, id)
	if res.Error != nil {
		return observed("delete", "workout_types", models.NewInternalError(res.Error))
	}
	if res.RowsAffected == 0 {
		return observed("delete", "workout_types", models.NewNotFoundError("WorkoutType", id))
	}
	return nil
}

func (r *workoutTypeRepository) List(ctx context.Context, limit, offset int) ([]models.WorkoutType, error) {
	defer observability.ObserveQuery("list", "workout_types", time.Now())

	var workoutTypes []models.WorkoutType
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&workoutTypes).Error; err != nil {
		return nil, observed("list", "workout_types", models.NewInternalError(err))
	}
	return workoutTypes, nil
}
