package repository

import (
	"context"
	"errors"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/observability"

	"gorm.io/gorm"
)

// ExerciseLogRepository defines persistence operations for exercise logs.
type ExerciseLogRepository interface {
	Create(ctx context.Context, log *models.ExerciseLog) error
	GetByID(ctx context.Context, id uint) (*models.ExerciseLog, error)
	Update(ctx context.Context, log *models.ExerciseLog) error
	Delete(ctx context.Context, id uint) error
	ListBySession(ctx context.Context, sessionID uint) ([]models.ExerciseLog, error)
	CountByExercise(ctx context.Context, exerciseID uint) (int64, error)
}

type exerciseLogRepository struct {
	db *gorm.DB
}

// NewExerciseLogRepository returns a new ExerciseLogRepository implementation.
func NewExerciseLogRepository(db *gorm.DB) ExerciseLogRepository {
	return &exerciseLogRepository{db: db}
}

// verifyReferences checks that the session and exercise a log points at exist.
func (r *exerciseLogRepository) verifyReferences(ctx context.Context, log *models.ExerciseLog) error {
	ok, err := rowExists(ctx, r.db, &models.WorkoutSession{}, log.SessionID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewConstraintViolationError("session_id references a missing workout session")
	}

	ok, err = rowExists(ctx, r.db, &models.Exercise{}, log.ExerciseID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewConstraintViolationError("exercise_id references a missing exercise")
	}
	return nil
}

func (r *exerciseLogRepository) Create(ctx context.Context, log *models.ExerciseLog) error {
	defer observability.ObserveQuery("create", "exercise_logs", time.Now())

	if err := log.Validate(); err != nil {
		return observed("create", "exercise_logs", err)
	}
	if err := r.verifyReferences(ctx, log); err != nil {
		return observed("create", "exercise_logs", err)
	}
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return observed("create", "exercise_logs", models.NewInternalError(err))
	}
	return nil
}

func (r *exerciseLogRepository) GetByID(ctx context.Context, id uint) (*models.ExerciseLog, error) {
	defer observability.ObserveQuery("get", "exercise_logs", time.Now())

	var log models.ExerciseLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, observed("get", "exercise_logs", models.NewNotFoundError("ExerciseLog", id))
		}
		return nil, observed("get", "exercise_logs", models.NewInternalError(err))
	}
	return &log, nil
}

func (r *exerciseLogRepository) Update(ctx context.Context, log *models.ExerciseLog) error {
	defer observability.ObserveQuery("update", "exercise_logs", time.Now())

	if err := log.Validate(); err != nil {
		return observed("update", "exercise_logs", err)
	}

	var existing models.ExerciseLog
	if err := r.db.WithContext(ctx).First(&existing, log.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return observed("update", "exercise_logs", models.NewNotFoundError("ExerciseLog", log.ID))
		}
		return observed("update", "exercise_logs", models.NewInternalError(err))
	}

	if err := r.verifyReferences(ctx, log); err != nil {
		return observed("update", "exercise_logs", err)
	}

	log.CreatedTimestamp = existing.CreatedTimestamp

	if err := r.db.WithContext(ctx).Save(log).Error; err != nil {
		return observed("update", "exercise_logs", models.NewInternalError(err))
	}
	return nil
}

func (r *exerciseLogRepository) Delete(ctx context.Context, id uint) error {
	defer observability.ObserveQuery("delete", "exercise_logs", time.Now())

	res := r.db.WithContext(ctx).Delete(&models.ExerciseLog{}, id)
	if res.Error != nil {
		return observed("delete", "exercise_logs", models.NewInternalError(res.Error))
	}
	if res.RowsAffected == 0 {
		return observed("delete", "exercise_logs", models.NewNotFoundError("ExerciseLog", id))
	}
	return nil
}

func (r *exerciseLogRepository) ListBySession(ctx context.Context, sessionID uint) ([]models.ExerciseLog, error) {
	defer observability.ObserveQuery("list", "exercise_logs", time.Now())

	var logs []models.ExerciseLog
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&logs).Error; err != nil {
		return nil, observed("list", "exercise_logs", models.NewInternalError(err))
	}
	return logs, nil
}

func (r *exerciseLogRepository) CountByExercise(ctx context.Context, exerciseID uint) (int64, error) {
	defer observability.ObserveQuery("count", "exercise_logs", time.Now())

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ExerciseLog{}).
		Where("exercise_id = ?", exerciseID).Count(&count).Error; err != nil {
		return 0, observed("count", "exercise_logs", models.NewInternalError(err))
	}
	return count, nil
}
