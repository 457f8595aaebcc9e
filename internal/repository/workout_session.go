package repository

import (
	"context"
	"errors"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/observability"

	"gorm.io/gorm"
)

// WorkoutSessionRepository defines persistence operations for workout sessions.
type WorkoutSessionRepository interface {
	Create(ctx context.Context, session *models.WorkoutSession) error
	GetByID(ctx context.Context, id uint) (*models.WorkoutSession, error)
	GetByIDWithLogs(ctx context.Context, id uint) (*models.WorkoutSession, error)
	Update(ctx context.Context, session *models.WorkoutSession) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.WorkoutSession, error)
}

type workoutSessionRepository struct {
	db *gorm.DB
}

// NewWorkoutSessionRepository returns a new WorkoutSessionRepository implementation.
func NewWorkoutSessionRepository(db *gorm.DB) WorkoutSessionRepository {
	return &workoutSessionRepository{db: db}
}

// fillTotalDuration computes total_duration from start and end time when the
// caller has not set it explicitly.
func fillTotalDuration(session *models.WorkoutSession) {
	if session.TotalDuration != nil {
		return
	}
	if minutes, ok := session.DurationMinutes(); ok {
		session.TotalDuration = &minutes
	}
}

func (r *workoutSessionRepository) Create(ctx context.Context, session *models.WorkoutSession) error {
	defer observability.ObserveQuery("create", "workout_sessions", time.Now())

	if err := session.Validate(); err != nil {
		return observed("create", "workout_sessions", err)
	}

	ok, err := rowExists(ctx, r.db, &models.User{}, session.UserID)
	if err != nil {
		return observed("create", "workout_sessions", err)
	}
	if !ok {
		return observed("create", "workout_sessions",
			models.NewConstraintViolationError("user_id references a missing user"))
	}

	if session.WorkoutDate.IsZero() {
		session.WorkoutDate = time.Now().UTC()
	}
	fillTotalDuration(session)

	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return observed("create", "workout_sessions", models.NewInternalError(err))
	}
	return nil
}

func (r *workoutSessionRepository) GetByID(ctx context.Context, id uint) (*models.WorkoutSession, error) {
	defer observability.ObserveQuery("get", "workout_sessions", time.Now())

	var session models.WorkoutSession
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, observed("get", "workout_sessions", models.NewNotFoundError("WorkoutSession", id))
		}
		return nil, observed("get", "workout_sessions", models.NewInternalError(err))
	}
	return &session, nil
}

func (r *workoutSessionRepository) GetByIDWithLogs(ctx context.Context, id uint) (*models.WorkoutSession, error) {
	defer observability.ObserveQuery("get", "workout_sessions", time.Now())

	var session models.WorkoutSession
	if err := r.db.WithContext(ctx).
		Preload("ExerciseLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercise_logs.id ASC")
		}).
		First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, observed("get", "workout_sessions", models.NewNotFoundError("WorkoutSession", id))
		}
		return nil, observed("get", "workout_sessions", models.NewInternalError(err))
	}
	return &session, nil
}

func (r *workoutSessionRepository) Update(ctx context.Context, session *models.WorkoutSession) error {
	defer observability.ObserveQuery("update", "workout_sessions", time.Now())

	if err := session.Validate(); err != nil {
		return observed("update", "workout_sessions", err)
	}

	var existing models.WorkoutSession
	if err := r.db.WithContext(ctx).First(&existing, session.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return observed("update", "workout_sessions", models.NewNotFoundError("WorkoutSession", session.ID))
		}
		return observed("update", "workout_sessions", models.NewInternalError(err))
	}

	ok, err := rowExists(ctx, r.db, &models.User{}, session.UserID)
	if err != nil {
		return observed("update", "workout_sessions", err)
	}
	if !ok {
		return observed("update", "workout_sessions",
			models.NewConstraintViolationError("user_id references a missing user"))
	}

	session.CreatedTimestamp = existing.CreatedTimestamp
	fillTotalDuration(session)

	if err := r.db.WithContext(ctx).Save(session).Error; err != nil {
		return observed("update", "workout_sessions", models.NewInternalError(err))
	}
	return nil
}

// Delete removes a session together with the exercise logs it owns, in one
// transaction.
func (r *workoutSessionRepository) Delete(ctx context.Context, id uint) error {
	defer observability.ObserveQuery("delete", "workout_sessions", time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.WorkoutSession
		if err := tx.First(&session, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("WorkoutSession", id)
			}
			return models.NewInternalError(err)
		}
		if err := tx.Where("session_id = ?", id).Delete(&models.ExerciseLog{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.WorkoutSession{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	return observed("delete", "workout_sessions", err)
}

func (r *workoutSessionRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.WorkoutSession, error) {
	defer observability.ObserveQuery("list", "workout_sessions", time.Now())

	var sessions []models.WorkoutSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("workout_date DESC").
		Limit(limit).Offset(offset).
		Find(&sessions).Error; err != nil {
		return nil, observed("list", "workout_sessions", models.NewInternalError(err))
	}
	return sessions, nil
}
