package repository

import (
	"context"
	"errors"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	defer observability.ObserveQuery("create", "users", time.Now())

	if err := user.Validate(); err != nil {
		return observed("create", "users", err)
	}

	// Uniqueness is an application-layer rule, not a schema constraint.
	if existing, err := r.GetByUsername(ctx, user.Username); err != nil {
		return observed("create", "users", err)
	} else if existing != nil {
		return observed("create", "users", models.NewConstraintViolationError("username already taken"))
	}
	if existing, err := r.GetByEmail(ctx, user.Email); err != nil {
		return observed("create", "users", err)
	} else if existing != nil {
		return observed("create", "users", models.NewConstraintViolationError("email already registered"))
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return observed("create", "users", models.NewConstraintViolationError("user already exists"))
		}
		return observed("create", "users", models.NewInternalError(err))
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	defer observability.ObserveQuery("get", "users", time.Now())

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, observed("get", "users", models.NewNotFoundError("User", id))
		}
		return nil, observed("get", "users", models.NewInternalError(err))
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, observed("get", "users", models.NewInternalError(err))
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, observed("get", "users", models.NewInternalError(err))
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	defer observability.ObserveQuery("update", "users", time.Now())

	if err := user.Validate(); err != nil {
		return observed("update", "users", err)
	}

	var existing models.User
	if err := r.db.WithContext(ctx).First(&existing, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return observed("update", "users", models.NewNotFoundError("User", user.ID))
		}
		return observed("update", "users", models.NewInternalError(err))
	}

	// Uniqueness check excluding the row being updated.
	var clashes int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("(username = ? OR email = ?) AND id <> ?", user.Username, user.Email, user.ID).
		Count(&clashes).Error; err != nil {
		return observed("update", "users", models.NewInternalError(err))
	}
	if clashes > 0 {
		return observed("update", "users", models.NewConstraintViolationError("username or email already in use"))
	}

	// created_timestamp is immutable.
	user.CreatedTimestamp = existing.CreatedTimestamp

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return observed("update", "users", models.NewInternalError(err))
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	defer observability.ObserveQuery("delete", "users", time.Now())

	var sessions int64
	if err := r.db.WithContext(ctx).Model(&models.WorkoutSession{}).
		Where("user_id = ?", id).Count(&sessions).Error; err != nil {
		return observed("delete", "users", models.NewInternalError(err))
	}
	if sessions > 0 {
		return observed("delete", "users", models.NewDependencyConflictError("user still owns workout sessions"))
	}

	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return observed("delete", "users", models.NewInternalError(res.Error))
	}
	if res.RowsAffected == 0 {
		return observed("delete", "users", models.NewNotFoundError("User", id))
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	defer observability.ObserveQuery("list", "users", time.Now())

	var users []models.User
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, observed("list", "users", models.NewInternalError(err))
	}
	return users, nil
}
