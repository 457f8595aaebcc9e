// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"fitlog/internal/models"
	"fitlog/internal/observability"

	"gorm.io/gorm"
)

// rowExists reports whether a row with the given primary key exists in the
// table mapped by model.
func rowExists(ctx context.Context, db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// observed records a repository failure metric, labeled with the error code,
// and passes the error through unchanged.
func observed(operation, table string, err error) error {
	if err == nil {
		return nil
	}
	code := models.CodeInternal
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	observability.RecordRepositoryError(operation, table, code)
	return err
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
