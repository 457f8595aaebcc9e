package database

import "fitlog/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Order matters: referenced tables migrate before their dependents.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.WorkoutType{},
		&models.Exercise{},
		&models.WorkoutSession{},
		&models.ExerciseLog{},
	}
}
