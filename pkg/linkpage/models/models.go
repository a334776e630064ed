package models

import "gorm.io/gorm"

// AllModels returns all models for migration
// Note: Profile must be migrated first as links and clicks depend on it
func AllModels() []interface{} {
	return []interface{}{
		&Profile{},
		&Link{},
		&Click{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
