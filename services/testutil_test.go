package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/daniel-odulate22/NutriTrack-API/config"
	"github.com/daniel-odulate22/NutriTrack-API/models"
	"github.com/daniel-odulate22/NutriTrack-API/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a pooled :memory: database is one database per connection; keep one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, goal models.Goal) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("Secret123")
	require.NoError(t, err)
	user := models.User{Name: "Test User", Email: email, Password: hash, Goal: goal}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createFood(t *testing.T, db *gorm.DB, name string, calories, protein float64) *models.Food {
	t.Helper()
	food := models.Food{Name: name, ServingUnit: "100g", Calories: calories, ProteinG: protein}
	require.NoError(t, db.Create(&food).Error)
	return &food
}

func ptr[T any](v T) *T { return &v }
