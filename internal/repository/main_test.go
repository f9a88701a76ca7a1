package repository

import (
	"context"
	"fmt"
	"testing"

	"watchreview/internal/database"
	"watchreview/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database migrated to the current
// schema. Each test gets its own database, so tests stay parallel-safe.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestWatch(t *testing.T, db *gorm.DB, name, brand, model string) models.Watch {
	t.Helper()
	watch := models.Watch{
		Name:          name,
		Brand:         brand,
		Model:         model,
		StrapMaterial: "Leather",
		MetalColor:    "Steel",
		Movement:      "Automatic",
		CaseSize:      40,
	}
	require.NoError(t, db.Create(&watch).Error)
	return watch
}

func createTestReview(t *testing.T, db *gorm.DB, userID, watchID string, score int) models.Review {
	t.Helper()
	review := models.Review{
		UserID:     userID,
		WatchID:    watchID,
		ReviewText: "A solid watch.",
		Score:      score,
	}
	require.NoError(t, db.Create(&review).Error)
	return review
}

func testCtx() context.Context {
	return context.Background()
}
