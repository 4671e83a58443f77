package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.HostelComplaint{},
		&models.Notice{},
		&models.Notification{},
		&models.Event{},
		&models.EventHistory{},
		&models.Poll{},
		&models.PollOption{},
		&models.Club{},
		&models.LostItem{},
		&models.PlacementDrive{},
	))
	return db
}
