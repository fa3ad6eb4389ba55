package services

import (
	"testing"
	"time"

	"github.com/LunaaVerse/ttm-sub002/internal/actor"
	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. The pool is capped at one
// connection so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Barangay{},
		&models.Report{},
		&models.AssignmentLog{},
		&models.ConditionCost{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.Role, verified bool) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    name + "@test.local",
		Password: "x",
		Role:     role,
		Verified: verified,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func asActor(u *models.User) actor.Actor {
	return actor.Actor{ID: u.ID, Name: u.Name, Role: u.Role}
}

// seedReport inserts a report directly in the given state, bypassing the
// lifecycle manager, for fixture setup.
func seedReport(t *testing.T, db *gorm.DB, mutate func(r *models.Report)) *models.Report {
	t.Helper()
	report := models.Report{
		ReportDate:    time.Now().UTC(),
		Location:      "Session Road corner Magsaysay",
		Barangay:      "Poblacion",
		RoadType:      models.RoadTypeMajor,
		ConditionType: models.ConditionPothole,
		Severity:      models.SeverityMedium,
		Status:        models.StatusPending,
		ReporterName:  "Citizen",
		ReporterRole:  models.RoleUser,
	}
	if mutate != nil {
		mutate(&report)
	}
	require.NoError(t, db.Create(&report).Error)
	return &report
}

func logCount(t *testing.T, db *gorm.DB, reportID uint) int64 {
	t.Helper()
	var count int64
	q := db.Model(&models.AssignmentLog{})
	if reportID > 0 {
		q = q.Where("report_id = ?", reportID)
	}
	require.NoError(t, q.Count(&count).Error)
	return count
}

func timePtr(ts time.Time) *time.Time { return &ts }

func priorityPtr(p models.Priority) *models.Priority { return &p }
