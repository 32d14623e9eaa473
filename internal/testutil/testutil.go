// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/unistack-app/unistack/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an isolated in-memory database with the forum schema
// migrated. A single connection keeps every query on the same
// in-memory instance.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Answer{},
		&model.Comment{},
	))
	return db
}

// SeedUser inserts a user directly; the password field holds an opaque
// placeholder since repository-level tests never verify it.
func SeedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
