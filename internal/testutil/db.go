// Package testutil holds database helpers shared by package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"bjjsocial/internal/database"
	"bjjsocial/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a migrated in-memory database private to t.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// CreateUser persists a user with a unique email, applying overrides first.
func CreateUser(t testing.TB, db *gorm.DB, overrides ...func(*models.User)) *models.User {
	t.Helper()

	u := &models.User{
		Email:    fmt.Sprintf("athlete-%d@example.com", nextSeq()),
		Password: "not-a-real-hash",
	}
	for _, o := range overrides {
		o(u)
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

var seq atomic.Int64

func nextSeq() int64 {
	return seq.Add(1)
}
