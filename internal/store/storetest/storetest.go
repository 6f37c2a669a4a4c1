// Package storetest opens throwaway SQLite-backed gateways for tests.
package storetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/giftgenie-teelab/server/internal/store"
	"github.com/giftgenie-teelab/server/pkg/database"
	"gorm.io/gorm"
)

// Open returns a migrated SQLite database in a temp dir.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &database.Config{
		URL:    filepath.Join(t.TempDir(), "store.db"),
		Driver: database.DriverSQLite,
	}
	db, err := cfg.New()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := store.NewGateway(db).Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// NewGateway returns a gateway over Open(t).
func NewGateway(t testing.TB) *store.Gateway {
	t.Helper()
	return store.NewGateway(Open(t))
}
