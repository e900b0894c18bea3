package test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"

	"tdm/internal/adapter/database/sqlite"
)

// findProjectRoot walks up from this file until it hits go.mod, so tests can
// locate the migrations regardless of which package runs them.
func findProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}

// InitTestDB opens a migrated in-memory sqlite database. The adapter keeps
// the pool at one connection, which is what makes :memory: usable here.
func InitTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	migrationsPath := filepath.Join(findProjectRoot(), "db", "migrations")

	db, err := sqlite.NewDB(":memory:", migrationsPath, zerolog.Nop())

	if err != nil {
		t.Fatalf("init test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
