package sqlitemigrate

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", t.TempDir()+"/migrate.db")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func TestApplyMigrationsRunsInOrder(t *testing.T) {
	sqlDB := openTestDB(t)
	migrationFS := fstest.MapFS{
		"0001_base.sql": {Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);")},
		"0002_more.sql": {Data: []byte("ALTER TABLE widgets ADD COLUMN label TEXT NOT NULL DEFAULT '';")},
	}

	if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if _, err := sqlDB.Exec("INSERT INTO widgets (id, label) VALUES ('w1', 'first')"); err != nil {
		t.Fatalf("schema incomplete: %v", err)
	}
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	sqlDB := openTestDB(t)
	migrationFS := fstest.MapFS{
		"0001_base.sql": {Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);")},
	}

	if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := ApplyMigrations(sqlDB, migrationFS); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 1 {
		t.Fatalf("migration recorded %d times, want 1", count)
	}
}

func TestApplyMigrationsNilDB(t *testing.T) {
	if err := ApplyMigrations(nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error for nil db")
	}
}
