package migrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/tursodatabase/go-libsql"
)

// testDB opens a fresh file database so each test starts with no tables at
// all, matching a first run against the default local database.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("libsql", "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	if err := EnsureTable(ctx, db); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}

	version, dirty, err := CurrentVersion(ctx, db)
	if err != nil {
		t.Fatalf("CurrentVersion on fresh database: %v", err)
	}
	if version != 0 || dirty {
		t.Errorf("fresh database reported version %d dirty %v, want 0 false", version, dirty)
	}
}

func TestUpReturnsFinalVersion(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	version, err := Up(ctx, db)
	if err != nil {
		t.Fatalf("Up on fresh database: %v", err)
	}
	if version < 1 {
		t.Fatalf("Up returned version %d, want >= 1", version)
	}

	current, dirty, err := CurrentVersion(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	if dirty {
		t.Error("database left dirty after Up")
	}
	if current != version {
		t.Errorf("CurrentVersion = %d, Up returned %d", current, version)
	}

	// With nothing pending, Up reports the same version again.
	again, err := Up(ctx, db)
	if err != nil {
		t.Fatalf("second Up: %v", err)
	}
	if again != version {
		t.Errorf("second Up returned %d, want %d", again, version)
	}
}

func TestDownToRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	if _, err := Up(ctx, db); err != nil {
		t.Fatalf("Up: %v", err)
	}
	if err := DownTo(ctx, db, 0); err != nil {
		t.Fatalf("DownTo: %v", err)
	}

	version, dirty, err := CurrentVersion(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	if version != 0 || dirty {
		t.Errorf("after full rollback version = %d dirty = %v, want 0 false", version, dirty)
	}
}
