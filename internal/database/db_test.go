package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/models"
)

func setupTestDB(t *testing.T, ctx context.Context, opts ...Option) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath, opts...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	reopened, err := Open(ctx, db.Path())
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	defer reopened.Close()
	v, err := reopened.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if v != schemaVersion {
		t.Fatalf("expected schema version %s, got %s", schemaVersion, v)
	}
}

func TestOpen_CreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "deeper", "sales.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	if db.Path() != path {
		t.Fatalf("expected path %s, got %s", path, db.Path())
	}
}

func TestOpen_PureGoDriver(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx, WithDriver(config.DriverModernc))
	id, err := db.AddLead(ctx, models.NewLead{Name: "Pure Go", Value: 10})
	if err != nil {
		t.Fatalf("AddLead failed: %v", err)
	}
	lead, err := db.GetLead(ctx, id)
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	if lead.Name != "Pure Go" {
		t.Fatalf("unexpected lead %+v", lead)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	ctx := context.Background()
	_, err := Open(ctx, filepath.Join(t.TempDir(), "x.db"), WithDriver("postgres"))
	if err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestClosedStoreReturnsNotInitialized(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
	if _, err := db.GetLeads(ctx); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if _, err := db.AddSale(ctx, "x", 1, "2026-01-01"); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	var nilDB *Database
	if _, err := nilDB.GetRevenueStats(ctx); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized on nil store, got %v", err)
	}
}

func TestCancelledContext(t *testing.T) {
	db := setupTestDB(t, context.Background())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := db.GetLeads(ctx); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestWithClockStampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	db := setupTestDB(t, ctx, WithClock(func() time.Time { return fixed }))
	id, err := db.AddLead(ctx, models.NewLead{Name: "Clocked"})
	if err != nil {
		t.Fatalf("AddLead failed: %v", err)
	}
	lead, err := db.GetLead(ctx, id)
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	if !lead.CreatedAt.Equal(fixed) {
		t.Fatalf("expected created_at %v, got %v", fixed, lead.CreatedAt)
	}
}
