package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	src, _, _ := NewTestDataBuilder(t).
		WithLead("Ann", models.LeadHot, 100).
		WithLead("Ben", models.LeadWon, 200).
		WithSale("Deal", 300, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)).
		Build()

	snap, err := src.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Leads) != 2 || len(snap.Sales) != 1 {
		t.Fatalf("unexpected snapshot sizes: %d leads, %d sales", len(snap.Leads), len(snap.Sales))
	}

	dst := setupTestDB(t, ctx)
	if _, err := dst.AddLead(ctx, models.NewLead{Name: "Replaced"}); err != nil {
		t.Fatalf("AddLead failed: %v", err)
	}
	if err := dst.RestoreSnapshot(ctx, snap); err != nil {
		t.Fatalf("RestoreSnapshot failed: %v", err)
	}
	got, err := dst.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if diff := cmp.Diff(snap, got); diff != "" {
		t.Fatalf("restored data differs (-want +got):\n%s", diff)
	}
}

func TestRestoreSnapshotRejectsInvalidRows(t *testing.T) {
	ctx := context.Background()
	db, _, _ := NewTestDataBuilder(t).WithLead("Keep", models.LeadCold, 1).Build()
	bad := Snapshot{Leads: []models.Lead{{ID: 5, Name: "x", Status: "Nope", CreatedAt: time.Now()}}}
	if err := db.RestoreSnapshot(ctx, bad); !errors.Is(err, ErrInvalidLead) {
		t.Fatalf("expected ErrInvalidLead, got %v", err)
	}
	leads, err := db.GetLeads(ctx)
	if err != nil {
		t.Fatalf("GetLeads failed: %v", err)
	}
	if len(leads) != 1 || leads[0].Name != "Keep" {
		t.Fatalf("expected original data after failed restore, got %+v", leads)
	}
}
