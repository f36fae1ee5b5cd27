package database

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestLeadStatisticsEmpty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	stats, err := db.GetLeadStatistics(ctx)
	if err != nil {
		t.Fatalf("GetLeadStatistics failed: %v", err)
	}
	if diff := cmp.Diff(models.LeadStats{}, stats); diff != "" {
		t.Fatalf("expected zero stats (-want +got):\n%s", diff)
	}
	rev, err := db.GetRevenueStats(ctx)
	if err != nil {
		t.Fatalf("GetRevenueStats failed: %v", err)
	}
	if rev.Total != 0 || rev.Count != 0 {
		t.Fatalf("expected zero revenue, got %+v", rev)
	}
}

func TestLeadStatisticsMixed(t *testing.T) {
	db, _, _ := NewTestDataBuilder(t).
		WithLead("a", models.LeadWon, 1000).
		WithLead("b", models.LeadWon, 2000).
		WithLead("c", models.LeadLost, 500).
		WithLead("d", models.LeadCold, 300).
		Build()
	stats, err := db.GetLeadStatistics(context.Background())
	if err != nil {
		t.Fatalf("GetLeadStatistics failed: %v", err)
	}
	want := models.LeadStats{Total: 4, Won: 2, Lost: 1, Active: 1, PipelineValue: 300, ConversionRate: 50}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestConversionRateRounds(t *testing.T) {
	if got := conversionRate(1, 3); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	if got := conversionRate(2, 3); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
	if got := conversionRate(0, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestRevenueStats(t *testing.T) {
	db, _, _ := NewTestDataBuilder(t).
		WithSale("x", 100.25, time.Now()).
		WithSale("y", 200.5, time.Now()).
		Build()
	stats, err := db.GetRevenueStats(context.Background())
	if err != nil {
		t.Fatalf("GetRevenueStats failed: %v", err)
	}
	if stats.Total != 300.75 || stats.Count != 2 {
		t.Fatalf("unexpected revenue %+v", stats)
	}
}

func TestPipelineCounts(t *testing.T) {
	db, _, _ := NewTestDataBuilder(t).
		WithLead("a", models.LeadHot, 1).
		WithLead("b", models.LeadHot, 1).
		WithLead("c", models.LeadLost, 1).
		Build()
	counts, err := db.GetPipelineCounts(context.Background())
	if err != nil {
		t.Fatalf("GetPipelineCounts failed: %v", err)
	}
	want := models.PipelineCounts{
		models.LeadCold: 0,
		models.LeadWarm: 0,
		models.LeadHot:  2,
		models.LeadWon:  0,
		models.LeadLost: 1,
	}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Fatalf("unexpected counts (-want +got):\n%s", diff)
	}
}

func TestCountLeadsSince(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	current := base
	db := setupTestDB(t, ctx, WithClock(func() time.Time { return current }))
	for i := 0; i < 4; i++ {
		current = base.AddDate(0, 0, i*7)
		if _, err := db.AddLead(ctx, models.NewLead{Name: "lead"}); err != nil {
			t.Fatalf("AddLead failed: %v", err)
		}
	}
	n, err := db.CountLeadsSince(ctx, base.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("CountLeadsSince failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 leads on or after the cutoff, got %d", n)
	}
}

func TestMonthlyRevenue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.Local)
	db := setupTestDB(t, ctx, WithClock(func() time.Time { return now }))
	for _, s := range []struct {
		amount float64
		date   time.Time
	}{
		{100, time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local)},
		{50, time.Date(2026, 6, 19, 9, 0, 0, 0, time.Local)},
		{70, time.Date(2026, 4, 30, 23, 0, 0, 0, time.Local)},
		{999, time.Date(2025, 12, 31, 9, 0, 0, 0, time.Local)},
	} {
		if _, err := db.AddSaleAt(ctx, "sale", s.amount, s.date); err != nil {
			t.Fatalf("AddSaleAt failed: %v", err)
		}
	}

	got, err := db.GetMonthlyRevenue(ctx, 3)
	if err != nil {
		t.Fatalf("GetMonthlyRevenue failed: %v", err)
	}
	want := []models.MonthlyRevenue{
		{Month: "2026-04", Total: 70},
		{Month: "2026-05", Total: 0},
		{Month: "2026-06", Total: 150},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected monthly revenue (-want +got):\n%s", diff)
	}

	empty, err := db.GetMonthlyRevenue(ctx, 0)
	if err != nil {
		t.Fatalf("GetMonthlyRevenue(0) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no buckets, got %d", len(empty))
	}
}
