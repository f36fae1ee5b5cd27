package database

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/akyairhashvil/salestrack/internal/models"
)

func TestConcurrentLeadWrites(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := db.AddLead(ctx, models.NewLead{Name: fmt.Sprintf("Lead %d", i), Value: float64(i)}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent add failed: %v", err)
	}
	leads, err := db.GetLeads(ctx)
	if err != nil {
		t.Fatalf("GetLeads failed: %v", err)
	}
	if len(leads) != 20 {
		t.Fatalf("expected 20 leads, got %d", len(leads))
	}
}

func TestConcurrentMarkLeadWonCreatesOneSale(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	id, err := db.AddLead(ctx, models.NewLead{Name: "Race", Value: 700, Status: models.LeadHot})
	if err != nil {
		t.Fatalf("AddLead failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := db.MarkLeadWon(ctx, id); err != nil {
				t.Errorf("MarkLeadWon failed: %v", err)
			}
		}()
	}
	wg.Wait()

	stats, err := db.GetRevenueStats(ctx)
	if err != nil {
		t.Fatalf("GetRevenueStats failed: %v", err)
	}
	if stats.Count != 1 || stats.Total != 700 {
		t.Fatalf("expected exactly one converted sale, got %+v", stats)
	}
}
