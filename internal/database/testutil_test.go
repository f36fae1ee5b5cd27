package database

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
)

type TestDataBuilder struct {
	t       *testing.T
	ctx     context.Context
	db      *Database
	leadIDs []int64
	saleIDs []int64
}

func NewTestDataBuilder(t *testing.T, opts ...Option) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx, opts...)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithLead(name string, status models.LeadStatus, value float64) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.AddLead(b.ctx, models.NewLead{Name: name, Status: status, Value: value})
	if err != nil {
		b.t.Fatalf("AddLead failed: %v", err)
	}
	b.leadIDs = append(b.leadIDs, id)
	return b
}

func (b *TestDataBuilder) WithSale(description string, amount float64, date time.Time) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.AddSaleAt(b.ctx, description, amount, date)
	if err != nil {
		b.t.Fatalf("AddSaleAt failed: %v", err)
	}
	b.saleIDs = append(b.saleIDs, id)
	return b
}

func (b *TestDataBuilder) Build() (*Database, []int64, []int64) {
	return b.db, b.leadIDs, b.saleIDs
}

func (b *TestDataBuilder) Context() context.Context {
	return b.ctx
}
