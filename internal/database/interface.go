package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/seed"
)

// LeadRepository defines lead operations.
type LeadRepository interface {
	AddLead(ctx context.Context, lead models.NewLead) (int64, error)
	GetLead(ctx context.Context, id int64) (models.Lead, error)
	GetLeads(ctx context.Context) ([]models.Lead, error)
	FindLeads(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error)
	UpdateLead(ctx context.Context, lead models.Lead) error
	UpdateLeadStatus(ctx context.Context, id int64, status models.LeadStatus) error
	MarkLeadWon(ctx context.Context, id int64) (WonResult, error)
	AddWonLead(ctx context.Context, lead models.NewLead) (WonResult, error)
	EditLead(ctx context.Context, lead models.Lead) (WonResult, error)
	DeleteLead(ctx context.Context, id int64) error
}

// SaleRepository defines sale operations.
type SaleRepository interface {
	AddSale(ctx context.Context, description string, amount float64, date string) (int64, error)
	AddSaleAt(ctx context.Context, description string, amount float64, date time.Time) (int64, error)
	GetSales(ctx context.Context) ([]models.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
}

// StatsRepository defines aggregate queries.
type StatsRepository interface {
	GetRevenueStats(ctx context.Context) (models.RevenueStats, error)
	GetLeadStatistics(ctx context.Context) (models.LeadStats, error)
	GetPipelineCounts(ctx context.Context) (models.PipelineCounts, error)
	CountLeadsSince(ctx context.Context, since time.Time) (int, error)
	GetMonthlyRevenue(ctx context.Context, months int) ([]models.MonthlyRevenue, error)
}

// MaintenanceRepository defines whole-store operations.
type MaintenanceRepository interface {
	ResetDatabase(ctx context.Context) error
	SeedDummyData(ctx context.Context) (SeedResult, error)
	ApplySeed(ctx context.Context, ds seed.Dataset) (SeedResult, error)
	Snapshot(ctx context.Context) (Snapshot, error)
	RestoreSnapshot(ctx context.Context, snap Snapshot) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/akyairhashvil/salestrack/internal/database Repository
type Repository interface {
	LeadRepository
	SaleRepository
	StatsRepository
	MaintenanceRepository
}

var _ Repository = (*Database)(nil)
