package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/salestrack/internal/database"
	"github.com/akyairhashvil/salestrack/internal/export"
	"github.com/akyairhashvil/salestrack/internal/models"
)

// Database defines the persistence methods the TUI requires.
type Database interface {
	AddLead(ctx context.Context, lead models.NewLead) (int64, error)
	FindLeads(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id int64, status models.LeadStatus) error
	MarkLeadWon(ctx context.Context, id int64) (database.WonResult, error)
	DeleteLead(ctx context.Context, id int64) error

	AddSale(ctx context.Context, description string, amount float64, date string) (int64, error)
	GetSales(ctx context.Context) ([]models.Sale, error)
	DeleteSale(ctx context.Context, id int64) error

	GetRevenueStats(ctx context.Context) (models.RevenueStats, error)
	GetLeadStatistics(ctx context.Context) (models.LeadStats, error)
	GetPipelineCounts(ctx context.Context) (models.PipelineCounts, error)
	CountLeadsSince(ctx context.Context, since time.Time) (int, error)
	GetMonthlyRevenue(ctx context.Context, months int) ([]models.MonthlyRevenue, error)

	ResetDatabase(ctx context.Context) error
	SeedDummyData(ctx context.Context) (database.SeedResult, error)
}

// Exporter writes every export format. *export.Exporter satisfies it.
type Exporter interface {
	All(ctx context.Context, data export.Data) ([]string, error)
}

var (
	_ Database = (*database.Database)(nil)
	_ Exporter = (*export.Exporter)(nil)
)
