// Package seed builds the demo dataset. It performs no I/O; the store applies
// the result in a single transaction.
package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/google/uuid"
)

// Entry is a generated lead plus, when it is Won, its matching sale.
type Entry struct {
	Lead models.Lead
	Sale *models.Sale
}

// Dataset is one generated batch.
type Dataset struct {
	RunID string
	Leads []Entry
	Sales []models.Sale // standalone sales with no lead
}

// WonCount returns the number of Won leads in the batch.
func (d Dataset) WonCount() int {
	n := 0
	for _, e := range d.Leads {
		if e.Lead.Status == models.LeadWon {
			n++
		}
	}
	return n
}

// SaleCount returns every sale the batch will insert.
func (d Dataset) SaleCount() int {
	return d.WonCount() + len(d.Sales)
}

type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

type Option func(*Generator)

// WithRand makes the generator deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces config.SeedLeadCount leads and config.SeedSaleCount
// standalone sales. Every Won lead carries a sale mirroring its value.
func (g *Generator) Generate() Dataset {
	now := g.now()
	ds := Dataset{
		RunID: uuid.NewString(),
		Leads: make([]Entry, 0, config.SeedLeadCount),
		Sales: make([]models.Sale, 0, config.SeedSaleCount),
	}

	for i := 0; i < config.SeedLeadCount; i++ {
		lead := g.lead(now)
		entry := Entry{Lead: lead}
		if lead.Status == models.LeadWon {
			entry.Sale = &models.Sale{
				Description: ContractPrefix + lead.BusinessName,
				Amount:      lead.Value,
				Date:        lead.CreatedAt,
				CreatedAt:   now,
			}
		}
		ds.Leads = append(ds.Leads, entry)
	}

	for i := 0; i < config.SeedSaleCount; i++ {
		ds.Sales = append(ds.Sales, models.Sale{
			Description: fmt.Sprintf("%s%s %s", ClosedDealPrefix, pick(g.rng, industries), pick(g.rng, services)),
			Amount:      float64(g.between(config.SeedSaleAmountMin, config.SeedSaleAmountMax)),
			Date:        g.pastDate(now),
			CreatedAt:   now,
		})
	}
	return ds
}

func (g *Generator) lead(now time.Time) models.Lead {
	first := pick(g.rng, firstNames)
	last := pick(g.rng, lastNames)
	industry := pick(g.rng, industries)
	service := pick(g.rng, services)
	return models.Lead{
		Name:         first + " " + last,
		Status:       pick(g.rng, models.LeadStatuses),
		Value:        float64(g.between(config.SeedLeadValueMin, config.SeedLeadValueMax)),
		Notes:        fmt.Sprintf("Interested in %s solutions.", strings.ToLower(service)),
		Email:        fmt.Sprintf("%s.%s@%s.com", strings.ToLower(first), strings.ToLower(last), strings.ToLower(industry)),
		Phone:        fmt.Sprintf("+1 (555) %d-%d", g.between(100, 999), g.between(1000, 9999)),
		BusinessName: industry + " " + service,
		Address:      seedAddress,
		CreatedAt:    g.pastDate(now),
	}
}

// pastDate steps back a whole number of 30-day months plus a few days.
func (g *Generator) pastDate(now time.Time) time.Time {
	months := g.between(0, config.SeedMonthsBack)
	days := g.between(0, config.SeedDaysBack)
	return now.Add(-time.Duration(months)*config.SeedMonthLength - time.Duration(days)*24*time.Hour)
}

// between returns an integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
