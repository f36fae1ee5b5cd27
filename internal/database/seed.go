package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/seed"
	"go.uber.org/zap"
)

// SeedResult reports what a seed run inserted.
type SeedResult struct {
	RunID    string
	Leads    int
	WonSales int
	Sales    int // standalone sales
}

func clearTables(ctx context.Context, q querier) error {
	for _, table := range []string{"leads", "sales"} {
		if _, err := q.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// ResetDatabase deletes every lead and sale. Irreversible.
func (d *Database) ResetDatabase(ctx context.Context) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			return clearTables(ctx, d.wrap(tx))
		})
		if err != nil {
			return wrapErr(EntityStore, "reset", 0, err)
		}
		d.logger.Info("store reset")
		return nil
	})
}

// SeedDummyData replaces all data with a freshly generated demo dataset.
func (d *Database) SeedDummyData(ctx context.Context) (SeedResult, error) {
	gen := d.generator
	if gen == nil {
		gen = seed.New(seed.WithClock(d.now))
	}
	return d.ApplySeed(ctx, gen.Generate())
}

// ApplySeed clears both tables and inserts ds in one transaction. Each Won
// lead's sale is written right after the lead. A Won lead without a sale, or a
// sale attached to any other lead, fails with ErrInvalidLead. On any failure
// nothing changes.
func (d *Database) ApplySeed(ctx context.Context, ds seed.Dataset) (SeedResult, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (SeedResult, error) {
		result := SeedResult{RunID: ds.RunID}
		d.logger.Debug("applying seed",
			zap.String("run_id", ds.RunID),
			zap.Int("leads", len(ds.Leads)),
			zap.Int("won", ds.WonCount()),
			zap.Int("sales", ds.SaleCount()),
		)
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			q := d.wrap(tx)
			if err := clearTables(ctx, q); err != nil {
				return err
			}
			for i, e := range ds.Leads {
				if won := e.Lead.Status == models.LeadWon; won != (e.Sale != nil) {
					return fmt.Errorf("lead %d: %w: a Won lead needs exactly one sale and no other lead may carry one", i, ErrInvalidLead)
				}
				if _, err := insertLead(ctx, q, e.Lead); err != nil {
					return fmt.Errorf("lead %d: %w", i, err)
				}
				result.Leads++
				if e.Sale != nil {
					if _, err := insertSale(ctx, q, *e.Sale); err != nil {
						return fmt.Errorf("sale for lead %d: %w", i, err)
					}
					result.WonSales++
				}
			}
			for i, s := range ds.Sales {
				if _, err := insertSale(ctx, q, s); err != nil {
					return fmt.Errorf("sale %d: %w", i, err)
				}
				result.Sales++
			}
			return nil
		})
		if err != nil {
			d.logger.Warn("seed rolled back", zap.String("run_id", ds.RunID), zap.Error(err))
			return SeedResult{}, wrapErr(EntityStore, "seed", 0, err)
		}
		d.logger.Info("seed applied",
			zap.String("run_id", result.RunID),
			zap.Int("leads", result.Leads),
			zap.Int("won_sales", result.WonSales),
			zap.Int("sales", result.Sales),
		)
		return result, nil
	})
}
