package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akyairhashvil/salestrack/internal/models"
	"go.uber.org/zap"
)

// Snapshot is a consistent copy of every record.
type Snapshot struct {
	Leads []models.Lead
	Sales []models.Sale
}

// Snapshot reads leads and sales inside one transaction so the two lists agree.
func (d *Database) Snapshot(ctx context.Context) (Snapshot, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (Snapshot, error) {
		var snap Snapshot
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			q := d.wrap(tx)
			query, args := NewLeadQuery().OrderBy("created_at DESC, id DESC").Build()
			leads, err := queryLeads(ctx, q, query, args...)
			if err != nil {
				return err
			}
			sales, err := querySales(ctx, q)
			if err != nil {
				return err
			}
			snap.Leads = leads
			snap.Sales = sales
			return nil
		})
		if err != nil {
			return Snapshot{}, wrapErr(EntityStore, "snapshot", 0, err)
		}
		return snap, nil
	})
}

// RestoreSnapshot replaces all data with snap, keeping ids and timestamps.
func (d *Database) RestoreSnapshot(ctx context.Context, snap Snapshot) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			q := d.wrap(tx)
			if err := clearTables(ctx, q); err != nil {
				return err
			}
			for _, l := range snap.Leads {
				if err := validateLead(l.Name, l.Value, l.Status); err != nil {
					return fmt.Errorf("import lead %d: %w", l.ID, err)
				}
				if _, err := q.ExecContext(ctx, `
					INSERT INTO leads (id, name, value, status, notes, email, phone, business_name, address, created_at)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					l.ID, l.Name, l.Value, string(l.Status), l.Notes, l.Email, l.Phone, l.BusinessName, l.Address, toMillis(l.CreatedAt),
				); err != nil {
					return fmt.Errorf("import lead %d: %w", l.ID, err)
				}
			}
			for _, s := range snap.Sales {
				if err := validateSale(s.Description, s.Amount, s.Date); err != nil {
					return fmt.Errorf("import sale %d: %w", s.ID, err)
				}
				if _, err := q.ExecContext(ctx,
					"INSERT INTO sales (id, description, amount, date, created_at) VALUES (?, ?, ?, ?, ?)",
					s.ID, s.Description, s.Amount, toMillis(s.Date), toMillis(s.CreatedAt),
				); err != nil {
					return fmt.Errorf("import sale %d: %w", s.ID, err)
				}
			}
			return nil
		})
		if err != nil {
			return wrapErr(EntityStore, "restore", 0, err)
		}
		d.logger.Info("snapshot restored", zap.Int("leads", len(snap.Leads)), zap.Int("sales", len(snap.Sales)))
		return nil
	})
}
