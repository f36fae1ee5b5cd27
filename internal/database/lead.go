package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
	"go.uber.org/zap"
)

// WonResult describes what MarkLeadWon did.
type WonResult struct {
	LeadID  int64
	SaleID  int64
	Created bool // false when the lead was missing or already Won
}

func scanLead(row interface{ Scan(...interface{}) error }) (models.Lead, error) {
	var l models.Lead
	var status string
	var notes, email, phone, business, address sql.NullString
	var createdAt int64
	if err := row.Scan(
		&l.ID,
		&l.Name,
		&status,
		&l.Value,
		&notes,
		&email,
		&phone,
		&business,
		&address,
		&createdAt,
	); err != nil {
		return models.Lead{}, err
	}
	l.Status = models.LeadStatus(status)
	l.Notes = nullToEmpty(notes)
	l.Email = nullToEmpty(email)
	l.Phone = nullToEmpty(phone)
	l.BusinessName = nullToEmpty(business)
	l.Address = nullToEmpty(address)
	l.CreatedAt = fromMillis(createdAt)
	return l, nil
}

func validateLead(name string, value float64, status models.LeadStatus) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidLead)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fmt.Errorf("%w: value must be a non-negative number, got %v", ErrInvalidLead, value)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidLead, status)
	}
	return nil
}

// insertLead is the row-level primitive shared by AddLead and seeding.
func insertLead(ctx context.Context, q querier, l models.Lead) (int64, error) {
	if err := validateLead(l.Name, l.Value, l.Status); err != nil {
		return 0, err
	}
	res, err := q.ExecContext(ctx,
		`INSERT INTO leads (name, value, status, notes, email, phone, business_name, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(l.Name), l.Value, string(l.Status), l.Notes, l.Email, l.Phone, l.BusinessName, l.Address, toMillis(l.CreatedAt),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func getLead(ctx context.Context, q querier, id int64) (models.Lead, error) {
	query, args := NewLeadQuery().Where("id = ?", id).Build()
	l, err := scanLead(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Lead{}, ErrNotFound
	}
	return l, err
}

func queryLeads(ctx context.Context, q querier, query string, args ...interface{}) ([]models.Lead, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []models.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leads, nil
}

// AddLead inserts a lead stamped with the current time. An empty status means Cold.
func (d *Database) AddLead(ctx context.Context, in models.NewLead) (int64, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		status := in.Status
		if status == "" {
			status = models.LeadCold
		}
		id, err := insertLead(ctx, d.conn(), models.Lead{
			Name:         in.Name,
			Status:       status,
			Value:        in.Value,
			Notes:        in.Notes,
			Email:        in.Email,
			Phone:        in.Phone,
			BusinessName: in.BusinessName,
			Address:      in.Address,
			CreatedAt:    d.now(),
		})
		if err != nil {
			return 0, wrapErr(EntityLead, "add", 0, err)
		}
		return id, nil
	})
}

// GetLead returns ErrNotFound when no lead has the id.
func (d *Database) GetLead(ctx context.Context, id int64) (models.Lead, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Lead, error) {
		l, err := getLead(ctx, d.conn(), id)
		if err != nil {
			return models.Lead{}, wrapErr(EntityLead, "get", id, err)
		}
		return l, nil
	})
}

// GetLeads lists every lead, newest first.
func (d *Database) GetLeads(ctx context.Context) ([]models.Lead, error) {
	return d.FindLeads(ctx, models.LeadFilter{})
}

// FindLeads lists leads matching the filter, newest first.
func (d *Database) FindLeads(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Lead, error) {
		if filter.Status != "" && !filter.Status.Valid() {
			return nil, wrapErr(EntityLead, "list", 0, fmt.Errorf("%w: unknown status %q", ErrInvalidLead, filter.Status))
		}
		lq := NewLeadQuery().
			WhereStatus(filter.Status).
			WhereSearch(filter.Search).
			OrderBy("created_at DESC, id DESC")
		search := strings.TrimSpace(filter.Search)
		inGo := search != "" && !isASCII(search)
		if !inGo {
			lq.Limit(filter.Limit)
		}
		query, args := lq.Build()
		leads, err := queryLeads(ctx, d.conn(), query, args...)
		if err != nil {
			return nil, wrapErr(EntityLead, "list", 0, err)
		}
		if !inGo {
			return leads, nil
		}
		matched := leads[:0]
		for _, l := range leads {
			if matchesSearch(l, search) {
				matched = append(matched, l)
			}
			if filter.Limit > 0 && len(matched) == filter.Limit {
				break
			}
		}
		return matched, nil
	})
}

// UpdateLead overwrites every mutable field. created_at is never touched and a
// missing id is a silent no-op.
func (d *Database) UpdateLead(ctx context.Context, lead models.Lead) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		if err := validateLead(lead.Name, lead.Value, lead.Status); err != nil {
			return wrapErr(EntityLead, "update", lead.ID, err)
		}
		_, err := d.conn().ExecContext(ctx,
			`UPDATE leads SET name = ?, value = ?, status = ?, notes = ?, email = ?, phone = ?, business_name = ?, address = ?
			WHERE id = ?`,
			strings.TrimSpace(lead.Name), lead.Value, string(lead.Status), lead.Notes, lead.Email, lead.Phone, lead.BusinessName, lead.Address, lead.ID,
		)
		return wrapErr(EntityLead, "update", lead.ID, err)
	})
}

// UpdateLeadStatus changes only the status. It does not record a sale; use
// MarkLeadWon for the Won transition.
func (d *Database) UpdateLeadStatus(ctx context.Context, id int64, status models.LeadStatus) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		if !status.Valid() {
			return wrapErr(EntityLead, "update status", id, fmt.Errorf("%w: unknown status %q", ErrInvalidLead, status))
		}
		_, err := d.conn().ExecContext(ctx, "UPDATE leads SET status = ? WHERE id = ?", string(status), id)
		return wrapErr(EntityLead, "update status", id, err)
	})
}

// MarkLeadWon sets the lead to Won and records the mirrored sale in one
// transaction, so neither half can persist without the other.
func (d *Database) MarkLeadWon(ctx context.Context, id int64) (WonResult, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (WonResult, error) {
		var result WonResult
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			q := d.wrap(tx)
			lead, err := getLead(ctx, q, id)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			result.LeadID = lead.ID
			if lead.Status == models.LeadWon {
				return nil
			}
			saleID, err := recordWon(ctx, q, lead, d.now())
			if err != nil {
				return err
			}
			result.SaleID = saleID
			result.Created = true
			return nil
		})
		if err != nil {
			return WonResult{}, wrapErr(EntityLead, "mark won", id, err)
		}
		d.logWon(result)
		return result, nil
	})
}

// AddWonLead inserts a lead that is already Won together with its mirrored
// sale. The status on in is ignored.
func (d *Database) AddWonLead(ctx context.Context, in models.NewLead) (WonResult, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (WonResult, error) {
		var result WonResult
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			q := d.wrap(tx)
			now := d.now()
			lead := models.Lead{
				Name:         in.Name,
				Status:       models.LeadWon,
				Value:        in.Value,
				Notes:        in.Notes,
				Email:        in.Email,
				Phone:        in.Phone,
				BusinessName: in.BusinessName,
				Address:      in.Address,
				CreatedAt:    now,
			}
			id, err := insertLead(ctx, q, lead)
			if err != nil {
				return err
			}
			lead.ID = id
			lead.Name = strings.TrimSpace(lead.Name)
			saleID, err := recordWon(ctx, q, lead, now)
			if err != nil {
				return err
			}
			result = WonResult{LeadID: id, SaleID: saleID, Created: true}
			return nil
		})
		if err != nil {
			return WonResult{}, wrapErr(EntityLead, "add", 0, err)
		}
		d.logWon(result)
		return result, nil
	})
}

// EditLead overwrites every mutable field like UpdateLead, except that moving a
// lead into Won also records the mirrored sale in the same transaction.
// Leads that were already Won are saved without a second sale.
func (d *Database) EditLead(ctx context.Context, lead models.Lead) (WonResult, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (WonResult, error) {
		if err := validateLead(lead.Name, lead.Value, lead.Status); err != nil {
			return WonResult{}, wrapErr(EntityLead, "edit", lead.ID, err)
		}
		result := WonResult{LeadID: lead.ID}
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			q := d.wrap(tx)
			current, err := getLead(ctx, q, lead.ID)
			if err != nil {
				return err
			}
			winning := lead.Status == models.LeadWon && current.Status != models.LeadWon
			status := lead.Status
			if winning {
				status = current.Status
			}
			lead.Name = strings.TrimSpace(lead.Name)
			if _, err := q.ExecContext(ctx,
				`UPDATE leads SET name = ?, value = ?, status = ?, notes = ?, email = ?, phone = ?, business_name = ?, address = ?
				WHERE id = ?`,
				lead.Name, lead.Value, string(status), lead.Notes, lead.Email, lead.Phone, lead.BusinessName, lead.Address, lead.ID,
			); err != nil {
				return err
			}
			if !winning {
				return nil
			}
			saleID, err := recordWon(ctx, q, lead, d.now())
			if err != nil {
				return err
			}
			result.SaleID = saleID
			result.Created = true
			return nil
		})
		if err != nil {
			return WonResult{}, wrapErr(EntityLead, "edit", lead.ID, err)
		}
		d.logWon(result)
		return result, nil
	})
}

// recordWon flips the lead to Won and inserts its "Converted Lead" sale.
// Callers own the transaction.
func recordWon(ctx context.Context, q querier, lead models.Lead, now time.Time) (int64, error) {
	if _, err := q.ExecContext(ctx, "UPDATE leads SET status = ? WHERE id = ?", string(models.LeadWon), lead.ID); err != nil {
		return 0, err
	}
	return insertSale(ctx, q, models.Sale{
		Description: "Converted Lead: " + lead.Name,
		Amount:      lead.Value,
		Date:        now,
		CreatedAt:   now,
	})
}

func (d *Database) logWon(result WonResult) {
	if result.Created {
		d.logger.Info("lead won", zap.Int64("lead_id", result.LeadID), zap.Int64("sale_id", result.SaleID))
	}
}

// DeleteLead removes the lead permanently. Sales recorded from it stay.
func (d *Database) DeleteLead(ctx context.Context, id int64) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.conn().ExecContext(ctx, "DELETE FROM leads WHERE id = ?", id)
		return wrapErr(EntityLead, "delete", id, err)
	})
}
