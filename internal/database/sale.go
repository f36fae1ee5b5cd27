package database

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
)

// Accepted date layouts for AddSale, most specific first.
var saleDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSaleDate reads an ISO-8601 date or timestamp. Values without a zone
// are taken in local time.
func ParseSaleDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidSale)
	}
	for _, layout := range saleDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised date %q", ErrInvalidSale, raw)
}

func validateSale(description string, amount float64, date time.Time) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidSale)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: amount must be a non-negative number, got %v", ErrInvalidSale, amount)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidSale)
	}
	return nil
}

func insertSale(ctx context.Context, q querier, s models.Sale) (int64, error) {
	if err := validateSale(s.Description, s.Amount, s.Date); err != nil {
		return 0, err
	}
	res, err := q.ExecContext(ctx,
		"INSERT INTO sales (description, amount, date, created_at) VALUES (?, ?, ?, ?)",
		strings.TrimSpace(s.Description), s.Amount, toMillis(s.Date), toMillis(s.CreatedAt),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// AddSale records a sale dated by an ISO-8601 string.
func (d *Database) AddSale(ctx context.Context, description string, amount float64, date string) (int64, error) {
	t, err := ParseSaleDate(date)
	if err != nil {
		return 0, wrapErr(EntitySale, "add", 0, err)
	}
	return d.AddSaleAt(ctx, description, amount, t)
}

// AddSaleAt records a sale at the given instant.
func (d *Database) AddSaleAt(ctx context.Context, description string, amount float64, date time.Time) (int64, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		id, err := insertSale(ctx, d.conn(), models.Sale{
			Description: description,
			Amount:      amount,
			Date:        date,
			CreatedAt:   d.now(),
		})
		if err != nil {
			return 0, wrapErr(EntitySale, "add", 0, err)
		}
		return id, nil
	})
}

// GetSales lists every sale, most recent date first.
func (d *Database) GetSales(ctx context.Context) ([]models.Sale, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Sale, error) {
		sales, err := querySales(ctx, d.conn())
		if err != nil {
			return nil, wrapErr(EntitySale, "list", 0, err)
		}
		return sales, nil
	})
}

func querySales(ctx context.Context, q querier) ([]models.Sale, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, description, amount, date, created_at FROM sales ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		var date, created int64
		if err := rows.Scan(&s.ID, &s.Description, &s.Amount, &date, &created); err != nil {
			return nil, err
		}
		s.Date = fromMillis(date)
		s.CreatedAt = fromMillis(created)
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sales, nil
}

// DeleteSale removes the sale. A missing id is a no-op.
func (d *Database) DeleteSale(ctx context.Context, id int64) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.conn().ExecContext(ctx, "DELETE FROM sales WHERE id = ?", id)
		return wrapErr(EntitySale, "delete", id, err)
	})
}
