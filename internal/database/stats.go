package database

import (
	"context"
	"math"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
)

// GetRevenueStats sums every sale. An empty table yields zeros.
func (d *Database) GetRevenueStats(ctx context.Context) (models.RevenueStats, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.RevenueStats, error) {
		var stats models.RevenueStats
		err := d.conn().QueryRowContext(ctx,
			"SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM sales").Scan(&stats.Total, &stats.Count)
		if err != nil {
			return models.RevenueStats{}, wrapErr(EntityStats, "revenue", 0, err)
		}
		return stats, nil
	})
}

// GetLeadStatistics computes the pipeline figures in a single aggregate query.
func (d *Database) GetLeadStatistics(ctx context.Context) (models.LeadStats, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.LeadStats, error) {
		var stats models.LeadStats
		err := d.conn().QueryRowContext(ctx, `
			SELECT
				COUNT(*),
				COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN status NOT IN (?, ?) THEN value ELSE 0 END), 0)
			FROM leads`,
			string(models.LeadWon), string(models.LeadLost), string(models.LeadWon), string(models.LeadLost),
		).Scan(&stats.Total, &stats.Won, &stats.Lost, &stats.PipelineValue)
		if err != nil {
			return models.LeadStats{}, wrapErr(EntityStats, "lead statistics", 0, err)
		}
		stats.Active = stats.Total - stats.Won - stats.Lost
		stats.ConversionRate = conversionRate(stats.Won, stats.Total)
		return stats, nil
	})
}

func conversionRate(won, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(won) / float64(total) * 100))
}

// GetPipelineCounts returns the number of leads per status. Every status is present.
func (d *Database) GetPipelineCounts(ctx context.Context) (models.PipelineCounts, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.PipelineCounts, error) {
		counts := make(models.PipelineCounts, len(models.LeadStatuses))
		for _, s := range models.LeadStatuses {
			counts[s] = 0
		}
		rows, err := d.conn().QueryContext(ctx, "SELECT status, COUNT(*) FROM leads GROUP BY status")
		if err != nil {
			return nil, wrapErr(EntityStats, "pipeline counts", 0, err)
		}
		defer rows.Close()
		for rows.Next() {
			var status string
			var n int
			if err := rows.Scan(&status, &n); err != nil {
				return nil, wrapErr(EntityStats, "pipeline counts", 0, err)
			}
			counts[models.LeadStatus(status)] = n
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityStats, "pipeline counts", 0, err)
		}
		return counts, nil
	})
}

// CountLeadsSince counts leads created at or after since.
func (d *Database) CountLeadsSince(ctx context.Context, since time.Time) (int, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int, error) {
		var n int
		query, args := NewLeadQuery().Select("COUNT(*)").WhereCreatedSince(since).Build()
		err := d.conn().QueryRowContext(ctx, query, args...).Scan(&n)
		if err != nil {
			return 0, wrapErr(EntityStats, "leads since", 0, err)
		}
		return n, nil
	})
}

// GetMonthlyRevenue totals sales per calendar month for the last months
// months (the current one included), oldest first. Empty months report 0.
func (d *Database) GetMonthlyRevenue(ctx context.Context, months int) ([]models.MonthlyRevenue, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.MonthlyRevenue, error) {
		if months <= 0 {
			return []models.MonthlyRevenue{}, nil
		}
		now := d.now()
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

		out := make([]models.MonthlyRevenue, months)
		index := make(map[string]int, months)
		for i := range out {
			key := start.AddDate(0, i, 0).Format("2006-01")
			out[i].Month = key
			index[key] = i
		}

		rows, err := d.conn().QueryContext(ctx,
			"SELECT amount, date FROM sales WHERE date >= ?", toMillis(start))
		if err != nil {
			return nil, wrapErr(EntityStats, "monthly revenue", 0, err)
		}
		defer rows.Close()
		for rows.Next() {
			var amount float64
			var date int64
			if err := rows.Scan(&amount, &date); err != nil {
				return nil, wrapErr(EntityStats, "monthly revenue", 0, err)
			}
			key := fromMillis(date).In(now.Location()).Format("2006-01")
			if i, ok := index[key]; ok {
				out[i].Total += amount
			}
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityStats, "monthly revenue", 0, err)
		}
		return out, nil
	})
}
