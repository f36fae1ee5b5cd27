package database

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// querier is satisfied by both *sql.DB and *sql.Tx so the row-level
// primitives can run inside or outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type tracedQuerier struct {
	q      querier
	logger *zap.Logger
}

func (t tracedQuerier) trace(query string, args []any) {
	t.logger.Debug("sql", zap.String("query", query), zap.Any("args", args))
}

func (t tracedQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	t.trace(query, args)
	return t.q.ExecContext(ctx, query, args...)
}

func (t tracedQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	t.trace(query, args)
	return t.q.QueryContext(ctx, query, args...)
}

func (t tracedQuerier) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	t.trace(query, args)
	return t.q.QueryRowContext(ctx, query, args...)
}

// conn returns the pool, traced when SQL tracing is on.
func (d *Database) conn() querier {
	return d.wrap(d.DB)
}

func (d *Database) wrap(q querier) querier {
	if d.traceSQL {
		return tracedQuerier{q: q, logger: d.logger}
	}
	return q
}

// toMillis stores timestamps as epoch milliseconds so ordering is numeric.
func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// nullToEmpty reads optional text columns that older files may hold as NULL.
func nullToEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
