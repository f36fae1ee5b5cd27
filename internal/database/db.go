package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/seed"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Database owns the embedded store. It is safe for concurrent use; the
// connection pool is capped at one connection so SQLite serializes access.
type Database struct {
	DB           *sql.DB
	dbFile       string
	driver       string
	logger       *zap.Logger
	queryTimeout time.Duration
	busyTimeout  time.Duration
	traceSQL     bool
	now          func() time.Time
	generator    *seed.Generator
	closed       atomic.Bool
}

// Option customizes Open.
type Option func(*Database)

// WithDriver selects the sql driver: "sqlite3" (mattn, cgo) or "sqlite" (modernc).
func WithDriver(driver string) Option {
	return func(d *Database) { d.driver = driver }
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Database) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithQueryTimeout(timeout time.Duration) Option {
	return func(d *Database) { d.queryTimeout = timeout }
}

func WithBusyTimeout(timeout time.Duration) Option {
	return func(d *Database) { d.busyTimeout = timeout }
}

// WithSQLTrace logs every statement at debug level.
func WithSQLTrace(enabled bool) Option {
	return func(d *Database) { d.traceSQL = enabled }
}

// WithClock replaces time.Now for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(d *Database) {
		if now != nil {
			d.now = now
		}
	}
}

// WithSeedGenerator replaces the generator used by SeedDummyData.
func WithSeedGenerator(g *seed.Generator) Option {
	return func(d *Database) { d.generator = g }
}

// Open opens (creating if needed) the store at path and brings the schema up to date.
func Open(ctx context.Context, path string, opts ...Option) (*Database, error) {
	d := &Database{
		dbFile:       path,
		driver:       config.DriverMattn,
		logger:       zap.NewNop(),
		queryTimeout: config.DefaultQueryTimeout,
		busyTimeout:  config.DefaultBusyTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	if !isURIPath(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, wrapErr(EntityStore, "open", 0, fmt.Errorf("create data dir: %w", err))
		}
	}

	db, err := sql.Open(d.driver, d.dsn())
	if err != nil {
		return nil, wrapErr(EntityStore, "open", 0, err)
	}
	db.SetMaxOpenConns(1)
	d.DB = db

	if err := d.init(ctx); err != nil {
		_ = db.Close()
		return nil, wrapErr(EntityStore, "open", 0, err)
	}
	d.logger.Debug("store opened", zap.String("path", path), zap.String("driver", d.driver))
	return d, nil
}

func (d *Database) init(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	if err := d.DB.PingContext(ctx); err != nil {
		return err
	}
	if err := d.createTables(ctx); err != nil {
		return err
	}
	return d.migrate(ctx)
}

func isURIPath(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file:")
}

// dsn attaches WAL, synchronous=NORMAL and the busy timeout in each driver's dialect
// so every pooled connection gets them.
func (d *Database) dsn() string {
	busy := d.busyTimeout.Milliseconds()
	sep := "?"
	if strings.Contains(d.dbFile, "?") {
		sep = "&"
	}
	switch d.driver {
	case config.DriverModernc:
		return fmt.Sprintf("%s%s_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(%d)", d.dbFile, sep, busy)
	default:
		return fmt.Sprintf("%s%s_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=%d", d.dbFile, sep, busy)
	}
}

// Close releases the store. Further calls fail with ErrNotInitialized.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	if d.closed.Swap(true) {
		return nil
	}
	return d.DB.Close()
}

// Path returns the database file path.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) ready() error {
	if d == nil || d.DB == nil || d.closed.Load() {
		return ErrNotInitialized
	}
	return nil
}

func (d *Database) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d.queryTimeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d.queryTimeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := d.ready(); err != nil {
		return err
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if err := d.ready(); err != nil {
		return zero, err
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn inside a transaction, committing on nil and rolling back otherwise.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := d.ready(); err != nil {
		return err
	}
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return d.rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func (d *Database) rollbackWithLog(tx *sql.Tx, cause error) error {
	if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
		d.logger.Error("rollback failed", zap.Error(rbErr), zap.NamedError("cause", cause))
	}
	return cause
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sales (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			amount REAL NOT NULL,
			date INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS leads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			value REAL NOT NULL,
			notes TEXT,
			email TEXT,
			phone TEXT,
			business_name TEXT,
			address TEXT,
			created_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS schema_meta (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);`,
		`CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(date);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

const schemaVersion = "3"

// migrate upgrades files written before the contact columns existed. Safe to rerun.
func (d *Database) migrate(ctx context.Context) error {
	columns := []string{"notes", "email", "phone", "business_name", "address"}
	for _, col := range columns {
		_, err := d.DB.ExecContext(ctx, "ALTER TABLE leads ADD COLUMN "+col+" TEXT")
		if err != nil && !isIgnorableMigrationErr(err) {
			return fmt.Errorf("migrate leads.%s: %w", col, err)
		}
	}
	if _, err := d.DB.ExecContext(ctx,
		"INSERT INTO schema_meta (key, value) VALUES ('schema_version', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

func isIgnorableMigrationErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate column name")
}

// SchemaVersion reports the version recorded by the last migration.
func (d *Database) SchemaVersion(ctx context.Context) (string, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (string, error) {
		var v string
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM schema_meta WHERE key = 'schema_version'").Scan(&v)
		if err != nil {
			return "", wrapErr(EntityStore, "schema version", 0, err)
		}
		return v, nil
	})
}
