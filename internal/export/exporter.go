// Package export writes leads and sales to spreadsheets, a PDF report and a
// JSON backup.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Data is everything a full export needs.
type Data struct {
	Leads   []models.Lead
	Sales   []models.Sale
	Revenue models.RevenueStats
	Stats   models.LeadStats
}

type Exporter struct {
	dir    string
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*Exporter)

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Exporter writing into dir, created on first use.
func New(dir string, opts ...Option) *Exporter {
	e := &Exporter{dir: dir, now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Exporter) Dir() string { return e.dir }

// Leads writes the lead spreadsheet and returns its path.
func (e *Exporter) Leads(leads []models.Lead) (string, error) {
	now := e.now()
	return e.write(LeadsFileName(now), func(w io.Writer) error {
		return WriteLeadsXLSX(w, leads, now.Location())
	})
}

// Sales writes the sales spreadsheet and returns its path.
func (e *Exporter) Sales(sales []models.Sale) (string, error) {
	now := e.now()
	return e.write(SalesFileName(now), func(w io.Writer) error {
		return WriteSalesXLSX(w, sales, now.Location())
	})
}

// Report writes the PDF report and returns its path.
func (e *Exporter) Report(data Data) (string, error) {
	now := e.now()
	return e.write(ReportFileName(now), func(w io.Writer) error {
		return WriteReportPDF(w, Report{
			GeneratedAt: now,
			Revenue:     data.Revenue,
			Stats:       data.Stats,
			Leads:       data.Leads,
			Sales:       data.Sales,
		})
	})
}

// Backup writes the JSON backup and returns its path.
func (e *Exporter) Backup(leads []models.Lead, sales []models.Sale) (string, error) {
	now := e.now()
	return e.write(BackupFileName(now), func(w io.Writer) error {
		return WriteBackup(w, leads, sales, now)
	})
}

// All writes every format concurrently. Paths are returned in the order
// leads, sales, report, backup.
func (e *Exporter) All(ctx context.Context, data Data) ([]string, error) {
	jobs := []func() (string, error){
		func() (string, error) { return e.Leads(data.Leads) },
		func() (string, error) { return e.Sales(data.Sales) },
		func() (string, error) { return e.Report(data) },
		func() (string, error) { return e.Backup(data.Leads, data.Sales) },
	}
	paths := make([]string, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := job()
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// write renders into a temp file beside the target and renames it into place.
func (e *Exporter) write(name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(e.dir, name)
	tmp, err := os.CreateTemp(e.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if err := render(tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("export %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("finalize %s: %w", name, err)
	}
	e.logger.Info("export written", zap.String("path", path))
	return path, nil
}
