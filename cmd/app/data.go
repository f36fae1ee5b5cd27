package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/akyairhashvil/salestrack/internal/database"
	"github.com/akyairhashvil/salestrack/internal/export"
	"github.com/akyairhashvil/salestrack/internal/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNeedsConfirm = errors.New("this replaces every lead and sale; rerun with --yes")

// seedCmd relies on setup to install a fixed generator when --rand-seed is set.
func (a *app) seedCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with a demo dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNeedsConfirm
			}
			res, err := a.db.SeedDummyData(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d leads (%d won) and %d sales, run %s\n",
				res.Leads, res.WonSales, res.WonSales+res.Sales, res.RunID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm replacing existing data")
	cmd.Flags().Uint64Var(&a.randSeed, "rand-seed", 0, "fixed seed for a reproducible dataset")
	return cmd
}

func (a *app) seedGenerator(cmd *cobra.Command) *seed.Generator {
	if !cmd.Flags().Changed("rand-seed") {
		return nil
	}
	return seed.New(
		seed.WithClock(time.Now),
		seed.WithRand(rand.New(rand.NewPCG(a.randSeed, a.randSeed))),
	)
}

func (a *app) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every lead and sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNeedsConfirm
			}
			if err := a.db.ResetDatabase(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All leads and sales deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deletion")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write spreadsheets, a PDF report and a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			snap, err := a.db.Snapshot(ctx)
			if err != nil {
				return err
			}
			revenue, err := a.db.GetRevenueStats(ctx)
			if err != nil {
				return err
			}
			stats, err := a.db.GetLeadStatistics(ctx)
			if err != nil {
				return err
			}
			data := export.Data{Leads: snap.Leads, Sales: snap.Sales, Revenue: revenue, Stats: stats}

			e := a.exporter()
			var paths []string
			switch format {
			case "all":
				paths, err = e.All(ctx, data)
			case "leads":
				paths, err = single(e.Leads(data.Leads))
			case "sales":
				paths, err = single(e.Sales(data.Sales))
			case "report":
				paths, err = single(e.Report(data))
			case "backup":
				paths, err = single(e.Backup(data.Leads, data.Sales))
			default:
				return fmt.Errorf("unknown format %q (want all, leads, sales, report or backup)", format)
			}
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "all", "all, leads, sales, report or backup")
	return cmd
}

func single(path string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func (a *app) importCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <backup.json>",
		Short: "Replace all data with a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNeedsConfirm
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			leads, sales, err := export.ReadBackup(f)
			if err != nil {
				return err
			}
			if err := a.db.RestoreSnapshot(cmd.Context(), database.Snapshot{Leads: leads, Sales: sales}); err != nil {
				return err
			}
			a.logger.Info("backup imported", zap.String("file", args[0]), zap.Int("leads", len(leads)), zap.Int("sales", len(sales)))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d leads and %d sales\n", len(leads), len(sales))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm replacing existing data")
	return cmd
}
