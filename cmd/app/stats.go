package main

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/tui"
	"github.com/akyairhashvil/salestrack/internal/util"
	"github.com/spf13/cobra"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print revenue and pipeline figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printStats(cmd)
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show where data lives and the schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := a.db.SchemaVersion(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:  %s\n", tui.AppVersion)
			fmt.Fprintf(out, "Database: %s\n", a.cfg.DBPath())
			fmt.Fprintf(out, "Driver:   %s\n", a.cfg.Database.Driver)
			fmt.Fprintf(out, "Schema:   %s\n", schema)
			fmt.Fprintf(out, "Exports:  %s\n", a.cfg.ExportDir())
			return nil
		},
	}
}

func (a *app) printStats(cmd *cobra.Command) error {
	ctx := cmd.Context()
	revenue, err := a.db.GetRevenueStats(ctx)
	if err != nil {
		return err
	}
	stats, err := a.db.GetLeadStatistics(ctx)
	if err != nil {
		return err
	}
	counts, err := a.db.GetPipelineCounts(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	week, err := a.db.CountLeadsSince(ctx, tui.StartOfWeek(now))
	if err != nil {
		return err
	}
	month, err := a.db.CountLeadsSince(ctx, tui.StartOfMonth(now))
	if err != nil {
		return err
	}
	monthly, err := a.db.GetMonthlyRevenue(ctx, config.RevenueHistoryMonths)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Revenue:         %s across %d sales\n", util.FormatCurrency(revenue.Total), revenue.Count)
	fmt.Fprintf(out, "Pipeline value:  %s\n", util.FormatCurrency(stats.PipelineValue))
	fmt.Fprintf(out, "Leads:           %d total, %d active, %d won, %d lost\n", stats.Total, stats.Active, stats.Won, stats.Lost)
	fmt.Fprintf(out, "Conversion rate: %d%%\n", stats.ConversionRate)
	fmt.Fprintf(out, "New leads:       %d this week, %d this month\n", week, month)
	fmt.Fprintln(out)
	for _, s := range models.LeadStatuses {
		fmt.Fprintf(out, "  %-5s %d\n", s, counts[s])
	}
	fmt.Fprintln(out)
	for _, m := range monthly {
		fmt.Fprintf(out, "  %s %s\n", m.Month, util.FormatCurrency(m.Total))
	}
	return nil
}
