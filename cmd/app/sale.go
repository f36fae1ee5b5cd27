package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *app) saleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Manage sales",
	}
	cmd.AddCommand(a.saleAddCmd(), a.saleListCmd(), a.saleDeleteCmd())
	return cmd
}

func (a *app) saleAddCmd() *cobra.Command {
	var description, date string
	var amount float64
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Record a sale",
		Example: `  salestrack sale add --desc "Annual support" --amount 4800 --date 2024-03-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			id, err := a.db.AddSale(cmd.Context(), description, amount, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded sale #%d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "desc", "d", "", "what was sold")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "sale amount")
	cmd.Flags().StringVar(&date, "date", "", "ISO-8601 date or timestamp (default today)")
	_ = cmd.MarkFlagRequired("desc")
	return cmd
}

func (a *app) saleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List sales, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sales, err := a.db.GetSales(cmd.Context())
			if err != nil {
				return err
			}
			if len(sales) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sales.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), saleTable(sales))
			return nil
		},
	}
}

func (a *app) saleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a sale",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.db.DeleteSale(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted sale #%d\n", id)
			return nil
		},
	}
}
