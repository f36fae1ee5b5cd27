package main

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/util"
	"github.com/spf13/cobra"
)

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func (a *app) leadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Manage leads",
	}
	cmd.AddCommand(
		a.leadAddCmd(),
		a.leadListCmd(),
		a.leadShowCmd(),
		a.leadEditCmd(),
		a.leadStatusCmd(),
		a.leadWonCmd(),
		a.leadDeleteCmd(),
	)
	return cmd
}

type leadFlags struct {
	name, status, notes, email, phone, company, address string
	value                                               float64
}

func (f *leadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "contact name")
	cmd.Flags().Float64Var(&f.value, "value", 0, "potential deal value")
	cmd.Flags().StringVar(&f.status, "status", "", "Cold, Warm, Hot, Won or Lost")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.company, "company", "", "business name")
	cmd.Flags().StringVar(&f.address, "address", "", "postal address")
}

func (a *app) leadAddCmd() *cobra.Command {
	var f leadFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a lead",
		Example: `  salestrack lead add --name "Jane Smith" --company Initech --value 12000 --status warm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := models.NewLead{
				Name:         f.name,
				Value:        f.value,
				Notes:        f.notes,
				Email:        f.email,
				Phone:        f.phone,
				BusinessName: f.company,
				Address:      f.address,
			}
			if f.status != "" {
				status, err := models.ParseLeadStatus(f.status)
				if err != nil {
					return err
				}
				in.Status = status
			}
			if in.Status == models.LeadWon {
				res, err := a.db.AddWonLead(cmd.Context(), in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added lead #%d %s, recorded sale #%d\n", res.LeadID, in.Name, res.SaleID)
				return nil
			}
			id, err := a.db.AddLead(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added lead #%d %s\n", id, in.Name)
			return nil
		},
	}
	f.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) leadListCmd() *cobra.Command {
	var status, search string
	var limit int
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List leads, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := models.LeadFilter{Search: search, Limit: limit}
			if status != "" {
				s, err := models.ParseLeadStatus(status)
				if err != nil {
					return err
				}
				filter.Status = s
			}
			leads, err := a.db.FindLeads(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(leads) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No leads.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), leadTable(leads))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only leads with this status")
	cmd.Flags().StringVarP(&search, "search", "s", "", "match name or company")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows")
	return cmd
}

func (a *app) leadShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			l, err := a.db.GetLead(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "#%d %s\n", l.ID, l.Name)
			fmt.Fprintf(out, "  Status:   %s\n", l.Status)
			fmt.Fprintf(out, "  Value:    %s\n", util.FormatCurrency(l.Value))
			fmt.Fprintf(out, "  Company:  %s\n", l.BusinessName)
			fmt.Fprintf(out, "  Email:    %s\n", l.Email)
			fmt.Fprintf(out, "  Phone:    %s\n", l.Phone)
			fmt.Fprintf(out, "  Address:  %s\n", l.Address)
			fmt.Fprintf(out, "  Notes:    %s\n", l.Notes)
			fmt.Fprintf(out, "  Created:  %s\n", l.CreatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

// leadEditCmd changes only the flags that were given. Moving a lead into Won
// records its sale in the same write.
func (a *app) leadEditCmd() *cobra.Command {
	var f leadFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a lead's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			l, err := a.db.GetLead(cmd.Context(), id)
			if err != nil {
				return err
			}
			changed := cmd.Flags().Changed
			if changed("name") {
				l.Name = f.name
			}
			if changed("value") {
				l.Value = f.value
			}
			if changed("status") {
				if l.Status, err = models.ParseLeadStatus(f.status); err != nil {
					return err
				}
			}
			if changed("notes") {
				l.Notes = f.notes
			}
			if changed("email") {
				l.Email = f.email
			}
			if changed("phone") {
				l.Phone = f.phone
			}
			if changed("company") {
				l.BusinessName = f.company
			}
			if changed("address") {
				l.Address = f.address
			}
			res, err := a.db.EditLead(cmd.Context(), l)
			if err != nil {
				return err
			}
			if res.Created {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated lead #%d, won and recorded sale #%d\n", id, res.SaleID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated lead #%d\n", id)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

// leadStatusCmd routes Won through MarkLeadWon so the mirrored sale is kept.
func (a *app) leadStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a lead to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := models.ParseLeadStatus(args[1])
			if err != nil {
				return err
			}
			if status == models.LeadWon {
				return a.markWon(cmd, id)
			}
			if err := a.db.UpdateLeadStatus(cmd.Context(), id, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lead #%d is now %s\n", id, status)
			return nil
		},
	}
}

func (a *app) leadWonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "won <id>",
		Short: "Mark a lead Won and record its sale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.markWon(cmd, id)
		},
	}
}

func (a *app) markWon(cmd *cobra.Command, id int64) error {
	res, err := a.db.MarkLeadWon(cmd.Context(), id)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch {
	case res.Created:
		fmt.Fprintf(out, "Lead #%d won, recorded sale #%d\n", id, res.SaleID)
	case res.LeadID == 0:
		fmt.Fprintf(out, "No lead #%d\n", id)
	default:
		fmt.Fprintf(out, "Lead #%d was already won\n", id)
	}
	return nil
}

func (a *app) leadDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a lead (recorded sales stay)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.db.DeleteLead(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted lead #%d\n", id)
			return nil
		},
	}
}
