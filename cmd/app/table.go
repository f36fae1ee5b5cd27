package main

import (
	"strconv"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
)

func newTable(amountCol int, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == amountCol:
				return amountStyle
			}
			return cellStyle
		})
}

func leadTable(leads []models.Lead) string {
	t := newTable(4, "ID", "Name", "Company", "Status", "Value", "Created")
	for _, l := range leads {
		t.Row(
			strconv.FormatInt(l.ID, 10),
			l.Name,
			l.BusinessName,
			string(l.Status),
			util.FormatCurrency(l.Value),
			l.CreatedAt.Format("2006-01-02"),
		)
	}
	return t.Render()
}

func saleTable(sales []models.Sale) string {
	t := newTable(3, "ID", "Date", "Description", "Amount")
	for _, s := range sales {
		t.Row(
			strconv.FormatInt(s.ID, 10),
			s.Date.Format("2006-01-02"),
			s.Description,
			util.FormatAmount(s.Amount),
		)
	}
	return t.Render()
}
