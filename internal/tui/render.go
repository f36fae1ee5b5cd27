package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.form != nil:
		b.WriteString(m.renderForm())
	case m.confirmReset:
		b.WriteString(m.theme.Error.Render("Delete ALL leads and sales? This cannot be undone. [y/N]"))
	default:
		switch m.tab {
		case TabDashboard:
			b.WriteString(m.renderDashboard())
		case TabLeads:
			b.WriteString(m.renderLeads())
		case TabSales:
			b.WriteString(m.renderSales())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return m.theme.Base.Render(b.String())
}

func (m Model) renderHeader() string {
	title := m.theme.Header.Render(fmt.Sprintf("%s v%s", config.AppName, versionLabel()))
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.tab {
			tabs[i] = m.theme.ActiveTab.Render(label)
		} else {
			tabs[i] = m.theme.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) card(label, figure string) string {
	return m.theme.Card.Render(m.theme.Label.Render(label) + "\n" + m.theme.Figure.Render(figure))
}

func (m Model) renderDashboard() string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Total Revenue", util.FormatCurrency(m.revenue.Total)),
		m.card("Transactions", strconv.Itoa(m.revenue.Count)),
		m.card("Pipeline Value", util.FormatCurrency(m.stats.PipelineValue)),
		m.card("Active Leads", strconv.Itoa(m.stats.Active)),
		m.card("Won Deals", strconv.Itoa(m.stats.Won)),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(m.theme.Label.Render("Conversion rate "))
	b.WriteString(m.progress.ViewAs(float64(m.stats.ConversionRate) / 100))
	b.WriteString(fmt.Sprintf("  %d of %d leads won\n", m.stats.Won, m.stats.Total))
	b.WriteString(m.theme.Label.Render(fmt.Sprintf("New leads: %d this week, %d this month", m.newThisWeek, m.newThisMonth)))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Header.Render("Pipeline"))
	b.WriteString("\n")
	for _, s := range models.LeadStatuses {
		b.WriteString(m.theme.StatusStyle(s).Render(padRight(string(s), 6)))
		b.WriteString(fmt.Sprintf(" %d\n", m.counts[s]))
	}
	b.WriteString("\n")

	b.WriteString(m.theme.Header.Render(fmt.Sprintf("Revenue, last %d months", config.RevenueHistoryMonths)))
	b.WriteString("\n")
	var peak float64
	for _, mr := range m.monthly {
		if mr.Total > peak {
			peak = mr.Total
		}
	}
	for _, mr := range m.monthly {
		b.WriteString(padRight(FormatMonthLabel(mr.Month), 4))
		b.WriteString(m.theme.Highlight.Render(padRight(bar(mr.Total, peak, config.RevenueBarWidth), config.RevenueBarWidth)))
		b.WriteString(" " + util.FormatCurrency(mr.Total) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// window returns the [start, end) slice of n rows that keeps cursor visible.
func window(cursor, n, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := util.Clamp(cursor-size/2, 0, n-size)
	return start, start + size
}

func (m Model) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.theme.Border)).
		Headers(headers...)
}

func (m Model) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m Model) renderLeads() string {
	var b strings.Builder
	b.WriteString(m.theme.Label.Render(fmt.Sprintf("Filter: %s  (%d leads)", m.search.FilterLabel(), len(m.leads))))
	b.WriteString("\n")
	if len(m.leads) == 0 {
		b.WriteString(m.theme.Dim.Render("No leads. Press n to add one or S to load demo data."))
		return b.String()
	}

	cursor := m.cursor[TabLeads]
	start, end := window(cursor, len(m.leads), config.MaxVisibleRows)
	headers := []string{"Name", "Company", "Status", "Value", "Created"}
	if m.compact() {
		headers = []string{"Name", "Status", "Value"}
	}
	rows := make([][]string, 0, end-start)
	statuses := make([]models.LeadStatus, 0, end-start)
	for _, l := range m.leads[start:end] {
		company := l.BusinessName
		if company == "" {
			company = "-"
		}
		row := []string{
			truncateCell(l.Name, config.NameColumnWidth),
			truncateCell(company, config.CompanyColumnWidth),
			string(l.Status),
			util.FormatCurrency(l.Value),
			FormatDate(l.CreatedAt),
		}
		if m.compact() {
			row = []string{row[0], row[2], row[3]}
		}
		rows = append(rows, row)
		statuses = append(statuses, l.Status)
	}
	statusCol := 2
	if m.compact() {
		statusCol = 1
	}

	t := m.newTable(headers...).Rows(rows...).StyleFunc(func(row, col int) lipgloss.Style {
		style := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case row == table.HeaderRow:
			return m.theme.Header.Padding(0, 1)
		case start+row == cursor:
			return m.theme.Selected.Padding(0, 1)
		case col == statusCol:
			return m.theme.StatusStyle(statuses[row]).Padding(0, 1)
		}
		return style
	})
	b.WriteString(t.Render())
	return b.String()
}

func (m Model) renderSales() string {
	if len(m.sales) == 0 {
		return m.theme.Dim.Render("No sales recorded. Press n to add one.")
	}
	cursor := m.cursor[TabSales]
	start, end := window(cursor, len(m.sales), config.MaxVisibleRows)
	rows := make([][]string, 0, end-start)
	for _, s := range m.sales[start:end] {
		rows = append(rows, []string{
			FormatDate(s.Date),
			truncateCell(s.Description, config.DescriptionColumnWidth),
			"$" + util.FormatAmount(s.Amount),
		})
	}
	t := m.newTable("Date", "Description", "Amount").Rows(rows...).StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return m.theme.Header.Padding(0, 1)
		case start+row == cursor:
			return m.theme.Selected.Padding(0, 1)
		}
		return lipgloss.NewStyle().Padding(0, 1)
	})
	summary := m.theme.Label.Render(fmt.Sprintf("%d sales totalling %s", m.revenue.Count, util.FormatCurrency(m.revenue.Total)))
	return summary + "\n" + t.Render()
}

func (m Model) renderForm() string {
	f := m.form
	var b strings.Builder
	b.WriteString(m.theme.Header.Render(f.Title()))
	b.WriteString("\n\n")
	for i, input := range f.inputs {
		label := padRight(f.labels[i], 12)
		if i == f.focus {
			label = m.theme.Selected.Render(label)
		} else {
			label = m.theme.Label.Render(label)
		}
		b.WriteString(label + input.View() + "\n")
	}
	if f.err != "" {
		b.WriteString("\n" + m.theme.Error.Render(f.err) + "\n")
	}
	b.WriteString("\n" + m.theme.Dim.Render("[enter] save | [tab] next field | [esc] cancel"))
	return m.theme.Input.Render(b.String())
}

func (m Model) renderFooter() string {
	var lines []string
	if m.tab == TabLeads && (m.search.Active || m.search.Input.Value() != "") {
		lines = append(lines, m.search.Input.View())
	}
	lines = append(lines, m.theme.Dim.Render(m.keys.HelpForTab(m.tab)))
	if m.Message != "" {
		if m.msgIsErr {
			lines = append(lines, m.theme.Error.Render(m.Message))
		} else {
			lines = append(lines, m.theme.Highlight.Render(m.Message))
		}
	}
	return strings.Join(lines, "\n")
}
