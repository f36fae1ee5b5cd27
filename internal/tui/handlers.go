package tui

import (
	"fmt"

	"github.com/akyairhashvil/salestrack/internal/export"
	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var listTabs = []Tab{TabLeads, TabSales}

func defaultKeyBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit"})
	r.Register(KeyBinding{Key: "tab", Handler: handleNextTab, Description: "switch"})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handlePrevTab})
	for i := range tabNames {
		r.Register(KeyBinding{Key: fmt.Sprintf("%d", i+1), Handler: handleJumpTab})
	}
	r.Register(KeyBinding{Key: "up", Handler: handleCursorUp, Tabs: listTabs})
	r.Register(KeyBinding{Key: "k", Handler: handleCursorUp, Tabs: listTabs})
	r.Register(KeyBinding{Key: "down", Handler: handleCursorDown, Tabs: listTabs})
	r.Register(KeyBinding{Key: "j", Handler: handleCursorDown, Tabs: listTabs})

	r.Register(KeyBinding{Key: "n", Handler: handleNewLead, Description: "new lead", Tabs: []Tab{TabLeads}})
	r.Register(KeyBinding{Key: "w", Handler: handleMarkWon, Description: "won", Tabs: []Tab{TabLeads}})
	r.Register(KeyBinding{Key: "l", Handler: handleMarkLost, Description: "lost", Tabs: []Tab{TabLeads}})
	r.Register(KeyBinding{Key: "d", Handler: handleDeleteLead, Description: "delete", Tabs: []Tab{TabLeads}})
	r.Register(KeyBinding{Key: "/", Handler: handleSearch, Description: "search", Tabs: []Tab{TabLeads}})
	r.Register(KeyBinding{Key: "f", Handler: handleCycleFilter, Description: "filter", Tabs: []Tab{TabLeads}})

	r.Register(KeyBinding{Key: "n", Handler: handleNewSale, Description: "new sale", Tabs: []Tab{TabSales}})
	r.Register(KeyBinding{Key: "d", Handler: handleDeleteSale, Description: "delete", Tabs: []Tab{TabSales}})

	r.Register(KeyBinding{Key: "S", Handler: handleSeed, Description: "seed demo"})
	r.Register(KeyBinding{Key: "R", Handler: handleReset, Description: "reset"})
	r.Register(KeyBinding{Key: "x", Handler: handleExport, Description: "export"})
	r.Register(KeyBinding{Key: "t", Handler: handleTheme, Description: "theme"})
	r.Register(KeyBinding{Key: "r", Handler: handleRefresh})
	return r
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleNextTab(m Model, _ string) (Model, tea.Cmd, bool) {
	m.tab = Tab((int(m.tab) + 1) % len(tabNames))
	return m, nil, true
}

func handlePrevTab(m Model, _ string) (Model, tea.Cmd, bool) {
	m.tab = Tab((int(m.tab) + len(tabNames) - 1) % len(tabNames))
	return m, nil, true
}

func handleJumpTab(m Model, key string) (Model, tea.Cmd, bool) {
	idx := int(key[0] - '1')
	if idx < 0 || idx >= len(tabNames) {
		return m, nil, false
	}
	m.tab = Tab(idx)
	return m, nil, true
}

func handleCursorUp(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.cursor[m.tab] > 0 {
		m.cursor[m.tab]--
	}
	return m, nil, true
}

func handleCursorDown(m Model, _ string) (Model, tea.Cmd, bool) {
	n := len(m.leads)
	if m.tab == TabSales {
		n = len(m.sales)
	}
	if m.cursor[m.tab] < n-1 {
		m.cursor[m.tab]++
	}
	return m, nil, true
}

func handleMarkWon(m Model, _ string) (Model, tea.Cmd, bool) {
	lead, ok := m.selectedLead()
	if !ok {
		return m, nil, true
	}
	res, err := m.db.MarkLeadWon(m.ctx, lead.ID)
	if err != nil {
		m.fail("Error marking lead won", err)
		return m, nil, true
	}
	if res.Created {
		m.setStatus(fmt.Sprintf("%s won: %s recorded", lead.Name, util.FormatCurrency(lead.Value)))
	} else {
		m.setStatus(fmt.Sprintf("%s is already won", lead.Name))
	}
	m.refresh()
	return m, nil, true
}

func handleMarkLost(m Model, _ string) (Model, tea.Cmd, bool) {
	lead, ok := m.selectedLead()
	if !ok {
		return m, nil, true
	}
	if lead.Status.Closed() {
		m.setStatus(fmt.Sprintf("%s is already %s", lead.Name, lead.Status))
		return m, nil, true
	}
	if err := m.db.UpdateLeadStatus(m.ctx, lead.ID, models.LeadLost); err != nil {
		m.fail("Error updating lead", err)
		return m, nil, true
	}
	m.setStatus(fmt.Sprintf("%s marked lost", lead.Name))
	m.refresh()
	return m, nil, true
}

func handleDeleteLead(m Model, _ string) (Model, tea.Cmd, bool) {
	lead, ok := m.selectedLead()
	if !ok {
		return m, nil, true
	}
	if err := m.db.DeleteLead(m.ctx, lead.ID); err != nil {
		m.fail("Error deleting lead", err)
		return m, nil, true
	}
	m.setStatus(fmt.Sprintf("Deleted %s", lead.Name))
	m.refresh()
	return m, nil, true
}

func handleDeleteSale(m Model, _ string) (Model, tea.Cmd, bool) {
	sale, ok := m.selectedSale()
	if !ok {
		return m, nil, true
	}
	if err := m.db.DeleteSale(m.ctx, sale.ID); err != nil {
		m.fail("Error deleting sale", err)
		return m, nil, true
	}
	m.setStatus(fmt.Sprintf("Deleted sale #%d", sale.ID))
	m.refresh()
	return m, nil, true
}

func handleSearch(m Model, _ string) (Model, tea.Cmd, bool) {
	m.search.Active = true
	m.search.Input.Focus()
	return m, nil, true
}

func handleCycleFilter(m Model, _ string) (Model, tea.Cmd, bool) {
	m.search.CycleFilter()
	m.cursor[TabLeads] = 0
	m.refresh()
	return m, nil, true
}

func handleSeed(m Model, _ string) (Model, tea.Cmd, bool) {
	res, err := m.db.SeedDummyData(m.ctx)
	if err != nil {
		m.fail("Seeding failed, existing data kept", err)
		return m, nil, true
	}
	m.setStatus(fmt.Sprintf("Demo data loaded: %d leads, %d sales", res.Leads, res.WonSales+res.Sales))
	m.cursor = make(map[Tab]int)
	m.refresh()
	return m, nil, true
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	m.confirmReset = true
	return m, nil, true
}

func (m Model) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmReset = false
	if msg.String() != "y" {
		m.setStatus("Reset cancelled")
		return m, nil
	}
	if err := m.db.ResetDatabase(m.ctx); err != nil {
		m.fail("Error resetting data", err)
		return m, nil
	}
	m.setStatus("All leads and sales deleted")
	m.cursor = make(map[Tab]int)
	m.refresh()
	return m, nil
}

func handleExport(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.exporter == nil {
		m.setStatusError("Export is not configured")
		return m, nil, true
	}
	// Export everything, not just the filtered view.
	leads, err := m.db.FindLeads(m.ctx, models.LeadFilter{})
	if err != nil {
		m.fail("Error loading leads", err)
		return m, nil, true
	}
	paths, err := m.exporter.All(m.ctx, export.Data{
		Leads:   leads,
		Sales:   m.sales,
		Revenue: m.revenue,
		Stats:   m.stats,
	})
	if err != nil {
		m.fail("Export failed", err)
		return m, nil, true
	}
	m.logger.Info("export complete", zap.Strings("paths", paths))
	m.setStatus(fmt.Sprintf("Exported %d files", len(paths)))
	return m, nil, true
}

func handleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	next := ThemeOrder[0]
	for i, name := range ThemeOrder {
		if Themes[name].Name == m.theme.Name {
			next = ThemeOrder[(i+1)%len(ThemeOrder)]
			break
		}
	}
	m.theme = ResolveTheme(next)
	m.setStatus("Theme: " + m.theme.Name)
	return m, nil, true
}

func handleRefresh(m Model, _ string) (Model, tea.Cmd, bool) {
	m.refresh()
	return m, nil, true
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.search.Active = false
		m.search.Input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.search.Active = false
		m.search.Input.Blur()
		m.search.Input.Reset()
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.search.Input, cmd = m.search.Input.Update(msg)
	m.cursor[TabLeads] = 0
	m.refresh()
	return m, cmd
}
