package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Tab identifies the visible screen.
type Tab int

const (
	TabDashboard Tab = iota
	TabLeads
	TabSales
)

var tabNames = []string{"Dashboard", "Leads", "Sales"}

func (t Tab) String() string {
	if int(t) < len(tabNames) {
		return tabNames[t]
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// Model is the root bubbletea model. Every mutation is followed by a full
// re-query; the slices below are a display cache only.
type Model struct {
	ctx      context.Context
	db       Database
	exporter Exporter
	logger   *zap.Logger
	now      func() time.Time
	keys     *HandlerRegistry
	theme    Theme

	tab    Tab
	cursor map[Tab]int
	width  int
	height int

	leads        []models.Lead
	sales        []models.Sale
	revenue      models.RevenueStats
	stats        models.LeadStats
	counts       models.PipelineCounts
	newThisWeek  int
	newThisMonth int
	monthly      []models.MonthlyRevenue

	search       SearchManager
	form         *FormState
	confirmReset bool
	progress     progress.Model

	Message  string
	msgIsErr bool
}

type Option func(*Model)

func WithExporter(e Exporter) Option {
	return func(m *Model) { m.exporter = e }
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func WithTheme(name string) Option {
	return func(m *Model) { m.theme = ResolveTheme(name) }
}

func New(ctx context.Context, db Database, opts ...Option) Model {
	si := textinput.New()
	si.Placeholder = "Search name or company (status:hot acme)..."
	si.CharLimit = config.MaxSearchLength
	si.Width = 40

	m := Model{
		ctx:      ctx,
		db:       db,
		logger:   zap.NewNop(),
		now:      time.Now,
		keys:     defaultKeyBindings(),
		theme:    ResolveTheme("default"),
		cursor:   make(map[Tab]int),
		search:   NewSearchManager(si),
		progress: progress.New(progress.WithDefaultGradient()),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.progress.Width = config.ProgressBarWidth
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch {
		case m.form != nil:
			return m.updateForm(msg)
		case m.search.Active:
			return m.updateSearch(msg)
		case m.confirmReset:
			return m.updateConfirmReset(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

// refresh re-reads everything shown on any tab.
func (m *Model) refresh() {
	if m.db == nil {
		m.setStatusError("No database connected")
		return
	}
	var err error
	if m.leads, err = m.db.FindLeads(m.ctx, m.search.Filter()); err != nil {
		m.fail("Error loading leads", err)
		return
	}
	if m.sales, err = m.db.GetSales(m.ctx); err != nil {
		m.fail("Error loading sales", err)
		return
	}
	if m.revenue, err = m.db.GetRevenueStats(m.ctx); err != nil {
		m.fail("Error loading revenue", err)
		return
	}
	if m.stats, err = m.db.GetLeadStatistics(m.ctx); err != nil {
		m.fail("Error loading lead statistics", err)
		return
	}
	if m.counts, err = m.db.GetPipelineCounts(m.ctx); err != nil {
		m.fail("Error loading pipeline", err)
		return
	}
	now := m.now()
	if m.newThisWeek, err = m.db.CountLeadsSince(m.ctx, StartOfWeek(now)); err != nil {
		m.fail("Error counting leads", err)
		return
	}
	if m.newThisMonth, err = m.db.CountLeadsSince(m.ctx, StartOfMonth(now)); err != nil {
		m.fail("Error counting leads", err)
		return
	}
	if m.monthly, err = m.db.GetMonthlyRevenue(m.ctx, config.RevenueHistoryMonths); err != nil {
		m.fail("Error loading revenue history", err)
		return
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	m.cursor[TabLeads] = util.Clamp(m.cursor[TabLeads], 0, len(m.leads)-1)
	m.cursor[TabSales] = util.Clamp(m.cursor[TabSales], 0, len(m.sales)-1)
}

func (m Model) selectedLead() (models.Lead, bool) {
	i := m.cursor[TabLeads]
	if i < 0 || i >= len(m.leads) {
		return models.Lead{}, false
	}
	return m.leads[i], true
}

func (m Model) selectedSale() (models.Sale, bool) {
	i := m.cursor[TabSales]
	if i < 0 || i >= len(m.sales) {
		return models.Sale{}, false
	}
	return m.sales[i], true
}

func (m *Model) setStatus(msg string) {
	m.Message = msg
	m.msgIsErr = false
}

func (m *Model) setStatusError(msg string) {
	m.Message = msg
	m.msgIsErr = true
}

func (m *Model) fail(context string, err error) {
	m.logger.Error(context, zap.Error(err))
	m.setStatusError(fmt.Sprintf("%s: %v", context, err))
}
