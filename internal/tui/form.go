package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formLead formKind = iota
	formSale
)

// FormState is the open add-lead or add-sale modal.
type FormState struct {
	kind   formKind
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
}

const (
	leadName = iota
	leadCompany
	leadValue
	leadEmail
	leadPhone
)

const (
	saleDescription = iota
	saleAmount
	saleDate
)

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = config.FormInputWidth
	return ti
}

func newLeadForm() *FormState {
	f := &FormState{
		kind:   formLead,
		labels: []string{"Name", "Company", "Value", "Email", "Phone"},
		inputs: []textinput.Model{
			newInput("Jane Smith", config.MaxNameLength),
			newInput("Acme Corp", config.MaxNameLength),
			newInput("5000", config.MaxAmountLength),
			newInput("jane@example.com", config.MaxNameLength),
			newInput("555-0100", config.MaxNameLength),
		},
	}
	f.inputs[0].Focus()
	return f
}

func newSaleForm(today string) *FormState {
	f := &FormState{
		kind:   formSale,
		labels: []string{"Description", "Amount", "Date"},
		inputs: []textinput.Model{
			newInput("Annual support contract", config.MaxDescriptionLength),
			newInput("1200", config.MaxAmountLength),
			newInput("YYYY-MM-DD", config.MaxAmountLength),
		},
	}
	f.inputs[saleDate].SetValue(today)
	f.inputs[0].Focus()
	return f
}

func (f *FormState) Title() string {
	if f.kind == formLead {
		return "New Lead"
	}
	return "New Sale"
}

func (f *FormState) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *FormState) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// parseMoney accepts "$12,500.50" style input. Blank means zero.
func parseMoney(raw string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	if cleaned == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return v, nil
}

func handleNewLead(m Model, _ string) (Model, tea.Cmd, bool) {
	m.form = newLeadForm()
	return m, textinput.Blink, true
}

func handleNewSale(m Model, _ string) (Model, tea.Cmd, bool) {
	m.form = newSaleForm(m.now().Format("2006-01-02"))
	return m, textinput.Blink, true
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.Type {
	case tea.KeyEsc:
		m.form = nil
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		f.move(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.move(-1)
		return m, nil
	case tea.KeyEnter:
		return m.submitForm()
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	switch f.kind {
	case formLead:
		value, err := parseMoney(f.value(leadValue))
		if err != nil {
			f.err = "Value: " + err.Error()
			return m, nil
		}
		in := models.NewLead{
			Name:         f.value(leadName),
			BusinessName: f.value(leadCompany),
			Value:        value,
			Email:        f.value(leadEmail),
			Phone:        f.value(leadPhone),
		}
		if _, err := m.db.AddLead(m.ctx, in); err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.setStatus("Added lead " + in.Name)
	case formSale:
		amount, err := parseMoney(f.value(saleAmount))
		if err != nil {
			f.err = "Amount: " + err.Error()
			return m, nil
		}
		desc := f.value(saleDescription)
		if _, err := m.db.AddSale(m.ctx, desc, amount, f.value(saleDate)); err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.setStatus("Recorded sale " + desc)
	}
	m.form = nil
	m.refresh()
	return m, nil
}
