package tui

import (
	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Card      lipgloss.Style
	Label     lipgloss.Style
	Figure    lipgloss.Style
	Input     lipgloss.Style
	Status    map[models.LeadStatus]lipgloss.Style
	Selected  lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
}

func statusStyles(cold, warm, hot, won, lost string) map[models.LeadStatus]lipgloss.Style {
	return map[models.LeadStatus]lipgloss.Style{
		models.LeadCold: lipgloss.NewStyle().Foreground(lipgloss.Color(cold)),
		models.LeadWarm: lipgloss.NewStyle().Foreground(lipgloss.Color(warm)),
		models.LeadHot:  lipgloss.NewStyle().Foreground(lipgloss.Color(hot)).Bold(true),
		models.LeadWon:  lipgloss.NewStyle().Foreground(lipgloss.Color(won)).Bold(true),
		models.LeadLost: lipgloss.NewStyle().Foreground(lipgloss.Color(lost)).Strikethrough(true),
	}
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true).Padding(0, 2),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1).Width(22),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Figure:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Status:    statusStyles("39", "214", "196", "42", "240"),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Underline(true).Padding(0, 2),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1).Width(22),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Figure:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Status:    statusStyles("117", "215", "203", "84", "60"),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
	},
}

// ThemeOrder is the cycle order for the theme toggle.
var ThemeOrder = []string{"default", "dracula"}

// ResolveTheme falls back to the default theme for unknown names.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func (t Theme) StatusStyle(s models.LeadStatus) lipgloss.Style {
	if style, ok := t.Status[s]; ok {
		return style
	}
	return t.Dim
}
