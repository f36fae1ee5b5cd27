package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Tabs        []Tab
	Priority    int
}

func (b KeyBinding) AppliesToTab(tab Tab) bool {
	if len(b.Tabs) == 0 {
		return true
	}
	for _, t := range b.Tabs {
		if t == tab {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToTab(m.tab) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsForTab(tab Tab) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToTab(tab) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForTab(tab Tab) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsForTab(tab) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " | ")
}
