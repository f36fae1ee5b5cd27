package tui

import (
	"strings"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
)

// SearchManager holds the lead search box and the status filter.
type SearchManager struct {
	Active    bool
	Input     textinput.Model
	FilterIdx int // 0 means all statuses, otherwise LeadStatuses[FilterIdx-1]
}

func NewSearchManager(input textinput.Model) SearchManager {
	return SearchManager{Input: input}
}

// CycleFilter steps All -> Cold -> ... -> Lost -> All.
func (s *SearchManager) CycleFilter() {
	s.FilterIdx = (s.FilterIdx + 1) % (len(models.LeadStatuses) + 1)
}

func (s SearchManager) FilterLabel() string {
	if s.FilterIdx == 0 {
		return "All"
	}
	return string(models.LeadStatuses[s.FilterIdx-1])
}

// Filter combines the cycled status with the search box. A "status:" token
// in the box overrides the cycled status.
func (s SearchManager) Filter() models.LeadFilter {
	var f models.LeadFilter
	if s.FilterIdx > 0 {
		f.Status = models.LeadStatuses[s.FilterIdx-1]
	}
	q := util.ParseSearchQuery(strings.TrimSpace(s.Input.Value()))
	for _, raw := range q.Status {
		if status, err := models.ParseLeadStatus(raw); err == nil {
			f.Status = status
		}
	}
	f.Search = q.Term()
	return f
}
