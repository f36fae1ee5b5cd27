package models

import (
	"fmt"
	"strings"
	"time"
)

// LeadStatus enumerates the stages a lead moves through.
type LeadStatus string

const (
	LeadCold LeadStatus = "Cold"
	LeadWarm LeadStatus = "Warm"
	LeadHot  LeadStatus = "Hot"
	LeadWon  LeadStatus = "Won"
	LeadLost LeadStatus = "Lost"
)

// LeadStatuses lists every status in pipeline order.
var LeadStatuses = []LeadStatus{LeadCold, LeadWarm, LeadHot, LeadWon, LeadLost}

// Valid reports whether s is one of the five known statuses.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadCold, LeadWarm, LeadHot, LeadWon, LeadLost:
		return true
	}
	return false
}

// Closed reports whether the lead has left the active pipeline.
func (s LeadStatus) Closed() bool {
	return s == LeadWon || s == LeadLost
}

// ParseLeadStatus matches a status name case-insensitively.
func ParseLeadStatus(raw string) (LeadStatus, error) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range LeadStatuses {
		if strings.EqualFold(trimmed, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown lead status %q", raw)
}

// Lead is a prospective deal.
type Lead struct {
	ID           int64
	Name         string
	Status       LeadStatus
	Value        float64
	Notes        string
	Email        string
	Phone        string
	BusinessName string
	Address      string
	CreatedAt    time.Time
}

// NewLead carries the fields accepted when a lead is created.
type NewLead struct {
	Name         string
	Value        float64
	Status       LeadStatus // empty means Cold
	Notes        string
	Email        string
	Phone        string
	BusinessName string
	Address      string
}

// Sale is a closed transaction.
type Sale struct {
	ID          int64
	Description string
	Amount      float64
	Date        time.Time // when the sale happened
	CreatedAt   time.Time // when the row was inserted
}

// RevenueStats aggregates all sales.
type RevenueStats struct {
	Total float64
	Count int
}

// LeadStats aggregates the lead pipeline.
type LeadStats struct {
	Total          int
	Won            int
	Lost           int
	Active         int
	PipelineValue  float64
	ConversionRate int // percent, rounded
}

// PipelineCounts maps every status to the number of leads in it.
type PipelineCounts map[LeadStatus]int

// MonthlyRevenue is the sale total for one calendar month ("2006-01").
type MonthlyRevenue struct {
	Month string
	Total float64
}

// LeadFilter narrows a lead listing. Zero value matches everything.
type LeadFilter struct {
	Status LeadStatus
	Search string
	Limit  int
}
