// Package testutil holds fixture builders shared by package tests.
package testutil

import (
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
)

// LeadBuilder provides a fluent API for creating test leads.
type LeadBuilder struct {
	lead models.Lead
}

func NewLead() *LeadBuilder {
	return &LeadBuilder{
		lead: models.Lead{
			Name:      "Test Lead",
			Status:    models.LeadCold,
			Value:     1000,
			CreatedAt: time.Now(),
		},
	}
}

func (b *LeadBuilder) WithID(id int64) *LeadBuilder {
	b.lead.ID = id
	return b
}

func (b *LeadBuilder) WithName(name string) *LeadBuilder {
	b.lead.Name = name
	return b
}

func (b *LeadBuilder) WithStatus(s models.LeadStatus) *LeadBuilder {
	b.lead.Status = s
	return b
}

func (b *LeadBuilder) WithValue(v float64) *LeadBuilder {
	b.lead.Value = v
	return b
}

func (b *LeadBuilder) WithBusiness(name string) *LeadBuilder {
	b.lead.BusinessName = name
	return b
}

func (b *LeadBuilder) WithContact(email, phone, address string) *LeadBuilder {
	b.lead.Email = email
	b.lead.Phone = phone
	b.lead.Address = address
	return b
}

func (b *LeadBuilder) WithNotes(notes string) *LeadBuilder {
	b.lead.Notes = notes
	return b
}

func (b *LeadBuilder) CreatedAt(t time.Time) *LeadBuilder {
	b.lead.CreatedAt = t
	return b
}

func (b *LeadBuilder) Build() models.Lead {
	return b.lead
}

// SaleBuilder provides a fluent API for creating test sales.
type SaleBuilder struct {
	sale models.Sale
}

func NewSale() *SaleBuilder {
	now := time.Now()
	return &SaleBuilder{
		sale: models.Sale{
			Description: "Test Sale",
			Amount:      500,
			Date:        now,
			CreatedAt:   now,
		},
	}
}

func (b *SaleBuilder) WithID(id int64) *SaleBuilder {
	b.sale.ID = id
	return b
}

func (b *SaleBuilder) WithDescription(d string) *SaleBuilder {
	b.sale.Description = d
	return b
}

func (b *SaleBuilder) WithAmount(a float64) *SaleBuilder {
	b.sale.Amount = a
	return b
}

func (b *SaleBuilder) On(date time.Time) *SaleBuilder {
	b.sale.Date = date
	return b
}

func (b *SaleBuilder) CreatedAt(t time.Time) *SaleBuilder {
	b.sale.CreatedAt = t
	return b
}

func (b *SaleBuilder) Build() models.Sale {
	return b.sale
}
