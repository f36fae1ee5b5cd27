package export

import (
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/util"
)

const (
	LeadsSheet = "Active Pipeline"
	SalesSheet = "Sales History"
)

var (
	LeadHeaders = []string{
		"Name", "Company", "Status", "Potential Value ($)", "Email",
		"Phone", "Address", "Date Added", "Time Added", "Notes",
	}
	leadWidths = []float64{20, 25, 10, 15, 25, 15, 30, 12, 12, 40}

	SaleHeaders = []string{"Transaction ID", "Description", "Amount ($)", "Date", "Timestamp"}
	saleWidths  = []float64{15, 40, 15, 15, 25}
)

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05"
)

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// LeadRow flattens a lead into spreadsheet cells in LeadHeaders order.
func LeadRow(l models.Lead, loc *time.Location) []interface{} {
	created := l.CreatedAt.In(loc)
	return []interface{}{
		l.Name,
		orDefault(l.BusinessName, "Independent"),
		string(l.Status),
		util.RoundMoney(l.Value),
		orDefault(l.Email, "N/A"),
		orDefault(l.Phone, "N/A"),
		orDefault(l.Address, "N/A"),
		created.Format(dateLayout),
		created.Format(timeLayout),
		l.Notes,
	}
}

// SaleRow flattens a sale into spreadsheet cells in SaleHeaders order.
func SaleRow(s models.Sale, loc *time.Location) []interface{} {
	return []interface{}{
		s.ID,
		s.Description,
		util.RoundMoney(s.Amount),
		s.Date.In(loc).Format(dateLayout),
		s.CreatedAt.In(loc).Format(timestampLayout),
	}
}
