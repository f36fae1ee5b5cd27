package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/models"
)

type BackupLead struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	Value        float64 `json:"value"`
	Notes        string  `json:"notes,omitempty"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	BusinessName string  `json:"business_name,omitempty"`
	Address      string  `json:"address,omitempty"`
	CreatedAt    int64   `json:"created_at"`
}

type BackupSale struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	CreatedAt   int64   `json:"created_at"`
}

// Backup is the JSON document written by WriteBackup.
type Backup struct {
	AppVersion string       `json:"app_version"`
	ExportedAt string       `json:"exported_at"`
	Leads      []BackupLead `json:"leads"`
	Sales      []BackupSale `json:"sales"`
}

// BackupFileName follows the timestamped naming used for full exports.
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("%s_export_%s.json", config.AppName, now.Format("20060102_150405"))
}

// WriteBackup encodes every lead and sale. Timestamps are epoch milliseconds
// and sale dates RFC 3339, so a restore reproduces them exactly.
func WriteBackup(w io.Writer, leads []models.Lead, sales []models.Sale, now time.Time) error {
	b := Backup{
		AppVersion: config.AppVersion,
		ExportedAt: now.Format(time.RFC3339),
		Leads:      make([]BackupLead, 0, len(leads)),
		Sales:      make([]BackupSale, 0, len(sales)),
	}
	for _, l := range leads {
		b.Leads = append(b.Leads, BackupLead{
			ID:           l.ID,
			Name:         l.Name,
			Status:       string(l.Status),
			Value:        l.Value,
			Notes:        l.Notes,
			Email:        l.Email,
			Phone:        l.Phone,
			BusinessName: l.BusinessName,
			Address:      l.Address,
			CreatedAt:    l.CreatedAt.UnixMilli(),
		})
	}
	for _, s := range sales {
		b.Sales = append(b.Sales, BackupSale{
			ID:          s.ID,
			Description: s.Description,
			Amount:      s.Amount,
			Date:        s.Date.Format(time.RFC3339Nano),
			CreatedAt:   s.CreatedAt.UnixMilli(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// ReadBackup decodes a document written by WriteBackup.
func ReadBackup(r io.Reader) ([]models.Lead, []models.Sale, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, nil, fmt.Errorf("decode backup: %w", err)
	}
	leads := make([]models.Lead, 0, len(b.Leads))
	for _, l := range b.Leads {
		status, err := models.ParseLeadStatus(l.Status)
		if err != nil {
			return nil, nil, fmt.Errorf("lead %d: %w", l.ID, err)
		}
		leads = append(leads, models.Lead{
			ID:           l.ID,
			Name:         l.Name,
			Status:       status,
			Value:        l.Value,
			Notes:        l.Notes,
			Email:        l.Email,
			Phone:        l.Phone,
			BusinessName: l.BusinessName,
			Address:      l.Address,
			CreatedAt:    time.UnixMilli(l.CreatedAt),
		})
	}
	sales := make([]models.Sale, 0, len(b.Sales))
	for _, s := range b.Sales {
		date, err := time.Parse(time.RFC3339Nano, s.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("sale %d date: %w", s.ID, err)
		}
		sales = append(sales, models.Sale{
			ID:          s.ID,
			Description: s.Description,
			Amount:      s.Amount,
			Date:        date,
			CreatedAt:   time.UnixMilli(s.CreatedAt),
		})
	}
	return leads, sales, nil
}
