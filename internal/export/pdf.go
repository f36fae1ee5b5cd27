package export

import (
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/akyairhashvil/salestrack/internal/util"
	"github.com/go-pdf/fpdf"
)

// Report is the input for the PDF pipeline report.
type Report struct {
	GeneratedAt time.Time
	Revenue     models.RevenueStats
	Stats       models.LeadStats
	Leads       []models.Lead
	Sales       []models.Sale
}

// ReportFileName is the PDF name for a report generated on the given day.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("Sales_Pipeline_Report_%s.pdf", now.Format(dateLayout))
}

// WriteReportPDF renders the summary, the lead table and the sales table.
func WriteReportPDF(w io.Writer, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	loc := r.GeneratedAt.Location()

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Sales Pipeline Report: %s", r.GeneratedAt.Format(dateLayout)))
	pdf.Ln(12)

	// Summary
	pdf.SetFont("Arial", "", 12)
	summary := []string{
		fmt.Sprintf("Total Revenue: %s (%d transactions)", util.FormatCurrency(r.Revenue.Total), r.Revenue.Count),
		fmt.Sprintf("Pipeline Value: %s", util.FormatCurrency(r.Stats.PipelineValue)),
		fmt.Sprintf("Leads: %d total, %d active, %d won, %d lost", r.Stats.Total, r.Stats.Active, r.Stats.Won, r.Stats.Lost),
		fmt.Sprintf("Conversion Rate: %d%%", r.Stats.ConversionRate),
	}
	for _, line := range summary {
		pdf.Cell(0, 8, line)
		pdf.Ln(7)
	}
	pdf.Ln(6)

	leadCols := []float64{45, 50, 20, 30, 35}
	table(pdf, tr, "Leads", []string{"Name", "Company", "Status", "Value", "Added"}, leadCols, len(r.Leads), func(i int) []string {
		l := r.Leads[i]
		return []string{
			l.Name,
			orDefault(l.BusinessName, "Independent"),
			string(l.Status),
			util.FormatCurrency(l.Value),
			l.CreatedAt.In(loc).Format(dateLayout),
		}
	})

	pdf.Ln(8)
	saleCols := []float64{20, 90, 35, 35}
	table(pdf, tr, "Sales", []string{"ID", "Description", "Amount", "Date"}, saleCols, len(r.Sales), func(i int) []string {
		s := r.Sales[i]
		return []string{
			fmt.Sprintf("%d", s.ID),
			s.Description,
			util.FormatCurrency(s.Amount),
			s.Date.In(loc).Format(dateLayout),
		}
	})

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func table(pdf *fpdf.Fpdf, tr func(string) string, title string, headers []string, widths []float64, n int, row func(int) []string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if n == 0 {
		pdf.Cell(0, 7, "  - None recorded.")
		pdf.Ln(7)
		return
	}
	for i := 0; i < n; i++ {
		for j, cell := range row(i) {
			pdf.CellFormat(widths[j], 6, truncate(tr(cell), widths[j]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// truncate keeps roughly what fits in a 9pt cell of the given width.
func truncate(s string, width float64) string {
	limit := int(width / 1.9)
	if len(s) <= limit || limit < 4 {
		return s
	}
	return s[:limit-3] + "..."
}
