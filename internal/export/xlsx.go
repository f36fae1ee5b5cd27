package export

import (
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/salestrack/internal/models"
	"github.com/xuri/excelize/v2"
)

// LeadsFileName is the spreadsheet name for a lead export on the given day.
func LeadsFileName(now time.Time) string {
	return fmt.Sprintf("Sales_Expert_Leads_%s.xlsx", now.Format(dateLayout))
}

// SalesFileName is the spreadsheet name for a sales export on the given day.
func SalesFileName(now time.Time) string {
	return fmt.Sprintf("Sales_History_%s.xlsx", now.Format(dateLayout))
}

// WriteLeadsXLSX writes the "Active Pipeline" workbook.
func WriteLeadsXLSX(w io.Writer, leads []models.Lead, loc *time.Location) error {
	rows := make([][]interface{}, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, LeadRow(l, loc))
	}
	return writeSheet(w, LeadsSheet, LeadHeaders, leadWidths, rows)
}

// WriteSalesXLSX writes the "Sales History" workbook.
func WriteSalesXLSX(w io.Writer, sales []models.Sale, loc *time.Location) error {
	rows := make([][]interface{}, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, SaleRow(s, loc))
	}
	return writeSheet(w, SalesSheet, SaleHeaders, saleWidths, rows)
}

func writeSheet(w io.Writer, sheet string, headers []string, widths []float64, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("column width %s: %w", col, err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
