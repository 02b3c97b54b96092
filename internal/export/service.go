package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/taxflow-app/taxflow/internal/repository"
)

// Service produces XLSX bytes for checklist exports, for handing the
// collection status to an accountant.
type Service struct {
	taxYears repository.TaxYearRepository
	items    repository.ChecklistRepository
	logger   *slog.Logger
}

func NewService(taxYears repository.TaxYearRepository, items repository.ChecklistRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{taxYears: taxYears, items: items, logger: logger}
}

// ExportChecklistXLSX returns an XLSX workbook (as bytes) with one row per
// checklist item of the tax year, in stored order.
func (s *Service) ExportChecklistXLSX(ctx context.Context, taxYearID uuid.UUID) ([]byte, int, error) {
	start := time.Now()

	ty, err := s.taxYears.GetTaxYear(ctx, taxYearID)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.items.List(ctx, taxYearID)
	if err != nil {
		return nil, 0, fmt.Errorf("query checklist: %w", err)
	}

	f := excelize.NewFile()
	sheet := fmt.Sprintf("Checklist %d", ty.Year)
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Title",
		"Description",
		"Category",
		"Status",
		"Required",
		"Last Updated",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, it.Title)
		if it.Description != nil {
			write(2, truncate(*it.Description, 140))
		} else {
			write(2, "")
		}
		write(3, string(it.Category))
		write(4, string(it.Status))
		if it.Required {
			write(5, "yes")
		} else {
			write(5, "no")
		}
		write(6, it.UpdatedAt.Format("2006-01-02"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 44) // title
	_ = f.SetColWidth(sheet, "B", "B", 60) // description
	_ = f.SetColWidth(sheet, "C", "D", 14) // category, status
	_ = f.SetColWidth(sheet, "E", "E", 10) // required
	_ = f.SetColWidth(sheet, "F", "F", 14) // updated

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"tax_year_id", taxYearID.String(),
		"year", ty.Year,
		"rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(items), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
