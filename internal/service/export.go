package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/mliu/ledgerbook/internal/models"
	"github.com/mliu/ledgerbook/internal/storage"
)

// ErrNoBills is returned by ExportBills when the filter matches nothing;
// an empty spreadsheet is not worth writing.
var ErrNoBills = errors.New("no bills to export")

const exportSheet = "Bills"

// ExportBills writes the bills matching filter to a spreadsheet under the
// service's export directory and returns the file path. Columns mirror
// the bill listing: customer name, date, specification, quantity, unit
// price, total price, and a human-readable source label.
func (s *LedgerService) ExportBills(ctx context.Context, filter storage.BillFilter) (string, error) {
	bills, err := s.store.FilterBills(ctx, filter)
	if err != nil {
		return "", fmt.Errorf("export bills: %w", err)
	}
	if len(bills) == 0 {
		return "", ErrNoBills
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet is "Sheet1"; rename rather than add-and-delete.
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return "", fmt.Errorf("export bills: rename sheet: %w", err)
	}

	headers := []any{"Customer", "Date", "Specification", "Quantity", "Unit Price", "Total Price", "Source"}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return "", fmt.Errorf("export bills: write header: %w", err)
	}

	for i, b := range bills {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("export bills: cell name: %w", err)
		}
		row := []any{
			b.CustomerName,
			b.Date,
			b.Specification,
			b.Quantity.String(),
			b.UnitPrice.String(),
			b.TotalPrice.String(),
			sourceLabel(b.Source),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return "", fmt.Errorf("export bills: write row %d: %w", i+2, err)
		}
	}

	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		return "", fmt.Errorf("export bills: create export dir: %w", err)
	}

	// Timestamp plus a short random suffix keeps repeated exports within
	// the same second from clobbering each other.
	name := fmt.Sprintf("bills_%s_%s.xlsx",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
	)
	path := filepath.Join(s.exportDir, name)

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("export bills: save: %w", err)
	}

	slog.Info("Bills exported", "path", path, "count", len(bills))
	return path, nil
}

// sourceLabel maps the stored source tag to its display label. Unknown
// legacy tags pass through unchanged.
func sourceLabel(s models.BillSource) string {
	switch s {
	case models.SourceManual:
		return "Manual Entry"
	case models.SourcePhoto:
		return "Photo Scan"
	default:
		return string(s)
	}
}
