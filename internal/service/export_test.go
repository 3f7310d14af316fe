package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mliu/ledgerbook/internal/storage"
)

func TestExportBills(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("nothing to export", func(t *testing.T) {
		_, err := svc.ExportBills(ctx, storage.BillFilter{})
		if !errors.Is(err, ErrNoBills) {
			t.Errorf("Expected ErrNoBills, got %v", err)
		}
	})

	b := validBill("Acme", "2024-01-15")
	b.Quantity = dec(t, "3")
	b.UnitPrice = dec(t, "12.5")
	if _, out := svc.AddBill(ctx, b); !out.OK {
		t.Fatalf("AddBill failed: %+v", out)
	}

	t.Run("writes a readable spreadsheet", func(t *testing.T) {
		path, err := svc.ExportBills(ctx, storage.BillFilter{})
		if err != nil {
			t.Fatalf("ExportBills failed: %v", err)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("Failed to open exported file: %v", err)
		}
		defer f.Close()

		rows, err := f.GetRows("Bills")
		if err != nil {
			t.Fatalf("GetRows failed: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("Expected header plus one row, got %d rows", len(rows))
		}

		wantHeader := []string{"Customer", "Date", "Specification", "Quantity", "Unit Price", "Total Price", "Source"}
		for i, h := range wantHeader {
			if rows[0][i] != h {
				t.Errorf("Header %d: got %q, want %q", i, rows[0][i], h)
			}
		}

		want := []string{"Acme", "2024-01-15", "Item", "3", "12.5", "37.5", "Manual Entry"}
		for i, v := range want {
			if rows[1][i] != v {
				t.Errorf("Column %d: got %q, want %q", i, rows[1][i], v)
			}
		}
	})
}
