package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mliu/ledgerbook/internal/models"
	"github.com/mliu/ledgerbook/internal/storage"
	"github.com/mliu/ledgerbook/internal/storage/sqlite"
)

func newTestService(t *testing.T) *LedgerService {
	t.Helper()

	dir := t.TempDir()
	store, err := sqlite.New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewLedgerService(store, filepath.Join(dir, "exports"))
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func validBill(name, date string) *models.Bill {
	return &models.Bill{
		CustomerID:    1,
		CustomerName:  name,
		Date:          date,
		Specification: "Item",
		Quantity:      decimal.NewFromInt(2),
		UnitPrice:     decimal.NewFromInt(5),
		Source:        models.SourceManual,
	}
}

// unavailableStore fails every operation the way the sqlite store reports
// an engine fault.
type unavailableStore struct{}

func engineFault(op string) error {
	return fmt.Errorf("%s: disk I/O error: %w", op, storage.ErrStorageUnavailable)
}

func (unavailableStore) AddCustomer(context.Context, string) (int64, error) {
	return 0, engineFault("add customer")
}

func (unavailableStore) ListCustomers(context.Context) ([]models.Customer, error) {
	return nil, engineFault("list customers")
}

func (unavailableStore) DeleteCustomer(context.Context, int64) error {
	return engineFault("delete customer")
}

func (unavailableStore) AddProduct(context.Context, int64, string, decimal.Decimal) (int64, error) {
	return 0, engineFault("add product")
}

func (unavailableStore) ListProducts(context.Context, int64) ([]models.Product, error) {
	return nil, engineFault("list products")
}

func (unavailableStore) UpdateProduct(context.Context, int64, string, decimal.Decimal) error {
	return engineFault("update product")
}

func (unavailableStore) DeleteProduct(context.Context, int64) error {
	return engineFault("delete product")
}

func (unavailableStore) AddBill(context.Context, *models.Bill) (int64, error) {
	return 0, engineFault("add bill")
}

func (unavailableStore) ListBills(context.Context) ([]models.Bill, error) {
	return nil, engineFault("list bills")
}

func (unavailableStore) FilterBills(context.Context, storage.BillFilter) ([]models.Bill, error) {
	return nil, engineFault("filter bills")
}

func (unavailableStore) DeleteBill(context.Context, int64) error {
	return engineFault("delete bill")
}

func (unavailableStore) Close() error { return nil }

func TestStorageFaultOutcomes(t *testing.T) {
	svc := NewLedgerService(unavailableStore{}, t.TempDir())
	ctx := context.Background()

	t.Run("mutations report unavailable", func(t *testing.T) {
		if _, out := svc.AddCustomer(ctx, "Acme"); out.OK || out.Code != CodeUnavailable {
			t.Errorf("AddCustomer: expected unavailable outcome, got %+v", out)
		}
		if _, out := svc.AddBill(ctx, validBill("Acme", "2024-01-15")); out.OK || out.Code != CodeUnavailable {
			t.Errorf("AddBill: expected unavailable outcome, got %+v", out)
		}
		if out := svc.DeleteBill(ctx, 1); out.OK || out.Code != CodeUnavailable {
			t.Errorf("DeleteBill: expected unavailable outcome, got %+v", out)
		}
	})

	t.Run("reads surface the typed error", func(t *testing.T) {
		if _, err := svc.ListCustomers(ctx); !errors.Is(err, storage.ErrStorageUnavailable) {
			t.Errorf("ListCustomers: expected ErrStorageUnavailable, got %v", err)
		}
		if _, err := svc.GetStatistics(ctx, storage.BillFilter{}); !errors.Is(err, storage.ErrStorageUnavailable) {
			t.Errorf("GetStatistics: expected ErrStorageUnavailable, got %v", err)
		}
	})
}

func TestAddCustomerOutcomes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("empty name rejected", func(t *testing.T) {
		_, out := svc.AddCustomer(ctx, "   ")
		if out.OK || out.Code != CodeInvalid {
			t.Errorf("Expected invalid outcome, got %+v", out)
		}
	})

	t.Run("first add succeeds, second is duplicate", func(t *testing.T) {
		id, out := svc.AddCustomer(ctx, "Acme")
		if !out.OK || id == 0 {
			t.Fatalf("Expected success, got %+v", out)
		}

		_, out = svc.AddCustomer(ctx, "Acme")
		if out.OK || out.Code != CodeDuplicate {
			t.Errorf("Expected duplicate outcome, got %+v", out)
		}
	})
}

func TestProductValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	customerID, out := svc.AddCustomer(ctx, "Acme")
	if !out.OK {
		t.Fatalf("AddCustomer failed: %+v", out)
	}

	cases := []struct {
		name          string
		specification string
		unitPrice     decimal.Decimal
	}{
		{"empty specification", "", decimal.NewFromInt(1)},
		{"zero price", "Spec", decimal.Zero},
		{"negative price", "Spec", decimal.NewFromInt(-2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, out := svc.AddProduct(ctx, customerID, tc.specification, tc.unitPrice)
			if out.OK || out.Code != CodeInvalid {
				t.Errorf("Expected invalid outcome, got %+v", out)
			}
		})
	}

	t.Run("valid product accepted", func(t *testing.T) {
		id, out := svc.AddProduct(ctx, customerID, "Spec", dec(t, "7.5"))
		if !out.OK || id == 0 {
			t.Errorf("Expected success, got %+v", out)
		}
	})

	t.Run("product under missing customer is not found", func(t *testing.T) {
		_, out := svc.AddProduct(ctx, 99999, "Orphan", decimal.NewFromInt(1))
		if out.OK || out.Code != CodeNotFound {
			t.Errorf("Expected not-found outcome, got %+v", out)
		}
	})

	t.Run("update of absent product is not found", func(t *testing.T) {
		out := svc.UpdateProduct(ctx, 99999, "Spec", decimal.NewFromInt(1))
		if out.OK || out.Code != CodeNotFound {
			t.Errorf("Expected not-found outcome, got %+v", out)
		}
	})
}

func TestAddBillValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mutate := func(f func(*models.Bill)) *models.Bill {
		b := validBill("Acme", "2024-01-15")
		f(b)
		return b
	}

	cases := []struct {
		name string
		bill *models.Bill
	}{
		{"empty customer name", mutate(func(b *models.Bill) { b.CustomerName = "" })},
		{"empty date", mutate(func(b *models.Bill) { b.Date = "" })},
		{"empty specification", mutate(func(b *models.Bill) { b.Specification = "" })},
		{"zero quantity", mutate(func(b *models.Bill) { b.Quantity = decimal.Zero })},
		{"negative unit price", mutate(func(b *models.Bill) { b.UnitPrice = decimal.NewFromInt(-1) })},
		{"unknown source", mutate(func(b *models.Bill) { b.Source = "import" })},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, out := svc.AddBill(ctx, tc.bill)
			if out.OK || out.Code != CodeInvalid {
				t.Errorf("Expected invalid outcome, got %+v", out)
			}
		})
	}

	t.Run("valid bill accepted with computed total", func(t *testing.T) {
		bill := validBill("Acme", "2024-01-15")
		id, out := svc.AddBill(ctx, bill)
		if !out.OK || id == 0 {
			t.Fatalf("Expected success, got %+v", out)
		}
		if !bill.TotalPrice.Equal(dec(t, "10")) {
			t.Errorf("Expected total 10, got %s", bill.TotalPrice)
		}
	})
}

func TestGetStatistics(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seed := []struct {
		name, date, qty, price string
	}{
		{"Acme", "2024-01-05", "1", "10"},
		{"Acme", "2024-01-15", "3", "12.5"},
		{"Globex", "2024-01-15", "2", "4.25"},
	}
	for _, s := range seed {
		b := validBill(s.name, s.date)
		b.Quantity = dec(t, s.qty)
		b.UnitPrice = dec(t, s.price)
		if _, out := svc.AddBill(ctx, b); !out.OK {
			t.Fatalf("AddBill failed: %+v", out)
		}
	}

	t.Run("no filters sums everything", func(t *testing.T) {
		stats, err := svc.GetStatistics(ctx, storage.BillFilter{})
		if err != nil {
			t.Fatalf("GetStatistics failed: %v", err)
		}
		if stats.TotalCount != 3 {
			t.Errorf("Expected count 3, got %d", stats.TotalCount)
		}
		// 10 + 37.5 + 8.5
		if !stats.TotalAmount.Equal(dec(t, "56")) {
			t.Errorf("Expected total 56, got %s", stats.TotalAmount)
		}
	})

	t.Run("statistics agree with the filtered listing", func(t *testing.T) {
		filter := storage.BillFilter{CustomerName: "Acme", StartDate: "2024-01-10"}

		bills, err := svc.FilterBills(ctx, filter)
		if err != nil {
			t.Fatalf("FilterBills failed: %v", err)
		}
		stats, err := svc.GetStatistics(ctx, filter)
		if err != nil {
			t.Fatalf("GetStatistics failed: %v", err)
		}

		if stats.TotalCount != len(bills) {
			t.Errorf("Count mismatch: %d vs %d", stats.TotalCount, len(bills))
		}
		want := decimal.Zero
		for _, b := range bills {
			want = want.Add(b.TotalPrice)
		}
		if !stats.TotalAmount.Equal(want) {
			t.Errorf("Amount mismatch: %s vs %s", stats.TotalAmount, want)
		}
		if len(stats.Bills) != len(bills) {
			t.Errorf("Bills mismatch: %d vs %d", len(stats.Bills), len(bills))
		}
	})

	t.Run("zero matches yields zero count and amount", func(t *testing.T) {
		stats, err := svc.GetStatistics(ctx, storage.BillFilter{CustomerName: "Nobody"})
		if err != nil {
			t.Fatalf("GetStatistics failed: %v", err)
		}
		if stats.TotalCount != 0 {
			t.Errorf("Expected count 0, got %d", stats.TotalCount)
		}
		if !stats.TotalAmount.IsZero() {
			t.Errorf("Expected amount 0, got %s", stats.TotalAmount)
		}
	})
}
