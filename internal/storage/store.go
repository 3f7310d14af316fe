// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mliu/ledgerbook/internal/models"
)

// BillFilter selects bills by zero or more predicates. Each zero-valued
// field imposes no constraint; set fields compose as a conjunction.
type BillFilter struct {
	// CustomerName matches the denormalized customer_name exactly
	// (case-sensitive, no substring matching).
	CustomerName string

	// StartDate is an inclusive lower bound on the bill date.
	StartDate string

	// EndDate is an inclusive upper bound on the bill date.
	EndDate string
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// AddCustomer inserts a customer and returns the assigned ID.
	// Inserting a name that already exists fails with ErrDuplicateName.
	AddCustomer(ctx context.Context, name string) (int64, error)

	// ListCustomers returns all customers ordered by name.
	ListCustomers(ctx context.Context) ([]models.Customer, error)

	// DeleteCustomer removes a customer. The customer's products are
	// removed with it; bills referencing the customer are left in place
	// and remain readable through their denormalized customer name.
	// Deleting an absent ID is a no-op, not an error.
	DeleteCustomer(ctx context.Context, id int64) error

	// AddProduct inserts a price-list entry and returns the assigned ID.
	// No uniqueness is enforced on (customer, specification).
	AddProduct(ctx context.Context, customerID int64, specification string, unitPrice decimal.Decimal) (int64, error)

	// ListProducts returns a customer's products ordered by specification.
	ListProducts(ctx context.Context, customerID int64) ([]models.Product, error)

	// UpdateProduct overwrites both fields of an existing product.
	// Returns ErrNotFound if no row has the given ID. Bills that copied
	// the old price are not touched.
	UpdateProduct(ctx context.Context, id int64, specification string, unitPrice decimal.Decimal) error

	// DeleteProduct removes a product. Deleting an absent ID is a no-op.
	DeleteProduct(ctx context.Context, id int64) error

	// AddBill computes bill.TotalPrice = bill.Quantity x bill.UnitPrice,
	// inserts the fully denormalized row, and returns the assigned ID.
	// The store is the single writer of TotalPrice; any caller-supplied
	// value is overwritten.
	AddBill(ctx context.Context, bill *models.Bill) (int64, error)

	// ListBills returns all bills ordered newest-first: date descending,
	// then creation time descending.
	ListBills(ctx context.Context) ([]models.Bill, error)

	// FilterBills returns the bills matching filter, in ListBills order.
	// A zero-valued filter returns the same result as ListBills.
	FilterBills(ctx context.Context, filter BillFilter) ([]models.Bill, error)

	// DeleteBill removes a bill. Deleting an absent ID is a no-op.
	DeleteBill(ctx context.Context, id int64) error

	// Close releases any resources held by the store.
	Close() error
}
