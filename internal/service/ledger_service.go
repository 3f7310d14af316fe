// Package service implements the ledger operations consumed by the UI
// transport. It validates input, delegates persistence to the storage
// layer, and translates typed storage errors into user-facing outcomes.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mliu/ledgerbook/internal/models"
	"github.com/mliu/ledgerbook/internal/storage"
)

// Code classifies an operation outcome so transports can map it to a
// status without parsing the message text.
type Code int

const (
	CodeOK Code = iota
	CodeInvalid
	CodeDuplicate
	CodeNotFound
	CodeUnavailable
	CodeInternal
)

// Outcome is the result of a mutating operation: a success flag and a
// user-facing message, plus a Code for programmatic branching.
type Outcome struct {
	OK      bool   `json:"ok"`
	Code    Code   `json:"-"`
	Message string `json:"message"`
}

func succeeded(msg string) Outcome {
	return Outcome{OK: true, Code: CodeOK, Message: msg}
}

func failed(code Code, msg string) Outcome {
	return Outcome{OK: false, Code: code, Message: msg}
}

// failedFrom translates a storage error into an outcome.
func failedFrom(err error) Outcome {
	switch {
	case errors.Is(err, storage.ErrDuplicateName):
		return failed(CodeDuplicate, "customer already exists")
	case errors.Is(err, storage.ErrNotFound):
		return failed(CodeNotFound, "record not found")
	case errors.Is(err, storage.ErrStorageUnavailable):
		return failed(CodeUnavailable, "storage unavailable, try again later")
	default:
		return failed(CodeInternal, "operation failed")
	}
}

// LedgerService exposes the bookkeeping operations over a Store.
// One instance is shared by all callers; it holds no per-call state.
type LedgerService struct {
	store     storage.Store
	exportDir string
}

// NewLedgerService creates a LedgerService backed by store. Exported
// spreadsheets are written under exportDir.
func NewLedgerService(store storage.Store, exportDir string) *LedgerService {
	return &LedgerService{store: store, exportDir: exportDir}
}

// AddCustomer creates a customer with a unique name.
func (s *LedgerService) AddCustomer(ctx context.Context, name string) (int64, Outcome) {
	if strings.TrimSpace(name) == "" {
		return 0, failed(CodeInvalid, "customer name must not be empty")
	}

	id, err := s.store.AddCustomer(ctx, name)
	if err != nil {
		slog.Warn("AddCustomer failed", "name", name, "error", err)
		return 0, failedFrom(err)
	}

	slog.Info("Customer added", "customer_id", id, "name", name)
	return id, succeeded("customer added")
}

// ListCustomers returns all customers ordered by name.
func (s *LedgerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.store.ListCustomers(ctx)
}

// DeleteCustomer removes a customer and, through the storage cascade, all
// of their products. Existing bills keep the denormalized customer name.
func (s *LedgerService) DeleteCustomer(ctx context.Context, id int64) Outcome {
	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		slog.Warn("DeleteCustomer failed", "customer_id", id, "error", err)
		return failedFrom(err)
	}

	slog.Info("Customer deleted", "customer_id", id)
	return succeeded("customer deleted")
}

// AddProduct creates a price-list entry for a customer.
func (s *LedgerService) AddProduct(ctx context.Context, customerID int64, specification string, unitPrice decimal.Decimal) (int64, Outcome) {
	if out, ok := validateProduct(specification, unitPrice); !ok {
		return 0, out
	}

	id, err := s.store.AddProduct(ctx, customerID, specification, unitPrice)
	if err != nil {
		slog.Warn("AddProduct failed", "customer_id", customerID, "error", err)
		return 0, failedFrom(err)
	}

	slog.Info("Product added", "product_id", id, "customer_id", customerID)
	return id, succeeded("product added")
}

// ListProducts returns a customer's products ordered by specification.
func (s *LedgerService) ListProducts(ctx context.Context, customerID int64) ([]models.Product, error) {
	return s.store.ListProducts(ctx, customerID)
}

// UpdateProduct overwrites a product's specification and unit price.
func (s *LedgerService) UpdateProduct(ctx context.Context, id int64, specification string, unitPrice decimal.Decimal) Outcome {
	if out, ok := validateProduct(specification, unitPrice); !ok {
		return out
	}

	if err := s.store.UpdateProduct(ctx, id, specification, unitPrice); err != nil {
		slog.Warn("UpdateProduct failed", "product_id", id, "error", err)
		return failedFrom(err)
	}

	slog.Info("Product updated", "product_id", id)
	return succeeded("product updated")
}

// DeleteProduct removes a product.
func (s *LedgerService) DeleteProduct(ctx context.Context, id int64) Outcome {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		slog.Warn("DeleteProduct failed", "product_id", id, "error", err)
		return failedFrom(err)
	}

	slog.Info("Product deleted", "product_id", id)
	return succeeded("product deleted")
}

// AddBill records a transaction. The total price is computed by the store
// from quantity and unit price; bill.TotalPrice is ignored on input.
// Source must be one of the recognized tags; unknown tags are rejected
// here even though older rows in storage may still carry them.
func (s *LedgerService) AddBill(ctx context.Context, bill *models.Bill) (int64, Outcome) {
	switch {
	case strings.TrimSpace(bill.CustomerName) == "":
		return 0, failed(CodeInvalid, "customer name must not be empty")
	case strings.TrimSpace(bill.Date) == "":
		return 0, failed(CodeInvalid, "date must not be empty")
	case strings.TrimSpace(bill.Specification) == "":
		return 0, failed(CodeInvalid, "specification must not be empty")
	case !bill.Quantity.IsPositive():
		return 0, failed(CodeInvalid, "quantity must be positive")
	case !bill.UnitPrice.IsPositive():
		return 0, failed(CodeInvalid, "unit price must be positive")
	case !bill.Source.Valid():
		return 0, failed(CodeInvalid, "source must be manual or photo")
	}

	id, err := s.store.AddBill(ctx, bill)
	if err != nil {
		slog.Warn("AddBill failed", "customer_name", bill.CustomerName, "error", err)
		return 0, failedFrom(err)
	}

	slog.Info("Bill added",
		"bill_id", id,
		"customer_name", bill.CustomerName,
		"total_price", bill.TotalPrice,
		"source", bill.Source,
	)
	return id, succeeded("bill added")
}

// ListBills returns all bills newest-first.
func (s *LedgerService) ListBills(ctx context.Context) ([]models.Bill, error) {
	return s.store.ListBills(ctx)
}

// FilterBills returns the bills matching filter, in ListBills order.
func (s *LedgerService) FilterBills(ctx context.Context, filter storage.BillFilter) ([]models.Bill, error) {
	return s.store.FilterBills(ctx, filter)
}

// DeleteBill removes a bill.
func (s *LedgerService) DeleteBill(ctx context.Context, id int64) Outcome {
	if err := s.store.DeleteBill(ctx, id); err != nil {
		slog.Warn("DeleteBill failed", "bill_id", id, "error", err)
		return failedFrom(err)
	}

	slog.Info("Bill deleted", "bill_id", id)
	return succeeded("bill deleted")
}

// GetStatistics filters bills and reduces them to a count and an exact
// decimal sum of total prices. The aggregation is recomputed on every
// call; datasets are small enough that a full rescan beats maintaining
// derived state.
func (s *LedgerService) GetStatistics(ctx context.Context, filter storage.BillFilter) (models.Statistics, error) {
	bills, err := s.store.FilterBills(ctx, filter)
	if err != nil {
		return models.Statistics{}, err
	}

	total := decimal.Zero
	for _, b := range bills {
		total = total.Add(b.TotalPrice)
	}

	return models.Statistics{
		TotalCount:  len(bills),
		TotalAmount: total,
		Bills:       bills,
	}, nil
}

func validateProduct(specification string, unitPrice decimal.Decimal) (Outcome, bool) {
	if strings.TrimSpace(specification) == "" {
		return failed(CodeInvalid, "specification must not be empty"), false
	}
	if !unitPrice.IsPositive() {
		return failed(CodeInvalid, "unit price must be positive"), false
	}
	return Outcome{}, true
}
