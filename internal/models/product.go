package models

import "github.com/shopspring/decimal"

// Product is a price-list entry belonging to exactly one customer.
// It acts as a quick-select template for new bills: the bill copies the
// specification and unit price, it does not reference the product row.
//
// There is no edit history. Updating a product overwrites it in place,
// and bills recorded against the old price are unaffected.
type Product struct {
	// ID is the auto-assigned row identifier.
	ID int64 `json:"id"`

	// CustomerID is the owning customer. Deleting the customer deletes
	// the product (cascade).
	CustomerID int64 `json:"customer_id"`

	// Specification is a free-text label. Not unique within a customer;
	// duplicates are allowed.
	Specification string `json:"specification"`

	// UnitPrice is the current price per unit. Must be positive.
	UnitPrice decimal.Decimal `json:"unit_price"`

	// CreatedAt is the timestamp assigned by the database at insert time.
	CreatedAt string `json:"created_at,omitempty"`
}
