package models

import "github.com/shopspring/decimal"

// BillSource tags how a bill entered the system.
type BillSource string

const (
	// SourceManual marks bills typed in through the manual entry form.
	SourceManual BillSource = "manual"

	// SourcePhoto marks bills pre-filled from a photographed receipt.
	SourcePhoto BillSource = "photo"
)

// Valid reports whether s is one of the recognized sources.
// The store persists source as plain text, so rows written by older
// versions may carry other values; those still read back unchanged.
func (s BillSource) Valid() bool {
	return s == SourceManual || s == SourcePhoto
}

// Bill is a point-in-time transaction record. Bills are immutable after
// creation except for deletion; there is no update operation.
//
// CustomerName and UnitPrice are denormalized copies captured at creation
// time. They are deliberately not kept in sync with later customer renames
// or product price edits, so historical bills keep displaying what was
// actually billed.
type Bill struct {
	// ID is the auto-assigned row identifier.
	ID int64 `json:"id"`

	// CustomerID is a weak reference to the owning customer. It may
	// dangle after the customer is deleted; CustomerName keeps the bill
	// readable regardless.
	CustomerID int64 `json:"customer_id"`

	// CustomerName is the customer's name as of creation time.
	CustomerName string `json:"customer_name"`

	// Date is the transaction date in YYYY-MM-DD form. Stored as text;
	// range filtering relies on the lexicographic order of this format.
	Date string `json:"date"`

	// Specification is a free-text copy of what was billed, not a
	// reference to a Product row.
	Specification string `json:"specification"`

	// Quantity is the billed amount of units. Must be positive.
	Quantity decimal.Decimal `json:"quantity"`

	// UnitPrice is the price per unit, copied at creation time.
	UnitPrice decimal.Decimal `json:"unit_price"`

	// TotalPrice is Quantity x UnitPrice, computed once by the store at
	// insert time and stored. Callers never supply it.
	TotalPrice decimal.Decimal `json:"total_price"`

	// Source records how the bill was entered.
	Source BillSource `json:"source"`

	// PhotoPath is the receipt photo for photo-sourced bills, empty
	// otherwise.
	PhotoPath string `json:"photo_path,omitempty"`

	// CreatedAt is the timestamp assigned by the database at insert time.
	// Used as the tie-break when ordering same-day bills.
	CreatedAt string `json:"created_at,omitempty"`
}

// Statistics is the aggregate over a filtered set of bills.
type Statistics struct {
	// TotalCount is the number of matching bills.
	TotalCount int `json:"total_count"`

	// TotalAmount is the sum of TotalPrice over the matching bills.
	TotalAmount decimal.Decimal `json:"total_amount"`

	// Bills are the matching records themselves, in the same order
	// the bill listing would return them.
	Bills []Bill `json:"bills"`
}
