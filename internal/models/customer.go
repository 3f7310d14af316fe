package models

// Customer represents a party that owns price-list entries and bills.
type Customer struct {
	// ID is the auto-assigned row identifier.
	ID int64 `json:"id"`

	// Name is the unique display name of the customer.
	Name string `json:"name"`

	// CreatedAt is the timestamp assigned by the database at insert time.
	CreatedAt string `json:"created_at,omitempty"`
}
