// Package models defines the core domain models for Ledgerbook.
//
// # Entities
//
//   - Customer: a named party that bills and price-list entries belong to
//   - Product: a customer-specific (specification, unit price) price-list
//     entry, used as a quick-select template when recording bills
//   - Bill: one completed transaction with its own frozen copy of the
//     customer name and unit price
//
// # Design Principles
//
//  1. **Frozen history**: bills copy the customer name and unit price at
//     creation time. Later edits or deletions of customers and products never
//     change what a recorded bill displays.
//  2. **Exact money math**: quantity, unit price, and total price are
//     decimal.Decimal, never float64, so stored totals equal
//     quantity x unit price exactly.
//  3. **Avoid circular references**: relationships are ID fields, not pointers.
//
// Rows are always returned by value from the storage layer; callers hold
// copies, never live references into the store.
package models
