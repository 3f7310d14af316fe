package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mliu/ledgerbook/internal/models"
	"github.com/mliu/ledgerbook/internal/storage"
)

const billColumns = "id, customer_id, customer_name, date, specification, quantity, unit_price, total_price, source, photo_path, created_at"

// AddBill computes the total price and inserts a fully denormalized bill
// row. The store is the single writer of total_price; whatever the caller
// put in bill.TotalPrice is overwritten before the insert.
func (s *SQLiteStore) AddBill(ctx context.Context, bill *models.Bill) (int64, error) {
	bill.TotalPrice = bill.Quantity.Mul(bill.UnitPrice)

	photoPath := sql.NullString{String: bill.PhotoPath, Valid: bill.PhotoPath != ""}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bills (customer_id, customer_name, date, specification,
		   quantity, unit_price, total_price, source, photo_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bill.CustomerID, bill.CustomerName, bill.Date, bill.Specification,
		bill.Quantity.String(), bill.UnitPrice.String(), bill.TotalPrice.String(),
		string(bill.Source), photoPath,
	)
	if err != nil {
		return 0, engineErr("add bill", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add bill: last insert id: %w", err)
	}
	bill.ID = id
	return id, nil
}

// ListBills returns all bills newest-first. It is defined as FilterBills
// with no predicates so the two share one ordering.
func (s *SQLiteStore) ListBills(ctx context.Context) ([]models.Bill, error) {
	return s.FilterBills(ctx, storage.BillFilter{})
}

// FilterBills applies the set predicates conjunctively. Each clause is
// appended only when its argument is non-empty, so a zero filter degrades
// to the unfiltered listing. Date bounds are inclusive and compare
// lexicographically, which is correct for the YYYY-MM-DD format.
func (s *SQLiteStore) FilterBills(ctx context.Context, filter storage.BillFilter) ([]models.Bill, error) {
	query := "SELECT " + billColumns + " FROM bills WHERE 1=1"
	var args []any

	if filter.CustomerName != "" {
		query += " AND customer_name = ?"
		args = append(args, filter.CustomerName)
	}
	if filter.StartDate != "" {
		query += " AND date >= ?"
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		query += " AND date <= ?"
		args = append(args, filter.EndDate)
	}

	// created_at has one-second resolution; id breaks remaining ties so
	// same-day bills always come back newest-first in a stable order.
	query += " ORDER BY date DESC, created_at DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, engineErr("filter bills", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var b models.Bill
		var source string
		var photoPath sql.NullString
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.CustomerName, &b.Date, &b.Specification,
			&b.Quantity, &b.UnitPrice, &b.TotalPrice, &source, &photoPath, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("filter bills: scan: %w", err)
		}
		b.Source = models.BillSource(source)
		b.PhotoPath = photoPath.String
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, engineErr("filter bills", err)
	}

	return bills, nil
}

// DeleteBill removes a bill row.
func (s *SQLiteStore) DeleteBill(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", id); err != nil {
		return engineErr("delete bill", err)
	}
	return nil
}
