package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mliu/ledgerbook/internal/models"
	"github.com/mliu/ledgerbook/internal/storage"
)

// AddProduct inserts a price-list entry and returns the assigned ID.
// Duplicate (customer, specification) pairs are allowed.
func (s *SQLiteStore) AddProduct(ctx context.Context, customerID int64, specification string, unitPrice decimal.Decimal) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO products (customer_id, specification, unit_price) VALUES (?, ?, ?)",
		customerID, specification, unitPrice.String(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("add product: customer %d: %w", customerID, storage.ErrNotFound)
		}
		return 0, engineErr("add product", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add product: last insert id: %w", err)
	}
	return id, nil
}

// ListProducts returns a customer's products ordered by specification.
func (s *SQLiteStore) ListProducts(ctx context.Context, customerID int64) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, customer_id, specification, unit_price, created_at FROM products WHERE customer_id = ? ORDER BY specification",
		customerID,
	)
	if err != nil {
		return nil, engineErr("list products", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.Specification, &p.UnitPrice, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("list products: scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, engineErr("list products", err)
	}

	return products, nil
}

// UpdateProduct overwrites both fields of an existing product.
// It does not retroactively touch bills that copied the old price.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, id int64, specification string, unitPrice decimal.Decimal) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET specification = ?, unit_price = ? WHERE id = ?",
		specification, unitPrice.String(), id,
	)
	if err != nil {
		return engineErr("update product", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update product %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

// DeleteProduct removes a product row. No check is made for bills that
// reference the same specification by name; they keep their copies.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id); err != nil {
		return engineErr("delete product", err)
	}
	return nil
}
