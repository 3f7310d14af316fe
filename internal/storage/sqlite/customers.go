package sqlite

import (
	"context"
	"fmt"

	"github.com/mliu/ledgerbook/internal/models"
	"github.com/mliu/ledgerbook/internal/storage"
)

// AddCustomer inserts a new customer and returns the assigned ID.
func (s *SQLiteStore) AddCustomer(ctx context.Context, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO customers (name) VALUES (?)",
		name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("add customer %q: %w", name, storage.ErrDuplicateName)
		}
		return 0, engineErr("add customer", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add customer: last insert id: %w", err)
	}
	return id, nil
}

// ListCustomers returns all customers ordered by name.
func (s *SQLiteStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM customers ORDER BY name",
	)
	if err != nil {
		return nil, engineErr("list customers", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("list customers: scan: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, engineErr("list customers", err)
	}

	return customers, nil
}

// DeleteCustomer removes a customer row. Products cascade through the
// foreign key; bills stay behind with their denormalized name.
func (s *SQLiteStore) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id); err != nil {
		return engineErr("delete customer", err)
	}
	return nil
}
