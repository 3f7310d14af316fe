package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on every startup; CREATE TABLE IF NOT EXISTS makes the
// bootstrap idempotent. There is no versioned migration mechanism.
//
// Note the asymmetry on customer deletion: products carry ON DELETE
// CASCADE, while bills declare no foreign key at all. bills.customer_id
// is a weak reference that is allowed to dangle, so deleting a customer
// keeps their historical bills readable through the denormalized
// customer_name column.
const schema = `
CREATE TABLE IF NOT EXISTS customers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    customer_id INTEGER NOT NULL,
    specification TEXT NOT NULL,
    unit_price TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS bills (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    customer_id INTEGER NOT NULL,
    customer_name TEXT NOT NULL,
    date TEXT NOT NULL,
    specification TEXT NOT NULL,
    quantity TEXT NOT NULL,
    unit_price TEXT NOT NULL,
    total_price TEXT NOT NULL,
    source TEXT NOT NULL DEFAULT 'manual',
    photo_path TEXT,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_products_customer_id ON products(customer_id);
CREATE INDEX IF NOT EXISTS idx_bills_date ON bills(date);
CREATE INDEX IF NOT EXISTS idx_bills_customer_name ON bills(customer_name);
`

// ensureSchema executes the schema setup.
func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
