package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order on every start. Each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		CONSTRAINT customers_phone_number_key UNIQUE (phone_number)
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		address_details TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		pin_code TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_addresses_customer_id ON addresses (customer_id)`,
}

// EnsureSchema creates the customers and addresses tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
