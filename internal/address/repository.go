package address

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"customers-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, customerID int64, in AddressInput) (*Address, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*Address, error)
	Update(ctx context.Context, id int64, in AddressInput) (*Address, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create checks the owner and inserts the address inside one transaction.
// The FOR SHARE lock makes a concurrent delete of the customer wait until
// the insert has committed, so the check and the insert are never split.
func (r *repository) Create(
	ctx context.Context,
	customerID int64,
	in AddressInput,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Create"),
		zap.Int64("customer_id", customerID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin tx failed", zap.Error(err))
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const checkQ = `SELECT id FROM customers WHERE id = $1 FOR SHARE`

	var ownerID int64
	err = tx.QueryRowContext(ctx, checkQ, customerID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("owner not found")
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		log.Error("owner lookup failed", zap.Error(err))
		return nil, fmt.Errorf("lookup customer: %w", err)
	}

	const insertQ = `
		INSERT INTO addresses (customer_id, address_details, city, state, pin_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, customer_id, address_details, city, state, pin_code
	`

	var a Address
	err = tx.QueryRowContext(
		ctx, insertQ,
		ownerID, in.AddressDetails, in.City, in.State, in.PinCode,
	).Scan(&a.ID, &a.CustomerID, &a.AddressDetails, &a.City, &a.State, &a.PinCode)
	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return nil, fmt.Errorf("insert address: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", zap.Error(err))
		return nil, fmt.Errorf("commit address: %w", err)
	}

	log.Info("address created", zap.Int64("address_id", a.ID))
	return &a, nil
}

func (r *repository) ListByCustomer(
	ctx context.Context,
	customerID int64,
) ([]*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "ListByCustomer"),
		zap.Int64("customer_id", customerID),
	)

	const existsQ = `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, existsQ, customerID).Scan(&exists); err != nil {
		log.Error("owner lookup failed", zap.Error(err))
		return nil, fmt.Errorf("lookup customer: %w", err)
	}
	if !exists {
		log.Warn("owner not found")
		return nil, ErrCustomerNotFound
	}

	const q = `
		SELECT id, customer_id, address_details, city, state, pin_code
		FROM addresses
		WHERE customer_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	res := make([]*Address, 0)
	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID, &a.CustomerID,
			&a.AddressDetails, &a.City, &a.State, &a.PinCode,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan address: %w", err)
		}
		res = append(res, &a)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}

	return res, nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	in AddressInput,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Update"),
		zap.Int64("address_id", id),
	)

	const q = `
		UPDATE addresses
		SET address_details = $1,
		    city = $2,
		    state = $3,
		    pin_code = $4
		WHERE id = $5
		RETURNING id, customer_id, address_details, city, state, pin_code
	`

	var a Address
	err := r.db.QueryRowContext(
		ctx, q,
		in.AddressDetails, in.City, in.State, in.PinCode, id,
	).Scan(&a.ID, &a.CustomerID, &a.AddressDetails, &a.City, &a.State, &a.PinCode)

	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("address not found")
		return nil, ErrAddressNotFound
	}
	if err != nil {
		log.Error("update failed", zap.Error(err))
		return nil, fmt.Errorf("update address: %w", err)
	}

	return &a, nil
}

func (r *repository) Delete(
	ctx context.Context,
	id int64,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Delete"),
		zap.Int64("address_id", id),
	)

	const q = `DELETE FROM addresses WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		log.Error("delete failed", zap.Error(err))
		return fmt.Errorf("delete address: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Error("rows affected failed", zap.Error(err))
		return fmt.Errorf("delete address: %w", err)
	}
	if affected == 0 {
		log.Warn("address not found")
		return ErrAddressNotFound
	}

	return nil
}
