package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"customers-be/internal/address"
	"customers-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, in CustomerInput) (*Customer, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
	GetByID(ctx context.Context, id int64) (*CustomerDetail, error)
	Update(ctx context.Context, id int64, in CustomerInput) (*Customer, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}

func (r *repository) Create(
	ctx context.Context,
	in CustomerInput,
) (*Customer, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Customer"),
		zap.String("method", "Create"),
	)

	const q = `
		INSERT INTO customers (first_name, last_name, phone_number)
		VALUES ($1, $2, $3)
		RETURNING id, first_name, last_name, phone_number
	`

	var c Customer
	err := r.db.QueryRowContext(ctx, q, in.FirstName, in.LastName, in.PhoneNumber).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber)
	if isUniqueViolation(err) {
		log.Warn("duplicate phone number")
		return nil, ErrDuplicatePhoneNumber
	}
	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	return &c, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) (*ListResult, error) {

	lq := BuildListQuery(params)

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Customer"),
		zap.String("method", "List"),
		zap.Int("page", lq.Page),
		zap.Int("limit", lq.Limit),
		zap.Int("offset", lq.Offset),
	)

	log.Debug("Executing customer count query",
		zap.String("query", lq.CountQuery),
		zap.Any("args", lq.CountArgs),
	)

	var total int64
	if err := r.db.QueryRowContext(ctx, lq.CountQuery, lq.CountArgs...).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, fmt.Errorf("count customers: %w", err)
	}

	log.Debug("Executing customer list query",
		zap.String("query", lq.Query),
		zap.Any("args", lq.Args),
	)

	rows, err := r.db.QueryContext(ctx, lq.Query, lq.Args...)
	if err != nil {
		log.Error("list query failed", zap.Error(err))
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*Customer, 0)
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return &ListResult{
		Customers:  customers,
		Total:      total,
		Page:       lq.Page,
		Limit:      lq.Limit,
		TotalPages: TotalPages(total, lq.Limit),
	}, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id int64,
) (*CustomerDetail, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Customer"),
		zap.String("method", "GetByID"),
		zap.Int64("customer_id", id),
	)

	const customerQ = `
		SELECT id, first_name, last_name, phone_number
		FROM customers
		WHERE id = $1
	`

	var d CustomerDetail
	err := r.db.QueryRowContext(ctx, customerQ, id).
		Scan(&d.ID, &d.FirstName, &d.LastName, &d.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("customer not found")
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		log.Error("customer query failed", zap.Error(err))
		return nil, fmt.Errorf("get customer: %w", err)
	}

	const addressesQ = `
		SELECT id, customer_id, address_details, city, state, pin_code
		FROM addresses
		WHERE customer_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, addressesQ, id)
	if err != nil {
		log.Error("addresses query failed", zap.Error(err))
		return nil, fmt.Errorf("get customer addresses: %w", err)
	}
	defer rows.Close()

	d.Addresses = make([]*address.Address, 0)
	for rows.Next() {
		var a address.Address
		if err := rows.Scan(
			&a.ID, &a.CustomerID,
			&a.AddressDetails, &a.City, &a.State, &a.PinCode,
		); err != nil {
			log.Error("address scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan address: %w", err)
		}
		d.Addresses = append(d.Addresses, &a)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}

	return &d, nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	in CustomerInput,
) (*Customer, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Customer"),
		zap.String("method", "Update"),
		zap.Int64("customer_id", id),
	)

	const q = `
		UPDATE customers
		SET first_name = $1,
		    last_name = $2,
		    phone_number = $3
		WHERE id = $4
		RETURNING id, first_name, last_name, phone_number
	`

	var c Customer
	err := r.db.QueryRowContext(ctx, q, in.FirstName, in.LastName, in.PhoneNumber, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Warn("customer not found")
		return nil, ErrCustomerNotFound
	case isUniqueViolation(err):
		log.Warn("duplicate phone number")
		return nil, ErrDuplicatePhoneNumber
	case err != nil:
		log.Error("update failed", zap.Error(err))
		return nil, fmt.Errorf("update customer: %w", err)
	}

	return &c, nil
}

// Delete removes the customer. Owned addresses go with it through the
// ON DELETE CASCADE foreign key, inside the same statement.
func (r *repository) Delete(
	ctx context.Context,
	id int64,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Customer"),
		zap.String("method", "Delete"),
		zap.Int64("customer_id", id),
	)

	const q = `DELETE FROM customers WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		log.Error("delete failed", zap.Error(err))
		return fmt.Errorf("delete customer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Error("rows affected failed", zap.Error(err))
		return fmt.Errorf("delete customer: %w", err)
	}
	if affected == 0 {
		log.Warn("customer not found")
		return ErrCustomerNotFound
	}

	return nil
}
