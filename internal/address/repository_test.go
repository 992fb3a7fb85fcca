package address

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"customers-be/internal/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressColumns = []string{"id", "customer_id", "address_details", "city", "state", "pin_code"}

func sampleInput() AddressInput {
	return AddressInput{
		AddressDetails: "12 Residency Road",
		City:           "Bengaluru",
		State:          "KA",
		PinCode:        "560025",
	}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	in := sampleInput()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM customers WHERE id = \$1 FOR SHARE`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery(`INSERT INTO addresses`).
			WithArgs(int64(7), in.AddressDetails, in.City, in.State, in.PinCode).
			WillReturnRows(sqlmock.NewRows(addressColumns).
				AddRow(int64(1), int64(7), in.AddressDetails, in.City, in.State, in.PinCode))
		mock.ExpectCommit()

		a, err := repo.Create(ctx, 7, in)
		require.NoError(t, err)
		assert.Equal(t, int64(1), a.ID)
		assert.Equal(t, int64(7), a.CustomerID)
		assert.Equal(t, in.PinCode, a.PinCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CustomerNotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM customers WHERE id = \$1 FOR SHARE`).
			WithArgs(int64(9999)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		a, err := repo.Create(ctx, 9999, in)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		// no INSERT expectation was registered, so none may have run
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM customers`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery(`INSERT INTO addresses`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err := repo.Create(ctx, 7, in)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginError", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

		_, err := repo.Create(ctx, 7, in)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListByCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM customers WHERE id = \$1\)`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(`SELECT id, customer_id, address_details, city, state, pin_code FROM addresses WHERE customer_id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(addressColumns).
				AddRow(int64(1), int64(3), "A", "B", "C", "123").
				AddRow(int64(2), int64(3), "D", "E", "F", "4567"))

		res, err := repo.ListByCustomer(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "4567", res[1].PinCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(`FROM addresses`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(addressColumns))

		res, err := repo.ListByCustomer(ctx, 4)
		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CustomerNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		res, err := repo.ListByCustomer(ctx, 5)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WillReturnError(errors.New("db error"))

		_, err := repo.ListByCustomer(ctx, 6)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	in := sampleInput()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE addresses`).
			WithArgs(in.AddressDetails, in.City, in.State, in.PinCode, int64(11)).
			WillReturnRows(sqlmock.NewRows(addressColumns).
				AddRow(int64(11), int64(2), in.AddressDetails, in.City, in.State, in.PinCode))

		a, err := repo.Update(ctx, 11, in)
		require.NoError(t, err)
		assert.Equal(t, int64(11), a.ID)
		assert.Equal(t, int64(2), a.CustomerID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE addresses`).
			WithArgs(in.AddressDetails, in.City, in.State, in.PinCode, int64(424242)).
			WillReturnError(sql.ErrNoRows)

		a, err := repo.Update(ctx, 424242, in)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM addresses WHERE id = \$1`).
			WithArgs(int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 8))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM addresses`).
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 9), ErrAddressNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM addresses`).
			WillReturnError(errors.New("db error"))

		err := repo.Delete(ctx, 10)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
