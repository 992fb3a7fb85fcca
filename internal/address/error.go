package address

import (
	"fmt"

	"customers-be/internal/apperror"
)

var (
	ErrAddressNotFound  = fmt.Errorf("address %w", apperror.ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", apperror.ErrNotFound)
)
