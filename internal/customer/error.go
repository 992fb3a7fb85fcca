package customer

import (
	"fmt"

	"customers-be/internal/apperror"
)

var (
	ErrCustomerNotFound     = fmt.Errorf("customer %w", apperror.ErrNotFound)
	ErrDuplicatePhoneNumber = apperror.ErrDuplicatePhoneNumber
)
