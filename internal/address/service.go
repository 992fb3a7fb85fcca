package address

import (
	"context"

	"customers-be/internal/logger"

	"go.uber.org/zap"
)

// Service validates and normalizes address input before it reaches the
// repository.
type Service interface {
	Create(ctx context.Context, customerID int64, in AddressInput) (*Address, error)
	List(ctx context.Context, customerID int64) ([]*Address, error)
	Update(ctx context.Context, addressID int64, in AddressInput) (*Address, error)
	Delete(ctx context.Context, addressID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	customerID int64,
	in AddressInput,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Create"),
		zap.Int64("customer_id", customerID),
	)

	if err := Validate(in); err != nil {
		log.Info("validation failed", zap.String("reason", err.Error()))
		return nil, err
	}

	addr, err := s.repo.Create(ctx, customerID, Normalize(in))
	if err != nil {
		return nil, err
	}

	log.Info("address created", zap.Int64("address_id", addr.ID))
	return addr, nil
}

func (s *service) List(
	ctx context.Context,
	customerID int64,
) ([]*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "List"),
		zap.Int64("customer_id", customerID),
	)
	log.Info("listing addresses")

	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *service) Update(
	ctx context.Context,
	addressID int64,
	in AddressInput,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Update"),
		zap.Int64("address_id", addressID),
	)

	if err := Validate(in); err != nil {
		log.Info("validation failed", zap.String("reason", err.Error()))
		return nil, err
	}

	addr, err := s.repo.Update(ctx, addressID, Normalize(in))
	if err != nil {
		return nil, err
	}

	log.Info("address updated")
	return addr, nil
}

func (s *service) Delete(
	ctx context.Context,
	addressID int64,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Delete"),
		zap.Int64("address_id", addressID),
	)

	if err := s.repo.Delete(ctx, addressID); err != nil {
		return err
	}

	log.Info("address deleted")
	return nil
}
