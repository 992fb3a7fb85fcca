package customer

import (
	"context"

	"customers-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the customer operations exposed to the HTTP layer.
type Service interface {
	Create(ctx context.Context, in CustomerInput) (*Customer, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id int64) (*CustomerDetail, error)
	Update(ctx context.Context, id int64, in CustomerInput) (*Customer, error)
	Delete(ctx context.Context, id int64) error
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new customer service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates the input, normalizes it (trimmed names, separator-free
// phone) and inserts it. The unique index sees the normalized phone, so two
// spellings of one number collide.
func (s *service) Create(ctx context.Context, in CustomerInput) (*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCustomer"),
	)
	log.Info("CreateCustomer started")

	if err := Validate(in); err != nil {
		log.Info("validation failed", zap.String("reason", err.Error()))
		return nil, err
	}

	c, err := s.repo.Create(ctx, Normalize(in))
	if err != nil {
		return nil, err
	}

	log.Info("CreateCustomer success", zap.Int64("customer_id", c.ID))
	return c, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListCustomers"),
		zap.String("search", params.Search),
		zap.String("sort_by", params.SortBy),
		zap.String("order", params.Order),
	)
	log.Info("ListCustomers started")

	if err := ValidateListParams(params); err != nil {
		log.Info("validation failed", zap.String("reason", err.Error()))
		return nil, err
	}

	res, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	log.Info("ListCustomers success",
		zap.Int("count", len(res.Customers)),
		zap.Int64("total", res.Total),
	)
	return res, nil
}

func (s *service) Get(ctx context.Context, id int64) (*CustomerDetail, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCustomer"),
		zap.Int64("customer_id", id),
	)
	log.Info("GetCustomer started")

	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, in CustomerInput) (*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateCustomer"),
		zap.Int64("customer_id", id),
	)
	log.Info("UpdateCustomer started")

	if err := Validate(in); err != nil {
		log.Info("validation failed", zap.String("reason", err.Error()))
		return nil, err
	}

	c, err := s.repo.Update(ctx, id, Normalize(in))
	if err != nil {
		return nil, err
	}

	log.Info("UpdateCustomer success")
	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteCustomer"),
		zap.Int64("customer_id", id),
	)
	log.Info("DeleteCustomer started")

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("DeleteCustomer success")
	return nil
}
