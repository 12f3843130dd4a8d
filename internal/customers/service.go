package customers

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes customer identity to the rest of the application
type Service interface {
	GetProfile(ctx context.Context, customerID uuid.UUID) (*Profile, error)
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, customerID uuid.UUID) (*Profile, error) {
	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	profile := customer.ToProfile()
	return &profile, nil
}

func (s *service) GetCustomer(ctx context.Context, customerID uuid.UUID) (*Customer, error) {
	return s.repo.GetByID(ctx, customerID)
}
