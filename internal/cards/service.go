package cards

import (
	"context"
	"errors"
	"time"

	"tixora/pkg/cache"
	"tixora/pkg/logger"

	"github.com/google/uuid"
)

const statusKeyPrefix = "tixora:cards:status:"

type Service interface {
	// GetStatus resolves which card charges the customer owes. It never
	// fails the caller: lookup errors degrade to the safe default.
	GetStatus(ctx context.Context, customerID uuid.UUID) Status
}

type service struct {
	repo         Repository
	cacheService cache.Service
	statusTTL    time.Duration
	log          *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, statusTTL time.Duration, log *logger.Logger) Service {
	return &service{
		repo:         repo,
		cacheService: cacheService,
		statusTTL:    statusTTL,
		log:          log,
	}
}

func (s *service) GetStatus(ctx context.Context, customerID uuid.UUID) Status {
	cacheKey := statusKeyPrefix + customerID.String()

	var cached Status
	if s.cacheService != nil {
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return cached
		}
	}

	status, err := s.resolve(ctx, customerID)
	if err != nil {
		s.log.Warn("card status lookup failed, charging both fees",
			"customer_id", customerID.String(), "error", err.Error())
		return DefaultStatus()
	}

	if s.cacheService != nil {
		go func() {
			_ = s.cacheService.Set(context.Background(), cacheKey, status, s.statusTTL)
		}()
	}

	return status
}

func (s *service) resolve(ctx context.Context, customerID uuid.UUID) (Status, error) {
	card, err := s.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrCardNotFound) {
			// No card on file: issue fee applies, nothing to renew
			return Status{NeedsCardFee: true, NeedsRenewalCost: false}, nil
		}
		return Status{}, err
	}

	switch card.State {
	case CardStateActive:
		if card.ExpiresAt != nil && card.ExpiresAt.Before(time.Now()) {
			return Status{NeedsCardFee: false, NeedsRenewalCost: true}, nil
		}
		return Status{NeedsCardFee: false, NeedsRenewalCost: false}, nil
	case CardStateExpired:
		return Status{NeedsCardFee: false, NeedsRenewalCost: true}, nil
	default:
		// Revoked cards are re-issued, not renewed
		return Status{NeedsCardFee: true, NeedsRenewalCost: false}, nil
	}
}
