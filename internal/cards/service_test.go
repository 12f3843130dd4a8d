package cards

import (
	"context"
	"errors"
	"testing"
	"time"

	"tixora/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubRepo struct {
	card *Card
	err  error
}

func (s stubRepo) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*Card, error) {
	return s.card, s.err
}

func (s stubRepo) Create(ctx context.Context, card *Card) error { return nil }

func newTestService(repo Repository) Service {
	return NewService(repo, nil, time.Minute, logger.GetDefault())
}

func TestGetStatusNoCardOnFile(t *testing.T) {
	svc := newTestService(stubRepo{err: ErrCardNotFound})

	status := svc.GetStatus(context.Background(), uuid.New())

	assert.True(t, status.NeedsCardFee)
	assert.False(t, status.NeedsRenewalCost)
}

func TestGetStatusActiveCard(t *testing.T) {
	expiry := time.Now().AddDate(1, 0, 0)
	svc := newTestService(stubRepo{card: &Card{State: CardStateActive, ExpiresAt: &expiry}})

	status := svc.GetStatus(context.Background(), uuid.New())

	assert.False(t, status.NeedsCardFee)
	assert.False(t, status.NeedsRenewalCost)
}

func TestGetStatusActiveButLapsedCard(t *testing.T) {
	expiry := time.Now().AddDate(-1, 0, 0)
	svc := newTestService(stubRepo{card: &Card{State: CardStateActive, ExpiresAt: &expiry}})

	status := svc.GetStatus(context.Background(), uuid.New())

	assert.False(t, status.NeedsCardFee)
	assert.True(t, status.NeedsRenewalCost)
}

func TestGetStatusExpiredCard(t *testing.T) {
	svc := newTestService(stubRepo{card: &Card{State: CardStateExpired}})

	status := svc.GetStatus(context.Background(), uuid.New())

	assert.False(t, status.NeedsCardFee)
	assert.True(t, status.NeedsRenewalCost)
}

func TestGetStatusRevokedCard(t *testing.T) {
	svc := newTestService(stubRepo{card: &Card{State: CardStateRevoked}})

	status := svc.GetStatus(context.Background(), uuid.New())

	assert.True(t, status.NeedsCardFee)
	assert.False(t, status.NeedsRenewalCost)
}

func TestGetStatusDegradesOnLookupFailure(t *testing.T) {
	svc := newTestService(stubRepo{err: errors.New("connection refused")})

	status := svc.GetStatus(context.Background(), uuid.New())

	// Safe default: charge both, refund server-side if wrong
	assert.True(t, status.NeedsCardFee)
	assert.True(t, status.NeedsRenewalCost)
}
