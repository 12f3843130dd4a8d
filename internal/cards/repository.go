package cards

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCardNotFound = errors.New("card not found")

type Repository interface {
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*Card, error)
	Create(ctx context.Context, card *Card) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*Card, error) {
	var card Card
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *repository) Create(ctx context.Context, card *Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}
