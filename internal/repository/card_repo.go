package repository

import (
	"context"
	"errors"

	"facturation/internal/model"

	"gorm.io/gorm"
)

type CardRepository interface {
	Create(ctx context.Context, card *model.DiscountCard) error
	FindByClientCode(ctx context.Context, clientCode string) (*model.DiscountCard, error)
	List(ctx context.Context, page, limit int) ([]model.DiscountCard, int64, error)
	// ListNumbers loads every allocated card number for the allocator scan.
	ListNumbers(ctx context.Context) (map[string]bool, error)
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, card *model.DiscountCard) error {
	return GetDB(ctx, r.db).Create(card).Error
}

// FindByClientCode returns (nil, nil) when the client holds no card.
func (r *cardRepository) FindByClientCode(ctx context.Context, clientCode string) (*model.DiscountCard, error) {
	var card model.DiscountCard
	if err := GetDB(ctx, r.db).Where("client_code = ?", clientCode).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) List(ctx context.Context, page, limit int) ([]model.DiscountCard, int64, error) {
	var cards []model.DiscountCard
	var total int64

	db := GetDB(ctx, r.db).Model(&model.DiscountCard{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("number asc").Offset(offset).Limit(limit).Find(&cards).Error; err != nil {
		return nil, 0, err
	}

	return cards, total, nil
}

func (r *cardRepository) ListNumbers(ctx context.Context) (map[string]bool, error) {
	var numbers []string
	if err := GetDB(ctx, r.db).Model(&model.DiscountCard{}).Pluck("number", &numbers).Error; err != nil {
		return nil, err
	}
	used := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		used[n] = true
	}
	return used, nil
}
