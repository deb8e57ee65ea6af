package service

import (
	"context"
	"fmt"

	"facturation/internal/billing"
	"facturation/internal/repository"
)

type CardService interface {
	GetCardForClient(ctx context.Context, clientCode string) (*CardResponse, error)
	ListCards(ctx context.Context, page, limit int) ([]CardResponse, int64, error)
}

type cardService struct {
	repo repository.CardRepository
}

func NewCardService(repo repository.CardRepository) CardService {
	return &cardService{repo: repo}
}

func (s *cardService) GetCardForClient(ctx context.Context, clientCode string) (*CardResponse, error) {
	card, err := s.repo.FindByClientCode(ctx, clientCode)
	if err != nil {
		return nil, fmt.Errorf("card lookup: %w", err)
	}
	if card == nil {
		return nil, &billing.NotFoundError{Entity: "discount card for client", Code: clientCode}
	}
	return &CardResponse{
		Number:       card.Number,
		ClientCode:   card.ClientCode,
		DiscountRate: card.DiscountRate,
	}, nil
}

func (s *cardService) ListCards(ctx context.Context, page, limit int) ([]CardResponse, int64, error) {
	cards, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing cards: %w", err)
	}

	result := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		result = append(result, CardResponse{
			Number:       card.Number,
			ClientCode:   card.ClientCode,
			DiscountRate: card.DiscountRate,
		})
	}
	return result, total, nil
}
