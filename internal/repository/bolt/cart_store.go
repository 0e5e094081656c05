package bolt

import (
	"context"

	"github.com/DRSN-tech/botstore-backend/internal/domain"
	"github.com/DRSN-tech/botstore-backend/internal/repository/bolt/converter"
)

// CartStore — типизированная обёртка над слотом корзины.
type CartStore struct {
	repo *SlotRepo
	conv converter.CartConverter
}

func NewCartStore(repo *SlotRepo, conv converter.CartConverter) *CartStore {
	return &CartStore{
		repo: repo,
		conv: conv,
	}
}

func (s *CartStore) LoadCart(ctx context.Context) ([]domain.CartItem, error) {
	var models []converter.CartItemModel
	if err := s.repo.Load(ctx, SlotCart, &models); err != nil {
		return nil, err
	}

	return s.conv.ToArrEntity(models), nil
}

func (s *CartStore) SaveCart(ctx context.Context, items []domain.CartItem) error {
	return s.repo.Save(ctx, SlotCart, s.conv.ToArrModel(items))
}
