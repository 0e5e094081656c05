package usecase

import (
	"context"

	"github.com/DRSN-tech/botstore-backend/internal/domain"
)

type CatalogStore interface {
	LoadProducts(ctx context.Context) ([]domain.Product, error)
	SaveProducts(ctx context.Context, products []domain.Product) error
	LoadCategories(ctx context.Context) (domain.NameSet, error)
	SaveCategories(ctx context.Context, categories domain.NameSet) error
	LoadProductTypes(ctx context.Context) (domain.NameSet, error)
	SaveProductTypes(ctx context.Context, types domain.NameSet) error
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type CartStore interface {
	LoadCart(ctx context.Context) ([]domain.CartItem, error)
	SaveCart(ctx context.Context, items []domain.CartItem) error
}

type SessionStore interface {
	LoadTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}
