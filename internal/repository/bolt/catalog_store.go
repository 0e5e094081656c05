package bolt

import (
	"context"

	"github.com/DRSN-tech/botstore-backend/internal/domain"
	"github.com/DRSN-tech/botstore-backend/internal/repository/bolt/converter"
)

// CatalogStore — типизированная обёртка над слотами каталога.
type CatalogStore struct {
	repo *SlotRepo
	conv converter.ProductConverter
}

func NewCatalogStore(repo *SlotRepo, conv converter.ProductConverter) *CatalogStore {
	return &CatalogStore{
		repo: repo,
		conv: conv,
	}
}

func (s *CatalogStore) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	var models []converter.ProductModel
	if err := s.repo.Load(ctx, SlotProducts, &models); err != nil {
		return nil, err
	}

	return s.conv.ToArrEntity(models), nil
}

func (s *CatalogStore) SaveProducts(ctx context.Context, products []domain.Product) error {
	return s.repo.Save(ctx, SlotProducts, s.conv.ToArrModel(products))
}

func (s *CatalogStore) LoadCategories(ctx context.Context) (domain.NameSet, error) {
	return s.loadNames(ctx, SlotCategories)
}

func (s *CatalogStore) SaveCategories(ctx context.Context, categories domain.NameSet) error {
	return s.repo.Save(ctx, SlotCategories, []string(categories))
}

func (s *CatalogStore) LoadProductTypes(ctx context.Context) (domain.NameSet, error) {
	return s.loadNames(ctx, SlotProductTypes)
}

func (s *CatalogStore) SaveProductTypes(ctx context.Context, types domain.NameSet) error {
	return s.repo.Save(ctx, SlotProductTypes, []string(types))
}

// WithinTx объединяет несколько записей слотов в одну транзакцию
// (каскадное переименование сохраняет товары и множество имён вместе).
func (s *CatalogStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.repo.WithinTx(ctx, fn)
}

func (s *CatalogStore) loadNames(ctx context.Context, slot string) (domain.NameSet, error) {
	var names []string
	if err := s.repo.Load(ctx, slot, &names); err != nil {
		return nil, err
	}

	return domain.NameSet(names), nil
}
