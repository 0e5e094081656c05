package usecase

import (
	"context"

	"github.com/DRSN-tech/botstore-backend/internal/domain"
)

// Темы шины событий. Публикуются после каждой мутации соответствующего
// хранилища — внешний потребитель подписывается вместо опроса.
const (
	TopicCatalogChanged = "catalog.changed"
	TopicCartChanged    = "cart.changed"
	TopicSessionChanged = "session.changed"
)

// CategoryAll — значение фильтра «все категории»
const CategoryAll = "all"

type CatalogUC interface {
	Products(ctx context.Context) []domain.Product
	ProductByID(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) domain.NameSet
	ProductTypes(ctx context.Context) domain.NameSet
	Filter(ctx context.Context, req *FilterProductsReq) []domain.Product
	UpsertProduct(ctx context.Context, req *UpsertProductReq) (*domain.Product, error)
	AddCategory(ctx context.Context, name string) error
	RenameCategory(ctx context.Context, oldName, newName string) error
	AddProductType(ctx context.Context, name string) error
	RenameProductType(ctx context.Context, oldName, newName string) error
}

type CartUC interface {
	Items(ctx context.Context) []domain.CartItem
	Total(ctx context.Context) int64
	Add(ctx context.Context, productID string) error
	SetQuantity(ctx context.Context, productID string, quantity int64) error
	Remove(ctx context.Context, productID string) error
	Checkout(ctx context.Context) (*CheckoutRes, error)
}

type SessionUC interface {
	State(ctx context.Context) *SessionInfo
	IsAuthenticated(ctx context.Context) bool
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context)
	SetViewMode(ctx context.Context, mode domain.ViewMode) error
	SetAdminSection(ctx context.Context, section domain.AdminSection) error
	SetTheme(ctx context.Context, theme domain.Theme) error
}
