package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/DRSN-tech/botstore-backend/internal/domain"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
)

// CatalogUseCase владеет каталогом в памяти: товары плюс множества имён
// категорий и типов. Гидратируется из слотов при старте (или из стартовых
// данных), после каждой мутации сбрасывает владеемый слот обратно в хранилище.
type CatalogUseCase struct {
	store  CatalogStore
	bus    EventBus.Bus
	logger logger.Logger

	mu         sync.RWMutex
	products   []domain.Product
	categories domain.NameSet
	types      domain.NameSet
}

func NewCatalogUC(ctx context.Context, store CatalogStore, bus EventBus.Bus, logger logger.Logger) *CatalogUseCase {
	c := &CatalogUseCase{
		store:  store,
		bus:    bus,
		logger: logger,
	}
	c.hydrate(ctx)

	return c
}

// hydrate читает слоты каталога. Отсутствующий или нечитаемый слот молча
// заменяется стартовыми данными — это штатное первое включение.
func (c *CatalogUseCase) hydrate(ctx context.Context) {
	products, err := c.store.LoadProducts(ctx)
	if err != nil {
		c.warnIfCorrupt("products", err)
		products = domain.SeedProducts()
	}

	categories, err := c.store.LoadCategories(ctx)
	if err != nil {
		c.warnIfCorrupt("categories", err)
		categories = domain.SeedCategories()
	}

	types, err := c.store.LoadProductTypes(ctx)
	if err != nil {
		c.warnIfCorrupt("productTypes", err)
		types = domain.SeedProductTypes()
	}

	c.products = products
	c.categories = categories
	c.types = types
}

// Products возвращает снимок каталога в текущем порядке (новые первыми).
func (c *CatalogUseCase) Products(ctx context.Context) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshotProducts()
}

// ProductByID возвращает копию товара по идентификатору.
func (c *CatalogUseCase) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.products {
		if c.products[i].ID == id {
			product := c.products[i]
			return &product, nil
		}
	}

	return nil, e.ErrProductNotFound
}

func (c *CatalogUseCase) Categories(ctx context.Context) domain.NameSet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.categories.Clone()
}

func (c *CatalogUseCase) ProductTypes(ctx context.Context) domain.NameSet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.types.Clone()
}

// Filter возвращает подмножество каталога: категория точно совпадает
// (или "all"), поисковая строка — подстрока имени либо описания без учёта
// регистра. Порядок каталога сохраняется.
func (c *CatalogUseCase) Filter(ctx context.Context, req *FilterProductsReq) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(req.Search))

	result := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if req.Category != CategoryAll && req.Category != "" && p.Category != req.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		result = append(result, p)
	}

	return result
}

// UpsertProduct обновляет товар по ID (полная замена полей на той же позиции)
// либо создаёт новый со свежим ID и ставит его в начало каталога.
// Данные не валидируются: это обязанность границы до вызова.
func (c *CatalogUseCase) UpsertProduct(ctx context.Context, req *UpsertProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpsertProduct"

	c.mu.Lock()

	var product domain.Product
	if req.ID != "" {
		idx := c.indexOfProduct(req.ID)
		if idx < 0 {
			c.mu.Unlock()
			return nil, e.Wrap(op, e.ErrProductNotFound)
		}

		product = *domain.NewProduct(req.ID, req.Name, req.Description, req.Price, req.Category, req.ImageURL, req.Type)
		c.products[idx] = product
	} else {
		product = *domain.NewProduct(uuid.NewString(), req.Name, req.Description, req.Price, req.Category, req.ImageURL, req.Type)
		c.products = append([]domain.Product{product}, c.products...)
	}

	c.flushProducts(ctx, op)
	c.mu.Unlock()

	c.bus.Publish(TopicCatalogChanged)

	return &product, nil
}

// AddCategory добавляет категорию, если её ещё нет.
// Дубликат — молчаливый no-op: предупреждение пользователю показывает граница.
func (c *CatalogUseCase) AddCategory(ctx context.Context, name string) error {
	const op = "CatalogUseCase.AddCategory"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	c.mu.Lock()
	if !c.categories.Insert(name) {
		c.mu.Unlock()
		return nil
	}

	if err := c.store.SaveCategories(ctx, c.categories); err != nil {
		c.logger.Warnf("failed to persist categories slot: %v", e.Wrap(op, err))
	}
	c.mu.Unlock()

	c.bus.Publish(TopicCatalogChanged)

	return nil
}

// RenameCategory переименовывает категорию на её позиции и каскадно обновляет
// все товары со старым именем. Товары и множество имён сохраняются одной
// транзакцией.
func (c *CatalogUseCase) RenameCategory(ctx context.Context, oldName, newName string) error {
	const op = "CatalogUseCase.RenameCategory"

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil
	}

	c.mu.Lock()

	renamed := c.categories.Rename(oldName, newName)
	cascaded := false
	for i := range c.products {
		if c.products[i].Category == oldName {
			c.products[i].Category = newName
			cascaded = true
		}
	}

	if !renamed && !cascaded {
		c.mu.Unlock()
		return nil
	}

	err := c.store.WithinTx(ctx, func(ctx context.Context) error {
		if err := c.store.SaveProducts(ctx, c.products); err != nil {
			return err
		}
		return c.store.SaveCategories(ctx, c.categories)
	})
	if err != nil {
		c.logger.Warnf("failed to persist category rename, in-memory state diverges: %v", e.Wrap(op, err))
	}
	c.mu.Unlock()

	c.bus.Publish(TopicCatalogChanged)

	return nil
}

// AddProductType — контракт AddCategory для множества типов.
func (c *CatalogUseCase) AddProductType(ctx context.Context, name string) error {
	const op = "CatalogUseCase.AddProductType"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	c.mu.Lock()
	if !c.types.Insert(name) {
		c.mu.Unlock()
		return nil
	}

	if err := c.store.SaveProductTypes(ctx, c.types); err != nil {
		c.logger.Warnf("failed to persist productTypes slot: %v", e.Wrap(op, err))
	}
	c.mu.Unlock()

	c.bus.Publish(TopicCatalogChanged)

	return nil
}

// RenameProductType — контракт RenameCategory, применённый к Product.Type.
func (c *CatalogUseCase) RenameProductType(ctx context.Context, oldName, newName string) error {
	const op = "CatalogUseCase.RenameProductType"

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil
	}

	c.mu.Lock()

	renamed := c.types.Rename(oldName, newName)
	cascaded := false
	for i := range c.products {
		if c.products[i].Type == oldName {
			c.products[i].Type = newName
			cascaded = true
		}
	}

	if !renamed && !cascaded {
		c.mu.Unlock()
		return nil
	}

	err := c.store.WithinTx(ctx, func(ctx context.Context) error {
		if err := c.store.SaveProducts(ctx, c.products); err != nil {
			return err
		}
		return c.store.SaveProductTypes(ctx, c.types)
	})
	if err != nil {
		c.logger.Warnf("failed to persist product type rename, in-memory state diverges: %v", e.Wrap(op, err))
	}
	c.mu.Unlock()

	c.bus.Publish(TopicCatalogChanged)

	return nil
}

func (c *CatalogUseCase) indexOfProduct(id string) int {
	for i := range c.products {
		if c.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *CatalogUseCase) snapshotProducts() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// flushProducts вызывается под write-блокировкой.
// Ошибка записи не фатальна: состояние в памяти остаётся источником истины.
func (c *CatalogUseCase) flushProducts(ctx context.Context, op string) {
	if err := c.store.SaveProducts(ctx, c.products); err != nil {
		c.logger.Warnf("failed to persist products slot: %v", e.Wrap(op, err))
	}
}

func (c *CatalogUseCase) warnIfCorrupt(slot string, err error) {
	if !errors.Is(err, e.ErrSlotNotFound) {
		c.logger.Warnf("slot %s unreadable, falling back to seed data: %v", slot, err)
	}
}
