package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/DRSN-tech/botstore-backend/internal/domain"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/asaskevich/EventBus"
)

// CartUseCase — список позиций корзины, уникальных по ID товара.
// Тот же цикл, что и у каталога: гидратация при старте, сброс слота после
// каждой мутации, очистка при успешном оформлении заказа.
type CartUseCase struct {
	store   CartStore
	catalog CatalogUC
	gateway CheckoutGateway
	bus     EventBus.Bus
	logger  logger.Logger

	mu    sync.Mutex
	items []domain.CartItem
}

func NewCartUC(ctx context.Context, store CartStore, catalog CatalogUC, gateway CheckoutGateway,
	bus EventBus.Bus, logger logger.Logger) *CartUseCase {
	c := &CartUseCase{
		store:   store,
		catalog: catalog,
		gateway: gateway,
		bus:     bus,
		logger:  logger,
	}

	items, err := store.LoadCart(ctx)
	if err != nil {
		if !errors.Is(err, e.ErrSlotNotFound) {
			logger.Warnf("slot cart unreadable, starting with empty cart: %v", err)
		}
		items = []domain.CartItem{}
	}
	c.items = items

	return c
}

func (c *CartUseCase) Items(ctx context.Context) []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total возвращает сумму price*quantity по всем позициям, в сентимо.
func (c *CartUseCase) Total(ctx context.Context) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.total()
}

// Add увеличивает количество существующей позиции на 1
// либо добавляет новую с количеством 1.
func (c *CartUseCase) Add(ctx context.Context, productID string) error {
	const op = "CartUseCase.Add"

	product, err := c.catalog.ProductByID(ctx, productID)
	if err != nil {
		return e.Wrap(op, err)
	}

	c.mu.Lock()
	if idx := c.indexOf(productID); idx >= 0 {
		c.items[idx].Quantity++
	} else {
		c.items = append(c.items, *domain.NewCartItem(*product, 1))
	}
	c.flush(ctx, op)
	c.mu.Unlock()

	c.bus.Publish(TopicCartChanged)

	return nil
}

// SetQuantity устанавливает количество ровно в quantity (не дельта).
// Значение <= 0 удаляет позицию; отсутствующий товар — no-op.
func (c *CartUseCase) SetQuantity(ctx context.Context, productID string, quantity int64) error {
	const op = "CartUseCase.SetQuantity"

	c.mu.Lock()
	idx := c.indexOf(productID)
	if idx < 0 {
		c.mu.Unlock()
		return nil
	}

	if quantity <= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	} else {
		c.items[idx].Quantity = quantity
	}
	c.flush(ctx, op)
	c.mu.Unlock()

	c.bus.Publish(TopicCartChanged)

	return nil
}

// Remove удаляет позицию, если она есть.
func (c *CartUseCase) Remove(ctx context.Context, productID string) error {
	const op = "CartUseCase.Remove"

	c.mu.Lock()
	idx := c.indexOf(productID)
	if idx < 0 {
		c.mu.Unlock()
		return nil
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.flush(ctx, op)
	c.mu.Unlock()

	c.bus.Publish(TopicCartChanged)

	return nil
}

// Checkout строит ссылку-передачу заказа и очищает корзину.
// Подтверждения нет: передача считается успешной, как только ссылка построена.
func (c *CartUseCase) Checkout(ctx context.Context) (*CheckoutRes, error) {
	const op = "CartUseCase.Checkout"

	c.mu.Lock()

	if len(c.items) == 0 {
		c.mu.Unlock()
		return nil, e.Wrap(op, e.ErrCartEmpty)
	}

	total := c.total()
	url, err := c.gateway.OrderLink(c.items, total)
	if err != nil {
		c.mu.Unlock()
		return nil, e.Wrap(op, err)
	}

	c.items = []domain.CartItem{}
	c.flush(ctx, op)
	c.mu.Unlock()

	c.bus.Publish(TopicCartChanged)

	return NewCheckoutRes(url, total), nil
}

func (c *CartUseCase) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].ID == productID {
			return i
		}
	}
	return -1
}

func (c *CartUseCase) total() int64 {
	var total int64
	for i := range c.items {
		total += c.items[i].LineTotal()
	}
	return total
}

// flush вызывается под блокировкой; ошибка записи не фатальна.
func (c *CartUseCase) flush(ctx context.Context, op string) {
	if err := c.store.SaveCart(ctx, c.items); err != nil {
		c.logger.Warnf("failed to persist cart slot: %v", e.Wrap(op, err))
	}
}
