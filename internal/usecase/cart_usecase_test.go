package usecase_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/DRSN-tech/botstore-backend/internal/cfg"
	"github.com/DRSN-tech/botstore-backend/internal/infrastructure/whatsapp"
	bolt "github.com/DRSN-tech/botstore-backend/internal/repository/bolt"
	"github.com/DRSN-tech/botstore-backend/internal/repository/bolt/converter"
	"github.com/DRSN-tech/botstore-backend/internal/usecase"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartStore(repo *bolt.SlotRepo) *bolt.CartStore {
	prConv := converter.NewProductConverterImpl()
	return bolt.NewCartStore(repo, converter.NewCartConverterImpl(prConv))
}

func newTestGateway() *whatsapp.Gateway {
	return whatsapp.NewGateway(&cfg.CheckoutCfg{
		PhoneNumber: "+51985116690",
		BaseURL:     "https://wa.me",
	})
}

func newCartUC(t *testing.T) (*usecase.CartUseCase, *bolt.CartStore) {
	t.Helper()

	repo := openTestRepo(t)
	ctx := context.Background()
	log := logger.NewNopLogger()

	catalogUC := usecase.NewCatalogUC(ctx, newCatalogStore(repo), EventBus.New(), log)
	store := newCartStore(repo)
	uc := usecase.NewCartUC(ctx, store, catalogUC, newTestGateway(), EventBus.New(), log)

	return uc, store
}

func TestCartStartsEmpty(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	assert.Empty(t, uc.Items(ctx))
	assert.Zero(t, uc.Total(ctx))
}

func TestAddIncrementsQuantity(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Add(ctx, "1"))
	require.NoError(t, uc.Add(ctx, "1"))

	items := uc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, int64(150000), uc.Total(ctx))
}

func TestAddUnknownProduct(t *testing.T) {
	uc, _ := newCartUC(t)

	err := uc.Add(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestSetQuantity(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Add(ctx, "1"))
	require.NoError(t, uc.Add(ctx, "3"))

	// точное значение, не дельта
	require.NoError(t, uc.SetQuantity(ctx, "1", 5))
	items := uc.Items(ctx)
	assert.Equal(t, int64(5), items[0].Quantity)
	assert.Equal(t, int64(5*75000+4000), uc.Total(ctx))

	// ноль удаляет позицию
	require.NoError(t, uc.SetQuantity(ctx, "1", 0))
	items = uc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "3", items[0].ID)

	// отсутствующий товар — no-op
	require.NoError(t, uc.SetQuantity(ctx, "no-such-id", 3))
	assert.Len(t, uc.Items(ctx), 1)
}

func TestRemove(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Add(ctx, "1"))
	require.NoError(t, uc.Remove(ctx, "1"))
	require.NoError(t, uc.Remove(ctx, "1"))

	assert.Empty(t, uc.Items(ctx))
}

func TestCheckoutClearsCart(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Add(ctx, "1"))
	require.NoError(t, uc.Add(ctx, "1"))

	res, err := uc.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), res.Total)
	assert.True(t, strings.HasPrefix(res.URL, "https://wa.me/51985116690?text="))

	u, err := url.Parse(res.URL)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Hola BotStore")
	assert.Contains(t, text, "- Kit de Robot Avanzado (Cantidad: 2) - S/. 1500.00")
	assert.Contains(t, text, "Total del pedido: S/. 1500.00")

	assert.Empty(t, uc.Items(ctx))
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc, _ := newCartUC(t)

	_, err := uc.Checkout(context.Background())
	assert.ErrorIs(t, err, e.ErrCartEmpty)
}

func TestCartPersistsAcrossRestart(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	log := logger.NewNopLogger()

	catalogUC := usecase.NewCatalogUC(ctx, newCatalogStore(repo), EventBus.New(), log)
	store := newCartStore(repo)

	uc := usecase.NewCartUC(ctx, store, catalogUC, newTestGateway(), EventBus.New(), log)
	require.NoError(t, uc.Add(ctx, "1"))
	require.NoError(t, uc.Add(ctx, "3"))

	restarted := usecase.NewCartUC(ctx, store, catalogUC, newTestGateway(), EventBus.New(), log)
	items := restarted.Items(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
}
