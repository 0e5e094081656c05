package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DRSN-tech/botstore-backend/internal/cfg"
	"github.com/DRSN-tech/botstore-backend/internal/domain"
	bolt "github.com/DRSN-tech/botstore-backend/internal/repository/bolt"
	"github.com/DRSN-tech/botstore-backend/internal/repository/bolt/converter"
	"github.com/DRSN-tech/botstore-backend/internal/usecase"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *bolt.SlotRepo {
	t.Helper()

	repo, err := bolt.Open(&cfg.StoreCfg{
		Path:        filepath.Join(t.TempDir(), "botstore.db"),
		FileMode:    0o600,
		OpenTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func newCatalogStore(repo *bolt.SlotRepo) *bolt.CatalogStore {
	return bolt.NewCatalogStore(repo, converter.NewProductConverterImpl())
}

func newCatalogUC(t *testing.T) (*usecase.CatalogUseCase, *bolt.CatalogStore) {
	t.Helper()

	store := newCatalogStore(openTestRepo(t))
	uc := usecase.NewCatalogUC(context.Background(), store, EventBus.New(), logger.NewNopLogger())

	return uc, store
}

func TestCatalogSeedsOnFirstRun(t *testing.T) {
	uc, _ := newCatalogUC(t)
	ctx := context.Background()

	products := uc.Products(ctx)
	require.Len(t, products, 8)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, int64(75000), products[0].Price)

	assert.Equal(t, domain.SeedCategories(), uc.Categories(ctx))
	assert.Equal(t, domain.SeedProductTypes(), uc.ProductTypes(ctx))
}

func TestProductByID(t *testing.T) {
	uc, _ := newCatalogUC(t)
	ctx := context.Background()

	product, err := uc.ProductByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Sensor Ultrasónico de Distancia", product.Name)

	_, err = uc.ProductByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestFilterByCategory(t *testing.T) {
	uc, _ := newCatalogUC(t)
	ctx := context.Background()

	products := uc.Filter(ctx, usecase.NewFilterProductsReq("Sensores", ""))
	require.Len(t, products, 2)
	assert.Equal(t, "3", products[0].ID)
	assert.Equal(t, "8", products[1].ID)

	assert.Len(t, uc.Filter(ctx, usecase.NewFilterProductsReq("all", "")), 8)
	assert.Len(t, uc.Filter(ctx, usecase.NewFilterProductsReq("", "")), 8)
}

func TestFilterBySearch(t *testing.T) {
	uc, _ := newCatalogUC(t)
	ctx := context.Background()

	// подстрока без учёта регистра, по имени и описанию
	products := uc.Filter(ctx, usecase.NewFilterProductsReq("all", "PRINCIPIANTES"))
	require.Len(t, products, 1)
	assert.Equal(t, "7", products[0].ID)

	products = uc.Filter(ctx, usecase.NewFilterProductsReq("Kits de Robótica", "  principiantes "))
	require.Len(t, products, 1)
	assert.Equal(t, "7", products[0].ID)

	assert.Empty(t, uc.Filter(ctx, usecase.NewFilterProductsReq("Sensores", "principiantes")))
}

func TestUpsertProductCreatePrepends(t *testing.T) {
	uc, _ := newCatalogUC(t)
	ctx := context.Background()

	created, err := uc.UpsertProduct(ctx, usecase.NewUpsertProductReq(
		"", "Brazo Robótico", "Brazo de 4 ejes", 25000, "Kits de Robótica", "", "Kit",
	))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	products := uc.Products(ctx)
	require.Len(t, products, 9)
	assert.Equal(t, created.ID, products[0].ID)
	assert.Equal(t, "1", products[1].ID)
}

func TestUpsertProductUpdatesInPlace(t *testing.T) {
	uc, _ := newCatalogUC(t)
	ctx := context.Background()

	updated, err := uc.UpsertProduct(ctx, usecase.NewUpsertProductReq(
		"2", "Placa Microcontroladora MK2", "Versión revisada", 13500, "Controladores", "", "Pieza",
	))
	require.NoError(t, err)
	assert.Equal(t, "2", updated.ID)

	products := uc.Products(ctx)
	require.Len(t, products, 8)
	assert.Equal(t, "Placa Microcontroladora MK2", products[1].Name)
	assert.Equal(t, int64(13500), products[1].Price)
}

func TestUpsertProductUnknownID(t *testing.T) {
	uc, _ := newCatalogUC(t)

	_, err := uc.UpsertProduct(context.Background(), usecase.NewUpsertProductReq(
		"no-such-id", "X", "Y", 100, "Sensores", "", "Pieza",
	))
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestAddCategory(t *testing.T) {
	uc, _ := newCatalogUC(t)
	ctx := context.Background()

	require.NoError(t, uc.AddCategory(ctx, "  Impresión 3D  "))
	assert.True(t, uc.Categories(ctx).Contains("Impresión 3D"))

	// дубликат — молчаливый no-op
	before := len(uc.Categories(ctx))
	require.NoError(t, uc.AddCategory(ctx, "Sensores"))
	assert.Len(t, uc.Categories(ctx), before)

	require.NoError(t, uc.AddCategory(ctx, "   "))
	assert.Len(t, uc.Categories(ctx), before)
}

func TestRenameCategoryCascades(t *testing.T) {
	uc, store := newCatalogUC(t)
	ctx := context.Background()

	require.NoError(t, uc.RenameCategory(ctx, "Sensores", "Sensores Avanzados"))

	cats := uc.Categories(ctx)
	assert.False(t, cats.Contains("Sensores"))
	assert.Equal(t, "Sensores Avanzados", cats[2]) // позиция сохраняется

	for _, p := range uc.Products(ctx) {
		assert.NotEqual(t, "Sensores", p.Category)
	}
	assert.Len(t, uc.Filter(ctx, usecase.NewFilterProductsReq("Sensores Avanzados", "")), 2)

	// обе записи зафиксированы: свежая гидратация видит новое имя
	rehydrated := usecase.NewCatalogUC(ctx, store, EventBus.New(), logger.NewNopLogger())
	assert.True(t, rehydrated.Categories(ctx).Contains("Sensores Avanzados"))
	assert.Len(t, rehydrated.Filter(ctx, usecase.NewFilterProductsReq("Sensores Avanzados", "")), 2)
}

func TestRenameProductTypeCascades(t *testing.T) {
	uc, _ := newCatalogUC(t)
	ctx := context.Background()

	require.NoError(t, uc.RenameProductType(ctx, "Pieza", "Componente"))

	types := uc.ProductTypes(ctx)
	assert.Equal(t, domain.NameSet{"Kit", "Componente"}, types)

	for _, p := range uc.Products(ctx) {
		assert.NotEqual(t, "Pieza", p.Type)
	}
}

func TestCatalogPersistsAcrossRestart(t *testing.T) {
	repo := openTestRepo(t)
	store := newCatalogStore(repo)
	ctx := context.Background()

	uc := usecase.NewCatalogUC(ctx, store, EventBus.New(), logger.NewNopLogger())
	created, err := uc.UpsertProduct(ctx, usecase.NewUpsertProductReq(
		"", "Brazo Robótico", "Brazo de 4 ejes", 25000, "Kits de Robótica", "", "Kit",
	))
	require.NoError(t, err)

	restarted := usecase.NewCatalogUC(ctx, store, EventBus.New(), logger.NewNopLogger())
	products := restarted.Products(ctx)
	require.Len(t, products, 9)
	assert.Equal(t, created.ID, products[0].ID)
}
