package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	config "github.com/DRSN-tech/botstore-backend/internal/cfg"
	"github.com/DRSN-tech/botstore-backend/internal/infrastructure/auth"
	"github.com/DRSN-tech/botstore-backend/internal/infrastructure/whatsapp"
	bolt "github.com/DRSN-tech/botstore-backend/internal/repository/bolt"
	"github.com/DRSN-tech/botstore-backend/internal/repository/bolt/converter"
	"github.com/DRSN-tech/botstore-backend/internal/usecase"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/asaskevich/EventBus"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) *chi.Mux {
	t.Helper()

	repo, err := bolt.Open(&config.StoreCfg{
		Path:        filepath.Join(t.TempDir(), "botstore.db"),
		FileMode:    0o600,
		OpenTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	ctx := context.Background()
	log := logger.NewNopLogger()
	bus := EventBus.New()

	prConv := converter.NewProductConverterImpl()
	catalogUC := usecase.NewCatalogUC(ctx, bolt.NewCatalogStore(repo, prConv), bus, log)
	cartUC := usecase.NewCartUC(ctx,
		bolt.NewCartStore(repo, converter.NewCartConverterImpl(prConv)),
		catalogUC,
		whatsapp.NewGateway(&config.CheckoutCfg{PhoneNumber: "+51985116690", BaseURL: "https://wa.me"}),
		bus, log)
	sessionUC := usecase.NewSessionUC(ctx,
		bolt.NewSessionStore(repo),
		auth.NewStaticVerifier(&config.AdminCfg{Username: "admin", Password: "123456"}),
		bus, log)

	mux := chi.NewRouter()
	NewRouter(mux, log).Init(catalogUC, cartUC, sessionUC)

	return mux
}

func doRequest(t *testing.T, mux *chi.Mux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func login(t *testing.T, mux *chi.Mux) {
	t.Helper()

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/session/login",
		LoginRequest{Username: "admin", Password: "123456"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestListProducts(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []ProductResponse
	decodeJSON(t, rec, &products)
	assert.Len(t, products, 8)

	rec = doRequest(t, mux, http.MethodGet, "/api/v1/products?category=Sensores&search=línea", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	decodeJSON(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "8", products[0].ID)
}

func TestUpsertProductRequiresAuth(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/products", UpsertProductRequest{Name: "X"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpsertProductValidation(t *testing.T) {
	mux := newTestMux(t)
	login(t, mux)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"empty name", map[string]interface{}{
			"name": "  ", "description": "d", "price": 10, "category": "Sensores", "type": "Pieza"}},
		{"empty description", map[string]interface{}{
			"name": "X", "description": "", "price": 10, "category": "Sensores", "type": "Pieza"}},
		{"zero price", map[string]interface{}{
			"name": "X", "description": "d", "price": 0, "category": "Sensores", "type": "Pieza"}},
		{"negative price", map[string]interface{}{
			"name": "X", "description": "d", "price": -5, "category": "Sensores", "type": "Pieza"}},
		{"too many decimals", map[string]interface{}{
			"name": "X", "description": "d", "price": 10.999, "category": "Sensores", "type": "Pieza"}},
		{"empty category", map[string]interface{}{
			"name": "X", "description": "d", "price": 10, "category": "", "type": "Pieza"}},
		{"unknown category", map[string]interface{}{
			"name": "X", "description": "d", "price": 10, "category": "Drones", "type": "Pieza"}},
		{"unknown type", map[string]interface{}{
			"name": "X", "description": "d", "price": 10, "category": "Sensores", "type": "Módulo"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, mux, http.MethodPost, "/api/v1/products", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpsertProductCreate(t *testing.T) {
	mux := newTestMux(t)
	login(t, mux)

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"name":        "Brazo Robótico",
		"description": "Brazo de 4 ejes",
		"price":       250.50,
		"category":    "Kits de Robótica",
		"type":        "Kit",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created ProductResponse
	decodeJSON(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(25050), created.Price)

	rec = doRequest(t, mux, http.MethodGet, "/api/v1/products", nil)
	var products []ProductResponse
	decodeJSON(t, rec, &products)
	require.Len(t, products, 9)
	assert.Equal(t, created.ID, products[0].ID) // новый товар первым
}

func TestUpsertProductUnknownID(t *testing.T) {
	mux := newTestMux(t)
	login(t, mux)

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"id":          "no-such-id",
		"name":        "X",
		"description": "d",
		"price":       10,
		"category":    "Sensores",
		"type":        "Pieza",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	decodeJSON(t, rec, &names)
	assert.Len(t, names, 6)

	// мутации закрыты для неаутентифицированной сессии
	rec = doRequest(t, mux, http.MethodPost, "/api/v1/categories", NameRequest{Name: "Drones"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	login(t, mux)

	rec = doRequest(t, mux, http.MethodPost, "/api/v1/categories", NameRequest{Name: "  Sensores "})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, mux, http.MethodPost, "/api/v1/categories", NameRequest{Name: "Drones"})
	require.Equal(t, http.StatusCreated, rec.Code)
	decodeJSON(t, rec, &names)
	assert.Equal(t, "Drones", names[len(names)-1])

	rec = doRequest(t, mux, http.MethodPut, "/api/v1/categories/Sensores", RenameRequest{NewName: "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, mux, http.MethodPut, "/api/v1/categories/Sensores", RenameRequest{NewName: "Drones"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, mux, http.MethodPut, "/api/v1/categories/Sensores", RenameRequest{NewName: "Sensores Avanzados"})
	require.Equal(t, http.StatusOK, rec.Code)

	// каскад по товарам
	rec = doRequest(t, mux, http.MethodGet, "/api/v1/products?category=Sensores+Avanzados", nil)
	var products []ProductResponse
	decodeJSON(t, rec, &products)
	assert.Len(t, products, 2)
}

func TestProductTypeEndpoints(t *testing.T) {
	mux := newTestMux(t)
	login(t, mux)

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/product-types", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	decodeJSON(t, rec, &names)
	assert.Equal(t, []string{"Kit", "Pieza"}, names)

	rec = doRequest(t, mux, http.MethodPost, "/api/v1/product-types", NameRequest{Name: "Kit"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, mux, http.MethodPut, "/api/v1/product-types/Pieza", RenameRequest{NewName: "Componente"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &names)
	assert.Equal(t, []string{"Kit", "Componente"}, names)
}

func TestCartEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/cart/checkout", nil)
	assert.Equal(t, http.StatusConflict, rec.Code) // пустая корзина

	rec = doRequest(t, mux, http.MethodPost, "/api/v1/cart", AddCartItemRequest{ProductID: "no-such-id"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	doRequest(t, mux, http.MethodPost, "/api/v1/cart", AddCartItemRequest{ProductID: "1"})
	rec = doRequest(t, mux, http.MethodPost, "/api/v1/cart", AddCartItemRequest{ProductID: "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var cart CartResponse
	decodeJSON(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
	assert.Equal(t, int64(150000), cart.Total)

	rec = doRequest(t, mux, http.MethodPut, "/api/v1/cart/1", QuantityRequest{Quantity: 3})
	decodeJSON(t, rec, &cart)
	assert.Equal(t, int64(225000), cart.Total)

	rec = doRequest(t, mux, http.MethodPost, "/api/v1/cart/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var checkout CheckoutResponse
	decodeJSON(t, rec, &checkout)
	assert.Equal(t, int64(225000), checkout.Total)
	assert.Contains(t, checkout.CheckoutURL, "https://wa.me/51985116690?text=")

	rec = doRequest(t, mux, http.MethodGet, "/api/v1/cart", nil)
	decodeJSON(t, rec, &cart)
	assert.Empty(t, cart.Items)
}

func TestCartRemove(t *testing.T) {
	mux := newTestMux(t)

	doRequest(t, mux, http.MethodPost, "/api/v1/cart", AddCartItemRequest{ProductID: "1"})
	rec := doRequest(t, mux, http.MethodDelete, "/api/v1/cart/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart CartResponse
	decodeJSON(t, rec, &cart)
	assert.Empty(t, cart.Items)
}

func TestSessionEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var session SessionResponse
	decodeJSON(t, rec, &session)
	assert.Equal(t, "store", session.ViewMode)
	assert.False(t, session.Authenticated)
	assert.Equal(t, "light", session.Theme)

	rec = doRequest(t, mux, http.MethodPost, "/api/v1/session/login",
		LoginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, mux, http.MethodPut, "/api/v1/session/view", ViewModeRequest{Mode: "admin"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login(t, mux)

	rec = doRequest(t, mux, http.MethodPut, "/api/v1/session/section", AdminSectionRequest{Section: "categories"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &session)
	assert.Equal(t, "categories", session.AdminSection)

	rec = doRequest(t, mux, http.MethodPut, "/api/v1/session/theme", ThemeRequest{Theme: "sepia"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, mux, http.MethodPut, "/api/v1/session/theme", ThemeRequest{Theme: "dark"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &session)
	assert.Equal(t, "dark", session.Theme)

	rec = doRequest(t, mux, http.MethodPost, "/api/v1/session/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &session)
	assert.False(t, session.Authenticated)
	assert.Equal(t, "store", session.ViewMode)
}
