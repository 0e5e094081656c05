package http

import (
	"net/http"

	_ "github.com/DRSN-tech/botstore-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/botstore-backend/internal/usecase"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, sessionUC usecase.SessionUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		admin := RequireAdmin(sessionUC, r.logger)

		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler, admin)

		cartHandler := NewCartHandler(cartUC, r.logger)
		registerCartRoutes(v1, cartHandler)

		sessionHandler := NewSessionHandler(sessionUC, r.logger)
		registerSessionRoutes(v1, sessionHandler)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler, admin func(http.Handler) http.Handler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.With(admin).Post("/", h.upsertProduct)
	})

	router.Route("/categories", func(ct chi.Router) {
		ct.Get("/", h.listCategories)
		ct.With(admin).Post("/", h.addCategory)
		ct.With(admin).Put("/{name}", h.renameCategory)
	})

	router.Route("/product-types", func(pt chi.Router) {
		pt.Get("/", h.listProductTypes)
		pt.With(admin).Post("/", h.addProductType)
		pt.With(admin).Put("/{name}", h.renameProductType)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", h.getCart)
		cr.Post("/", h.addItem)
		cr.Post("/checkout", h.checkout)
		cr.Put("/{productID}", h.setQuantity)
		cr.Delete("/{productID}", h.removeItem)
	})
}

func registerSessionRoutes(router chi.Router, h *SessionHandler) {
	router.Route("/session", func(ss chi.Router) {
		ss.Get("/", h.getSession)
		ss.Post("/login", h.login)
		ss.Post("/logout", h.logout)
		ss.Put("/view", h.setViewMode)
		ss.Put("/section", h.setAdminSection)
		ss.Put("/theme", h.setTheme)
	})
}
