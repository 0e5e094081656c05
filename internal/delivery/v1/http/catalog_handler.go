package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/botstore-backend/internal/usecase"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler обслуживает витрину и админские мутации каталога.
type CatalogHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewCatalogHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// listProducts godoc
// @Summary Список товаров
// @Description Возвращает товары витрины с фильтром по категории и поисковой строке
// @Tags catalog
// @Produce json
// @Param category query string false "Категория (all — без фильтра)"
// @Param search query string false "Подстрока по имени и описанию"
// @Success 200 {array} ProductResponse
// @Router /products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req := usecase.NewFilterProductsReq(
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"),
	)

	products := h.catalogUC.Filter(r.Context(), req)

	WriteSuccess(w, http.StatusOK, NewProductsResponse(products))
}

// upsertProduct godoc
// @Summary Создание или обновление товара
// @Description Пустой id — создание, иначе замена существующего товара
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body UpsertProductRequest true "Товар"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products [post]
func (h *CatalogHandler) upsertProduct(w http.ResponseWriter, r *http.Request) {
	var body UpsertProductRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		WriteError(w, e.ErrProductNameRequired)
		return
	}

	description := strings.TrimSpace(body.Description)
	if description == "" {
		WriteError(w, e.ErrProductDescriptionRequired)
		return
	}

	cents, err := priceToCents(body.Price)
	if err != nil {
		WriteError(w, err)
		return
	}

	category := strings.TrimSpace(body.Category)
	if category == "" {
		WriteError(w, e.ErrCategoryRequired)
		return
	}
	if !h.catalogUC.Categories(r.Context()).Contains(category) {
		WriteError(w, e.ErrUnknownCategory)
		return
	}

	productType := strings.TrimSpace(body.Type)
	if productType == "" {
		WriteError(w, e.ErrProductTypeRequired)
		return
	}
	if !h.catalogUC.ProductTypes(r.Context()).Contains(productType) {
		WriteError(w, e.ErrUnknownProductType)
		return
	}

	req := usecase.NewUpsertProductReq(
		strings.TrimSpace(body.ID),
		name,
		description,
		cents,
		category,
		strings.TrimSpace(body.ImageURL),
		productType,
	)

	product, err := h.catalogUC.UpsertProduct(r.Context(), req)
	if err != nil {
		h.logger.Errorf(err, "failed to upsert product")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// listCategories godoc
// @Summary Список категорий
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, h.catalogUC.Categories(r.Context()))
}

// addCategory godoc
// @Summary Добавление категории
// @Tags catalog
// @Accept json
// @Produce json
// @Param category body NameRequest true "Имя категории"
// @Success 201 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /categories [post]
func (h *CatalogHandler) addCategory(w http.ResponseWriter, r *http.Request) {
	var body NameRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		WriteError(w, e.ErrNameRequired)
		return
	}
	if h.catalogUC.Categories(r.Context()).Contains(name) {
		WriteError(w, e.ErrNameAlreadyExists)
		return
	}

	if err := h.catalogUC.AddCategory(r.Context(), name); err != nil {
		h.logger.Errorf(err, "failed to add category")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, h.catalogUC.Categories(r.Context()))
}

// renameCategory godoc
// @Summary Переименование категории
// @Description Товары переименованной категории переводятся на новое имя
// @Tags catalog
// @Accept json
// @Produce json
// @Param name path string true "Текущее имя"
// @Param category body RenameRequest true "Новое имя"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /categories/{name} [put]
func (h *CatalogHandler) renameCategory(w http.ResponseWriter, r *http.Request) {
	oldName := chi.URLParam(r, "name")

	var body RenameRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	newName := strings.TrimSpace(body.NewName)
	if newName == "" {
		WriteError(w, e.ErrNameRequired)
		return
	}
	if newName != oldName && h.catalogUC.Categories(r.Context()).Contains(newName) {
		WriteError(w, e.ErrNameAlreadyExists)
		return
	}

	if err := h.catalogUC.RenameCategory(r.Context(), oldName, newName); err != nil {
		h.logger.Errorf(err, "failed to rename category")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, h.catalogUC.Categories(r.Context()))
}

// listProductTypes godoc
// @Summary Список типов товаров
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /product-types [get]
func (h *CatalogHandler) listProductTypes(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, h.catalogUC.ProductTypes(r.Context()))
}

// addProductType godoc
// @Summary Добавление типа товара
// @Tags catalog
// @Accept json
// @Produce json
// @Param productType body NameRequest true "Имя типа"
// @Success 201 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /product-types [post]
func (h *CatalogHandler) addProductType(w http.ResponseWriter, r *http.Request) {
	var body NameRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		WriteError(w, e.ErrNameRequired)
		return
	}
	if h.catalogUC.ProductTypes(r.Context()).Contains(name) {
		WriteError(w, e.ErrNameAlreadyExists)
		return
	}

	if err := h.catalogUC.AddProductType(r.Context(), name); err != nil {
		h.logger.Errorf(err, "failed to add product type")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, h.catalogUC.ProductTypes(r.Context()))
}

// renameProductType godoc
// @Summary Переименование типа товара
// @Description Товары переименованного типа переводятся на новое имя
// @Tags catalog
// @Accept json
// @Produce json
// @Param name path string true "Текущее имя"
// @Param productType body RenameRequest true "Новое имя"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /product-types/{name} [put]
func (h *CatalogHandler) renameProductType(w http.ResponseWriter, r *http.Request) {
	oldName := chi.URLParam(r, "name")

	var body RenameRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	newName := strings.TrimSpace(body.NewName)
	if newName == "" {
		WriteError(w, e.ErrNameRequired)
		return
	}
	if newName != oldName && h.catalogUC.ProductTypes(r.Context()).Contains(newName) {
		WriteError(w, e.ErrNameAlreadyExists)
		return
	}

	if err := h.catalogUC.RenameProductType(r.Context(), oldName, newName); err != nil {
		h.logger.Errorf(err, "failed to rename product type")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, h.catalogUC.ProductTypes(r.Context()))
}
