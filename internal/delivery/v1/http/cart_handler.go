package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/botstore-backend/internal/usecase"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// CartHandler обслуживает корзину и оформление заказа.
type CartHandler struct {
	cartUC usecase.CartUC
	logger logger.Logger
}

func NewCartHandler(cartUC usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{
		cartUC: cartUC,
		logger: logger,
	}
}

// getCart godoc
// @Summary Содержимое корзины
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	items := h.cartUC.Items(r.Context())
	total := h.cartUC.Total(r.Context())

	WriteSuccess(w, http.StatusOK, NewCartResponse(items, total))
}

// addItem godoc
// @Summary Добавление товара в корзину
// @Description Повторное добавление увеличивает количество на единицу
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddCartItemRequest true "Идентификатор товара"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var body AddCartItemRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	productID := strings.TrimSpace(body.ProductID)
	if productID == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := h.cartUC.Add(r.Context(), productID); err != nil {
		h.logger.Errorf(err, "failed to add product %s to cart", productID)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(h.cartUC.Items(r.Context()), h.cartUC.Total(r.Context())))
}

// setQuantity godoc
// @Summary Установка количества позиции
// @Description Количество меньше либо равное нулю удаляет позицию
// @Tags cart
// @Accept json
// @Produce json
// @Param productID path string true "Идентификатор товара"
// @Param quantity body QuantityRequest true "Новое количество"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/{productID} [put]
func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var body QuantityRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUC.SetQuantity(r.Context(), productID, body.Quantity); err != nil {
		h.logger.Errorf(err, "failed to set quantity for product %s", productID)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(h.cartUC.Items(r.Context()), h.cartUC.Total(r.Context())))
}

// removeItem godoc
// @Summary Удаление позиции из корзины
// @Tags cart
// @Produce json
// @Param productID path string true "Идентификатор товара"
// @Success 200 {object} CartResponse
// @Router /cart/{productID} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := h.cartUC.Remove(r.Context(), productID); err != nil {
		h.logger.Errorf(err, "failed to remove product %s from cart", productID)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(h.cartUC.Items(r.Context()), h.cartUC.Total(r.Context())))
}

// checkout godoc
// @Summary Оформление заказа
// @Description Возвращает ссылку WhatsApp со сводкой заказа и очищает корзину
// @Tags cart
// @Produce json
// @Success 200 {object} CheckoutResponse
// @Failure 409 {object} ErrorResponse
// @Router /cart/checkout [post]
func (h *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	res, err := h.cartUC.Checkout(r.Context())
	if err != nil {
		h.logger.Errorf(err, "failed to checkout cart")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CheckoutResponse{
		CheckoutURL: res.URL,
		Total:       res.Total,
	})
}
