package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrProductDescriptionRequired):
		return http.StatusBadRequest, e.ErrProductDescriptionRequired.Error()
	case errors.Is(err, e.ErrPriceMustBePositive):
		return http.StatusBadRequest, e.ErrPriceMustBePositive.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrCategoryRequired):
		return http.StatusBadRequest, e.ErrCategoryRequired.Error()
	case errors.Is(err, e.ErrProductTypeRequired):
		return http.StatusBadRequest, e.ErrProductTypeRequired.Error()
	case errors.Is(err, e.ErrNameRequired):
		return http.StatusBadRequest, e.ErrNameRequired.Error()
	case errors.Is(err, e.ErrUnknownCategory):
		return http.StatusBadRequest, e.ErrUnknownCategory.Error()
	case errors.Is(err, e.ErrUnknownProductType):
		return http.StatusBadRequest, e.ErrUnknownProductType.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidViewMode):
		return http.StatusBadRequest, e.ErrInvalidViewMode.Error()
	case errors.Is(err, e.ErrInvalidAdminSection):
		return http.StatusBadRequest, e.ErrInvalidAdminSection.Error()
	case errors.Is(err, e.ErrInvalidTheme):
		return http.StatusBadRequest, e.ErrInvalidTheme.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrNotAuthenticated):
		return http.StatusUnauthorized, e.ErrNotAuthenticated.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrNameAlreadyExists):
		return http.StatusConflict, e.ErrNameAlreadyExists.Error()
	case errors.Is(err, e.ErrCartEmpty):
		return http.StatusConflict, e.ErrCartEmpty.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeBody(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return e.ErrStatusBadRequest
	}
	return nil
}

// priceToCents конвертирует цену вида 750 или 750.50 в сентимо (int64).
// Возвращает ошибку, если:
// - цена не положительная
// - больше двух знаков после запятой
// - превышен разумный предел (10^9 солей)
func priceToCents(d decimal.Decimal) (int64, error) {
	if d.LessThanOrEqual(decimal.Zero) {
		return 0, e.ErrPriceMustBePositive
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
