package e

import "fmt"

var (
	// Внутренние ошибки хранилища
	ErrSlotNotFound        = fmt.Errorf("slot not found")
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrProductNameRequired        = fmt.Errorf("product name is required")
	ErrProductDescriptionRequired = fmt.Errorf("product description is required")
	ErrPriceMustBePositive        = fmt.Errorf("price must be positive")
	ErrPricePrecision             = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidPrice               = fmt.Errorf("invalid price")
	ErrCategoryRequired           = fmt.Errorf("category is required")
	ErrProductTypeRequired        = fmt.Errorf("product type is required")
	ErrNameRequired               = fmt.Errorf("name is required")
	ErrUnknownCategory            = fmt.Errorf("unknown category")
	ErrUnknownProductType         = fmt.Errorf("unknown product type")
	ErrInvalidQuantity            = fmt.Errorf("invalid quantity")
	ErrInvalidViewMode            = fmt.Errorf("invalid view mode")
	ErrInvalidAdminSection        = fmt.Errorf("invalid admin section")
	ErrInvalidTheme               = fmt.Errorf("invalid theme")
	ErrStatusBadRequest           = fmt.Errorf("bad request")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNotAuthenticated   = fmt.Errorf("not authenticated")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 409 Conflict
	ErrNameAlreadyExists = fmt.Errorf("name already exists")
	ErrCartEmpty         = fmt.Errorf("cart is empty")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
