package usecase

import "github.com/DRSN-tech/botstore-backend/internal/domain"

// CredentialVerifier — подключаемая проверка учётных данных администратора.
// Единственная реализация сравнивает строки из конфигурации; это заглушка,
// не претендующая на настоящую аутентификацию.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// CheckoutGateway строит внешнюю ссылку-передачу заказа (deep link в чат).
// Это граница с побочным эффектом, а не сетевая транзакция: ни подтверждения,
// ни записи заказа не существует.
type CheckoutGateway interface {
	OrderLink(items []domain.CartItem, total int64) (string, error)
}
