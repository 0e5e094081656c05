package usecase

import "github.com/DRSN-tech/botstore-backend/internal/domain"

// CATALOG USECASE

// UpsertProductReq — запрос на создание или обновление товара.
// Пустой ID означает создание; валидация полей — обязанность границы (формы).
type UpsertProductReq struct {
	ID          string
	Name        string
	Description string
	Price       int64 // в сентимо
	Category    string
	ImageURL    string
	Type        string
}

// FilterProductsReq — параметры витрины: категория ("all" — без фильтра)
// и поисковая строка (подстрока без учёта регистра по имени и описанию).
type FilterProductsReq struct {
	Category string
	Search   string
}

// CART USECASE

// CheckoutRes — результат оформления: ссылка-передача заказа и итог в сентимо.
type CheckoutRes struct {
	URL   string
	Total int64
}

// SESSION USECASE

// SessionInfo — снимок состояния сессии для внешнего использования.
type SessionInfo struct {
	ViewMode      domain.ViewMode
	AdminSection  domain.AdminSection
	Authenticated bool
	Theme         domain.Theme
}

// MAPPERS

func NewUpsertProductReq(id, name, description string, price int64, category, imageURL, productType string) *UpsertProductReq {
	return &UpsertProductReq{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
		Type:        productType,
	}
}

func NewFilterProductsReq(category, search string) *FilterProductsReq {
	if category == "" {
		category = CategoryAll
	}

	return &FilterProductsReq{
		Category: category,
		Search:   search,
	}
}

func NewCheckoutRes(url string, total int64) *CheckoutRes {
	return &CheckoutRes{
		URL:   url,
		Total: total,
	}
}

func NewSessionInfo(session *domain.Session) *SessionInfo {
	return &SessionInfo{
		ViewMode:      session.ViewMode,
		AdminSection:  session.AdminSection,
		Authenticated: session.Authenticated,
		Theme:         session.Theme,
	}
}
