package http

import (
	"github.com/DRSN-tech/botstore-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// JSON-формы запросов и ответов API. Ключи товара повторяют формат слотов
// (и исходного приложения): id, name, description, price, category,
// imageUrl, type; цена — в сентимо.

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Type        string `json:"type"`
}

type CartItemResponse struct {
	ProductResponse
	Quantity int64 `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	Total       int64  `json:"total"`
}

type SessionResponse struct {
	ViewMode      string `json:"view_mode"`
	AdminSection  string `json:"admin_section"`
	Authenticated bool   `json:"authenticated"`
	Theme         string `json:"theme"`
}

// UpsertProductRequest принимает цену десятичным числом или строкой
// ("750.50"); в сентимо её переводит граница.
type UpsertProductRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Type        string          `json:"type"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type RenameRequest struct {
	NewName string `json:"new_name"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
}

type QuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ViewModeRequest struct {
	Mode string `json:"mode"`
}

type AdminSectionRequest struct {
	Section string `json:"section"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Type:        p.Type,
	}
}

func NewProductsResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}

func NewCartResponse(items []domain.CartItem, total int64) *CartResponse {
	res := &CartResponse{
		Items: make([]CartItemResponse, 0, len(items)),
		Total: total,
	}
	for i := range items {
		res.Items = append(res.Items, CartItemResponse{
			ProductResponse: NewProductResponse(&items[i].Product),
			Quantity:        items[i].Quantity,
		})
	}
	return res
}
