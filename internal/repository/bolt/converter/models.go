package converter

// ProductModel — JSON-представление товара в слоте products.
type ProductModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Type        string `json:"type"`
}

// CartItemModel — JSON-представление позиции корзины в слоте cart.
// Поля товара инлайнятся рядом с quantity, как в исходном формате.
type CartItemModel struct {
	ProductModel
	Quantity int64 `json:"quantity"`
}
