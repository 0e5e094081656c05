package domain

// CartItem — позиция корзины: поля товара плюс количество.
// Уникальна по ID товара, количество всегда >= 1.
type CartItem struct {
	Product
	Quantity int64
}

func NewCartItem(product Product, quantity int64) *CartItem {
	return &CartItem{
		Product:  product,
		Quantity: quantity,
	}
}

// LineTotal возвращает стоимость позиции в сентимо
func (c *CartItem) LineTotal() int64 {
	return c.Price * c.Quantity
}
