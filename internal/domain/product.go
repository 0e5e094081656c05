package domain

// Product описывает товар каталога
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64 // Цена хранится в сентимо (S/. * 100)
	Category    string
	ImageURL    string // внешний URL или data URI
	Type        string
}

func NewProduct(id, name, description string, price int64, category, imageURL, productType string) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
		Type:        productType,
	}
}
