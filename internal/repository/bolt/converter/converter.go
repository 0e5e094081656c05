package converter

import "github.com/DRSN-tech/botstore-backend/internal/domain"

// ProductConverter преобразует сущности Product между domain и моделью слота.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrModel(entities []domain.Product) []ProductModel
	ToArrEntity(models []ProductModel) []domain.Product
}

// CartConverter преобразует сущности CartItem между domain и моделью слота.
type CartConverter interface {
	ToModel(entity *domain.CartItem) *CartItemModel
	ToEntity(model *CartItemModel) *domain.CartItem
	ToArrModel(entities []domain.CartItem) []CartItemModel
	ToArrEntity(models []CartItemModel) []domain.CartItem
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Price:       entity.Price,
		Category:    entity.Category,
		ImageURL:    entity.ImageURL,
		Type:        entity.Type,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Category:    model.Category,
		ImageURL:    model.ImageURL,
		Type:        model.Type,
	}
}

func (c *ProductConverterImpl) ToArrModel(entities []domain.Product) []ProductModel {
	models := make([]ProductModel, 0, len(entities))
	for i := range entities {
		models = append(models, *c.ToModel(&entities[i]))
	}
	return models
}

func (c *ProductConverterImpl) ToArrEntity(models []ProductModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}
	return entities
}

type CartConverterImpl struct {
	products ProductConverter
}

func NewCartConverterImpl(products ProductConverter) *CartConverterImpl {
	return &CartConverterImpl{products: products}
}

func (c *CartConverterImpl) ToModel(entity *domain.CartItem) *CartItemModel {
	return &CartItemModel{
		ProductModel: *c.products.ToModel(&entity.Product),
		Quantity:     entity.Quantity,
	}
}

func (c *CartConverterImpl) ToEntity(model *CartItemModel) *domain.CartItem {
	return &domain.CartItem{
		Product:  *c.products.ToEntity(&model.ProductModel),
		Quantity: model.Quantity,
	}
}

func (c *CartConverterImpl) ToArrModel(entities []domain.CartItem) []CartItemModel {
	models := make([]CartItemModel, 0, len(entities))
	for i := range entities {
		models = append(models, *c.ToModel(&entities[i]))
	}
	return models
}

func (c *CartConverterImpl) ToArrEntity(models []CartItemModel) []domain.CartItem {
	entities := make([]domain.CartItem, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}
	return entities
}
