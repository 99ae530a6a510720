package ds

import "github.com/shopspring/decimal"

// Category — закрытый перечень категорий товара
type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryGrains     Category = "grains"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryOther      Category = "other"
)

// IsValid проверяет, что категория входит в перечень
func (c Category) IsValid() bool {
	switch c {
	case CategoryVegetables, CategoryFruits, CategoryGrains, CategoryDairy, CategoryMeat, CategoryOther:
		return true
	}
	return false
}

// DefaultImage возвращает эмодзи для товаров без собственной картинки
func (c Category) DefaultImage() string {
	switch c {
	case CategoryVegetables:
		return "🥦"
	case CategoryFruits:
		return "🍎"
	case CategoryGrains:
		return "🌾"
	case CategoryDairy:
		return "🥛"
	case CategoryMeat:
		return "🍖"
	default:
		return "🌱"
	}
}

// 2. Товары каталога
type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"` // цена за единицу, неотрицательная
	Category    Category        `json:"category"`
	Stock       int             `json:"stock"`
	ProducerID  uint            `json:"producerId"` // 0 — сентинел для товаров из сид-набора
	Image       string          `json:"image"`      // эмодзи либо имя объекта в MinIO
}
