package repository

import (
	"strings"

	"campomarket/internal/app/ds"

	"github.com/shopspring/decimal"
)

// Методы для работы с каталогом

// AddProduct создает товар и проставляет владельца-производителя
func (r *Repository) AddProduct(name, description string, price decimal.Decimal, category ds.Category, stock int, image string, ownerID uint) (*ds.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product := ds.Product{
		ID:          r.nextProductID(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Stock:       stock,
		ProducerID:  ownerID,
		Image:       image,
	}

	r.products = append(r.products, product)
	if err := r.persistProducts(); err != nil {
		r.products = r.products[:len(r.products)-1]
		return nil, err
	}

	return &product, nil
}

// ListProducts возвращает все товары в порядке добавления
func (r *Repository) ListProducts() []ds.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ds.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *Repository) ListProductsByProducer(ownerID uint) []ds.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []ds.Product{}
	for _, p := range r.products {
		if p.ProducerID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

// SearchProductsByName — поиск подстроки без учета регистра
func (r *Repository) SearchProductsByName(query string) []ds.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := []ds.Product{}
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Repository) GetProduct(id uint) (*ds.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.getProduct(id)
}

// getProduct — вариант без блокировки для внутренних join'ов
func (r *Repository) getProduct(id uint) (*ds.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateProduct обновляет переданные поля товара (nil — поле не трогаем)
func (r *Repository) UpdateProduct(id uint, name, description *string, price *decimal.Decimal, category *ds.Category, stock *int) (*ds.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.products {
		if r.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	prev := r.products[idx]
	if name != nil {
		r.products[idx].Name = *name
	}
	if description != nil {
		r.products[idx].Description = *description
	}
	if price != nil {
		r.products[idx].Price = *price
	}
	if category != nil {
		r.products[idx].Category = *category
	}
	if stock != nil {
		r.products[idx].Stock = *stock
	}

	if err := r.persistProducts(); err != nil {
		r.products[idx] = prev
		return nil, err
	}

	p := r.products[idx]
	return &p, nil
}

// UpdateProductImage заменяет картинку товара (имя объекта в MinIO)
func (r *Repository) UpdateProductImage(id uint, image string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			prev := r.products[i].Image
			r.products[i].Image = image
			if err := r.persistProducts(); err != nil {
				r.products[i].Image = prev
				return err
			}
			return nil
		}
	}
	return ErrNotFound
}

// DeleteProduct удаляет запись окончательно. Исторические заказы могут
// ссылаться на удаленный id — такие ссылки отбрасываются при чтении.
func (r *Repository) DeleteProduct(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.products {
		if r.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	prev := r.products
	next := make([]ds.Product, 0, len(r.products)-1)
	next = append(next, r.products[:idx]...)
	next = append(next, r.products[idx+1:]...)
	r.products = next

	if err := r.persistProducts(); err != nil {
		r.products = prev
		return err
	}
	return nil
}

func (r *Repository) nextProductID() uint {
	var max uint
	for _, p := range r.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
