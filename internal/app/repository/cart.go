package repository

import (
	"campomarket/internal/app/ds"

	"github.com/shopspring/decimal"
)

// Методы для работы с корзиной

// CartItem — строка корзины, соединенная с данными товара
type CartItem struct {
	ProductID uint       `json:"productId"`
	Quantity  int        `json:"quantity"`
	Product   ds.Product `json:"product"`
}

// AddToCart добавляет товар в корзину: существующая строка увеличивается
// на qty, иначе появляется новая строка
func (r *Repository) AddToCart(productID uint, qty int) error {
	if qty <= 0 {
		qty = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.cart {
		if r.cart[i].ProductID == productID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		r.cart[idx].Quantity += qty
		if err := r.persistCart(); err != nil {
			r.cart[idx].Quantity -= qty
			return err
		}
		return nil
	}

	r.cart = append(r.cart, ds.CartLine{ProductID: productID, Quantity: qty})
	if err := r.persistCart(); err != nil {
		r.cart = r.cart[:len(r.cart)-1]
		return err
	}
	return nil
}

// UpdateCartLine устанавливает количество точно. Границы (>=1, <= склада)
// проверяет вызывающая сторона. Отсутствие строки — no-op.
func (r *Repository) UpdateCartLine(productID uint, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cart {
		if r.cart[i].ProductID == productID {
			prev := r.cart[i].Quantity
			r.cart[i].Quantity = qty
			if err := r.persistCart(); err != nil {
				r.cart[i].Quantity = prev
				return err
			}
			return nil
		}
	}
	return nil
}

func (r *Repository) RemoveFromCart(productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.cart
	next := []ds.CartLine{}
	for _, line := range r.cart {
		if line.ProductID != productID {
			next = append(next, line)
		}
	}
	r.cart = next

	if err := r.persistCart(); err != nil {
		r.cart = prev
		return err
	}
	return nil
}

// GetCartView соединяет строки корзины с товарами. Строки, чей товар уже
// удален, молча исключаются из результата (сама корзина не чинится).
func (r *Repository) GetCartView() []CartItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cartView()
}

func (r *Repository) cartView() []CartItem {
	items := []CartItem{}
	for _, line := range r.cart {
		product, err := r.getProduct(line.ProductID)
		if err != nil {
			continue // товар удален — строка не показывается
		}
		items = append(items, CartItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Product:   *product,
		})
	}
	return items
}

// CartTotal — сумма price*quantity по видимым строкам корзины
func (r *Repository) CartTotal() decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cartTotal(r.cartView())
}

func cartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (r *Repository) ClearCart() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.cart
	r.cart = []ds.CartLine{}
	if err := r.persistCart(); err != nil {
		r.cart = prev
		return err
	}
	return nil
}
