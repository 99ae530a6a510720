package repository

import (
	"time"

	"campomarket/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// Методы для работы с заказами

// Checkout — единственная составная мутация: строит снимок корзины,
// добавляет заказ и очищает корзину. Для вызывающей стороны атомарна:
// либо заказ создан и корзина пуста, либо состояние не изменилось.
// Остатки на складе при оформлении не списываются.
func (r *Repository) Checkout(userID uint) (*ds.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := r.cartView()
	if len(view) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]ds.OrderItem, len(view))
	for i, item := range view {
		items[i] = ds.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   item.Product,
		}
	}

	order := ds.Order{
		ID:     r.nextOrderID(),
		UserID: userID,
		Items:  items,
		Total:  cartTotal(view),
		Date:   time.Now(),
		Status: ds.OrderStatusPending,
	}

	prevOrders := r.orders
	prevCart := r.cart
	r.orders = append(r.orders, order)
	r.cart = []ds.CartLine{}

	if err := r.persistOrders(); err != nil {
		r.orders = prevOrders
		r.cart = prevCart
		return nil, err
	}
	if err := r.persistCart(); err != nil {
		// Заказ уже записан — откатываем и его, чтобы не осталось
		// половины мутации
		r.orders = prevOrders
		r.cart = prevCart
		if rbErr := r.persistOrders(); rbErr != nil {
			logrus.Error("checkout rollback failed: ", rbErr)
		}
		return nil, err
	}

	return &order, nil
}

// OrdersForUser возвращает заказы пользователя в порядке создания
func (r *Repository) OrdersForUser(userID uint) []ds.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []ds.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// OrdersForProducer — заказы, в снимке которых есть хотя бы один товар,
// принадлежащий производителю сейчас. Владелец ищется по текущему
// состоянию каталога, а не по снимку на момент заказа.
func (r *Repository) OrdersForProducer(producerID uint) []ds.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []ds.Order{}
	for _, o := range r.orders {
		for _, item := range o.Items {
			product, err := r.getProduct(item.ProductID)
			if err != nil {
				continue // товар удален из каталога
			}
			if product.ProducerID == producerID {
				out = append(out, o)
				break
			}
		}
	}
	return out
}

func (r *Repository) nextOrderID() uint {
	var max uint
	for _, o := range r.orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}
