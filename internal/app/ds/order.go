package ds

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус заказа. Переходов между статусами в системе нет.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderItem — строка заказа со снимком товара на момент оформления.
// Последующие изменения цены товара на заказ не влияют.
type OrderItem struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// 4. Заказы. После создания заказ не изменяется (кроме поля статуса).
type Order struct {
	ID     uint            `json:"id"`
	UserID uint            `json:"userId"`
	Items  []OrderItem     `json:"items"`
	Total  decimal.Decimal `json:"total"` // сумма price*quantity по снимку строк
	Date   time.Time       `json:"date"`
	Status OrderStatus     `json:"status"`
}
