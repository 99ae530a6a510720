package ds

// 3. Строка корзины. Корзина — последовательность строк активного сеанса,
// отдельной корзины на пользователя нет.
type CartLine struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}
