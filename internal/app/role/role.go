package role

// Role определяет тип пользователя в системе
type Role string

const (
	Consumer Role = "consumer" // покупатель: каталог, корзина, оформление заказов
	Producer Role = "producer" // производитель: управление своими товарами
)

// IsValid проверяет, что роль входит в закрытый перечень
func (r Role) IsValid() bool {
	return r == Consumer || r == Producer
}
