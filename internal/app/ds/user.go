package ds

import "campomarket/internal/app/role"

// 1. Пользователи (производители и покупатели)
type User struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"` // уникален в пределах коллекции, проверяется при регистрации
	Password string    `json:"password"`
	Role     role.Role `json:"role"`
	Phone    string    `json:"phone,omitempty"`
	Address  string    `json:"address,omitempty"`
}
