package repository

import (
	"campomarket/internal/app/ds"
	"campomarket/internal/app/role"
)

// Методы для пользователей

// RegisterUser создает пользователя. Уникальность email проверяется
// только здесь, при регистрации.
func (r *Repository) RegisterUser(name, email, password string, userRole role.Role) (*ds.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := ds.User{
		ID:       r.nextUserID(),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     userRole,
	}

	r.users = append(r.users, user)
	if err := r.persistUsers(); err != nil {
		r.users = r.users[:len(r.users)-1]
		return nil, err
	}

	return &user, nil
}

// FindUserByEmail — точное совпадение, nil если не найден
func (r *Repository) FindUserByEmail(email string) *ds.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateUserProfile перезаписывает поля профиля. Уникальность email при
// обновлении профиля не проверяется (как и в исходной системе).
func (r *Repository) UpdateUserProfile(id uint, name, email, phone, address string) (*ds.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.users {
		if r.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	prev := r.users[idx]
	r.users[idx].Name = name
	r.users[idx].Email = email
	r.users[idx].Phone = phone
	r.users[idx].Address = address

	if err := r.persistUsers(); err != nil {
		r.users[idx] = prev
		return nil, err
	}

	// Сеансовая запись указывает на того же пользователя — обновляем и её
	if r.currentUser != nil && r.currentUser.ID == id {
		u := r.users[idx]
		r.currentUser = &u
		if err := r.persistCurrentUser(); err != nil {
			return nil, err
		}
	}

	u := r.users[idx]
	return &u, nil
}

func (r *Repository) nextUserID() uint {
	var max uint
	for _, u := range r.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
