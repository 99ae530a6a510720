package repository

import (
	"context"
	"encoding/json"

	"campomarket/internal/app/ds"
	"campomarket/internal/app/kvstore"
)

// Сеансовая запись: единственный авторизованный пользователь.
// Пишется при login/register, очищается при logout. Бизнес-операции её
// не читают — действующий пользователь всегда передается явно.

func (r *Repository) SetCurrentUser(u ds.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.currentUser
	r.currentUser = &u
	if err := r.persistCurrentUser(); err != nil {
		r.currentUser = prev
		return err
	}
	return nil
}

func (r *Repository) CurrentUser() *ds.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.currentUser == nil {
		return nil
	}
	u := *r.currentUser
	return &u
}

func (r *Repository) ClearCurrentUser() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.currentUser
	r.currentUser = nil
	if err := r.persistCurrentUser(); err != nil {
		r.currentUser = prev
		return err
	}
	return nil
}

// persistCurrentUser пишет сеансовую запись; при отсутствии сеанса
// ключ удаляется (отсутствие ключа == нет сеанса)
func (r *Repository) persistCurrentUser() error {
	ctx := context.Background()
	if r.currentUser == nil {
		return r.kv.Delete(ctx, r.key(kvstore.KeyCurrentUser))
	}
	data, err := json.Marshal(r.currentUser)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, r.key(kvstore.KeyCurrentUser), data)
}
