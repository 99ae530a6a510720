// Пакет kvstore — key-value хранилище сериализованных коллекций.
// Каждая коллекция лежит целиком под своим ключом; отсутствие ключа
// равнозначно пустой коллекции.
package kvstore

import (
	"context"
	"errors"
)

// ErrNoKey возвращается при чтении отсутствующего ключа
var ErrNoKey = errors.New("kvstore: key not found")

// Store — контракт бэкенда хранилища
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Суффиксы ключей под пространством имен (<namespace>_<suffix>)
const (
	KeyUsers       = "users"
	KeyProducts    = "products"
	KeyCart        = "cart"
	KeyOrders      = "orders"
	KeyCurrentUser = "current_user"
)

// Key собирает полный ключ из пространства имен и суффикса
func Key(namespace, suffix string) string {
	return namespace + "_" + suffix
}
