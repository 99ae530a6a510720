package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"campomarket/internal/app/ds"
	"campomarket/internal/app/kvstore"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Виды ошибок операций хранилища. Все восстановимые: обработчики
// превращают их в сообщения пользователю, процесс не падает.
var (
	ErrDuplicateEmail     = errors.New("пользователь с таким email уже существует")
	ErrNotFound           = errors.New("запись не найдена")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrEmptyCart          = errors.New("корзина пуста")
	ErrInsufficientStock  = errors.New("недостаточно товара на складе")
)

// Repository держит коллекции в памяти и после каждой мутации целиком
// сериализует затронутую коллекцию в key-value хранилище. Единственный
// писатель персистентного состояния.
type Repository struct {
	mu        sync.RWMutex
	kv        kvstore.Store
	namespace string

	users       []ds.User
	products    []ds.Product
	cart        []ds.CartLine
	orders      []ds.Order
	currentUser *ds.User
}

func New(kv kvstore.Store, namespace string) (*Repository, error) {
	r := &Repository{
		kv:        kv,
		namespace: namespace,
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}

	return r, nil
}

// load читает все коллекции из хранилища. Отсутствие ключа равнозначно
// пустой коллекции; при отсутствии ключа товаров записывается сид-набор.
func (r *Repository) load() error {
	if err := r.loadCollection(kvstore.KeyUsers, &r.users); err != nil && !errors.Is(err, kvstore.ErrNoKey) {
		return err
	}

	err := r.loadCollection(kvstore.KeyProducts, &r.products)
	if errors.Is(err, kvstore.ErrNoKey) {
		r.products = defaultProducts()
		if err := r.persistProducts(); err != nil {
			return err
		}
		logrus.Infof("seeded %d default products", len(r.products))
	} else if err != nil {
		return err
	}

	if err := r.loadCollection(kvstore.KeyCart, &r.cart); err != nil && !errors.Is(err, kvstore.ErrNoKey) {
		return err
	}
	if err := r.loadCollection(kvstore.KeyOrders, &r.orders); err != nil && !errors.Is(err, kvstore.ErrNoKey) {
		return err
	}

	data, err := r.kv.Get(context.Background(), r.key(kvstore.KeyCurrentUser))
	if err == nil {
		var u ds.User
		if err := json.Unmarshal(data, &u); err != nil {
			return err
		}
		r.currentUser = &u
	} else if !errors.Is(err, kvstore.ErrNoKey) {
		return err
	}

	return nil
}

func (r *Repository) key(suffix string) string {
	return kvstore.Key(r.namespace, suffix)
}

func (r *Repository) loadCollection(suffix string, dst interface{}) error {
	data, err := r.kv.Get(context.Background(), r.key(suffix))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func (r *Repository) persistCollection(suffix string, src interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return r.kv.Set(context.Background(), r.key(suffix), data)
}

func (r *Repository) persistUsers() error    { return r.persistCollection(kvstore.KeyUsers, r.users) }
func (r *Repository) persistProducts() error {
	return r.persistCollection(kvstore.KeyProducts, r.products)
}
func (r *Repository) persistCart() error   { return r.persistCollection(kvstore.KeyCart, r.cart) }
func (r *Repository) persistOrders() error { return r.persistCollection(kvstore.KeyOrders, r.orders) }

// defaultProducts — фиксированный сид-набор каталога. ProducerID 0 —
// сентинел незарегистрированного производителя.
func defaultProducts() []ds.Product {
	return []ds.Product{
		{
			ID:          1,
			Name:        "Tomates Orgánicos",
			Description: "Tomates frescos cultivados sin pesticidas",
			Price:       decimal.RequireFromString("2.50"),
			Category:    ds.CategoryVegetables,
			Stock:       50,
			ProducerID:  0,
			Image:       "🍅",
		},
		{
			ID:          2,
			Name:        "Manzanas Rojas",
			Description: "Manzanas dulces y jugosas de la temporada",
			Price:       decimal.RequireFromString("3.00"),
			Category:    ds.CategoryFruits,
			Stock:       30,
			ProducerID:  0,
			Image:       "🍎",
		},
		{
			ID:          3,
			Name:        "Leche Fresca",
			Description: "Leche entera recién ordeñada",
			Price:       decimal.RequireFromString("4.50"),
			Category:    ds.CategoryDairy,
			Stock:       20,
			ProducerID:  0,
			Image:       "🥛",
		},
		{
			ID:          4,
			Name:        "Maíz Dulce",
			Description: "Maíz fresco ideal para asar o cocinar",
			Price:       decimal.RequireFromString("1.80"),
			Category:    ds.CategoryVegetables,
			Stock:       40,
			ProducerID:  0,
			Image:       "🌽",
		},
		{
			ID:          5,
			Name:        "Huevos de Campo",
			Description: "Huevos frescos de gallinas criadas en libertad",
			Price:       decimal.RequireFromString("5.00"),
			Category:    ds.CategoryDairy,
			Stock:       25,
			ProducerID:  0,
			Image:       "🥚",
		},
		{
			ID:          6,
			Name:        "Fresas Silvestres",
			Description: "Fresas pequeñas y dulces de cultivo natural",
			Price:       decimal.RequireFromString("4.20"),
			Category:    ds.CategoryFruits,
			Stock:       15,
			ProducerID:  0,
			Image:       "🍓",
		},
	}
}
