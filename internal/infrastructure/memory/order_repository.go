package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository pedidos en memoria.
type OrderRepository struct {
	g guard
}

// NewOrderRepository crea el repositorio sobre el store.
func NewOrderRepository(s *Store) *OrderRepository {
	return &OrderRepository{g: guard{s: s}}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	defer r.g.write()()
	o.ID = r.g.s.nextID("orders")
	cp := *o
	r.g.s.orders[o.ID] = &cp
	return nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	defer r.g.read()()
	out := make([]*entity.Order, 0)
	for _, o := range r.g.s.orders {
		if o.CustomerID == customerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *OrderRepository) GetByIDForCustomer(ctx context.Context, id, customerID int64) (*entity.Order, error) {
	defer r.g.read()()
	o, ok := r.g.s.orders[id]
	if !ok || o.CustomerID != customerID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, customerID int64, status entity.OrderStatus) error {
	defer r.g.write()()
	o, ok := r.g.s.orders[id]
	if !ok || o.CustomerID != customerID {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}
