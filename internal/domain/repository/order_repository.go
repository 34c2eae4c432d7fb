package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para pedidos, siempre acotado al cliente.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)
	// GetByIDForCustomer devuelve nil, nil si el pedido no existe o es de otro cliente.
	GetByIDForCustomer(ctx context.Context, id, customerID int64) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id, customerID int64, status entity.OrderStatus) error
}
