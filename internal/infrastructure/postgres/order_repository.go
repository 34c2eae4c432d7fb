package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `order_id, customer_id, product_id, quantity, price, order_date, delivery_date,
	payment_method, payment_status, transaction_id, order_status, tracking_number, notes`

// OrderRepo pedidos sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta el pedido y asigna su ID.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders (customer_id, product_id, quantity, price, order_date, delivery_date,
			payment_method, payment_status, transaction_id, order_status, tracking_number, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING order_id`,
		o.CustomerID, o.ProductID, o.Quantity, o.Price, o.OrderDate, o.DeliveryDate,
		o.PaymentMethod, o.PaymentStatus, o.TransactionID, string(o.Status), o.TrackingNumber, o.Notes,
	).Scan(&o.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByCustomer pedidos del cliente, el más reciente primero.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY order_id DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// GetByIDForCustomer devuelve nil, nil si no existe o pertenece a otro cliente.
func (r *OrderRepo) GetByIDForCustomer(ctx context.Context, id, customerID int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_id = $1 AND customer_id = $2`, id, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// UpdateStatus cambia el estado de un pedido del cliente.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, customerID int64, status entity.OrderStatus) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE orders SET order_status = $3 WHERE order_id = $1 AND customer_id = $2`,
		id, customerID, string(status))
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o      entity.Order
		status string
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.Price, &o.OrderDate, &o.DeliveryDate,
		&o.PaymentMethod, &o.PaymentStatus, &o.TransactionID, &status, &o.TrackingNumber, &o.Notes,
	)
	if err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}
