package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// CreateOrderRequest entrada para crear un pedido; el cliente es el actor autenticado.
type CreateOrderRequest struct {
	ProductID      int64           `json:"product_id" validate:"required,gt=0"`
	Quantity       int             `json:"quantity" validate:"required,gt=0"`
	Price          decimal.Decimal `json:"price"`
	DeliveryDate   *time.Time      `json:"delivery_date"`
	PaymentMethod  string          `json:"payment_method" validate:"required,oneof='Credit Card' PayPal COD"`
	PaymentStatus  string          `json:"payment_status" validate:"omitempty,oneof=Paid Pending Failed"`
	TransactionID  string          `json:"transaction_id" validate:"max=100"`
	TrackingNumber string          `json:"tracking_number" validate:"max=100"`
	Notes          string          `json:"notes"`
}

// UpdateOrderStatusRequest entrada para cambiar el estado de un pedido propio.
type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" validate:"required,oneof=Pending Confirmed Shipped Delivered Canceled"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID             int64           `json:"id"`
	CustomerID     int64           `json:"customer_id"`
	ProductID      int64           `json:"product_id"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	OrderDate      time.Time       `json:"order_date"`
	DeliveryDate   *time.Time      `json:"delivery_date"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentStatus  string          `json:"payment_status"`
	TransactionID  string          `json:"transaction_id"`
	OrderStatus    string          `json:"order_status"`
	TrackingNumber string          `json:"tracking_number"`
	Notes          string          `json:"notes"`
}

// ToOrderResponse mapea la entidad a su salida JSON.
func ToOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		ProductID:      o.ProductID,
		Quantity:       o.Quantity,
		Price:          o.Price,
		OrderDate:      o.OrderDate,
		DeliveryDate:   o.DeliveryDate,
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  o.PaymentStatus,
		TransactionID:  o.TransactionID,
		OrderStatus:    string(o.Status),
		TrackingNumber: o.TrackingNumber,
		Notes:          o.Notes,
	}
}

// ToOrderResponses mapea una lista; nunca devuelve nil.
func ToOrderResponses(list []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
