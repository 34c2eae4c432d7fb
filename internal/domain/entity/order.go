package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado logístico de un pedido.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCanceled  OrderStatus = "Canceled"
)

// Valid informa si el estado pertenece al enum.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCanceled:
		return true
	}
	return false
}

// Métodos de pago aceptados.
const (
	PaymentCreditCard = "Credit Card"
	PaymentPayPal     = "PayPal"
	PaymentCOD        = "COD"
)

// Estados de pago.
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
	PaymentStatusFailed  = "Failed"
)

// ValidPaymentMethod informa si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCreditCard || m == PaymentPayPal || m == PaymentCOD
}

// Order pedido de un cliente sobre un producto. Nunca se borra físicamente:
// la cancelación es un cambio de estado.
type Order struct {
	ID             int64
	CustomerID     int64
	ProductID      int64
	Quantity       int
	Price          decimal.Decimal
	OrderDate      time.Time
	DeliveryDate   *time.Time
	PaymentMethod  string
	PaymentStatus  string
	TransactionID  string
	Status         OrderStatus
	TrackingNumber string
	Notes          string
}
