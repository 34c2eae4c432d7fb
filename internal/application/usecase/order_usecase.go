package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// ReceiptGenerator genera el comprobante PDF de un pedido.
type ReceiptGenerator interface {
	OrderReceipt(order *entity.Order, product *entity.Product, customer *entity.User) ([]byte, error)
}

// OrderUseCase pedidos de un cliente. Toda operación por id se resuelve acotada
// a (id, cliente); ajeno e inexistente son indistinguibles (ErrNotFound).
type OrderUseCase struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	receipts    ReceiptGenerator
	now         func() time.Time
}

// NewOrderUseCase construye el caso de uso. receipts puede ser nil si no se exponen comprobantes.
func NewOrderUseCase(
	repo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	receipts ReceiptGenerator,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, productRepo: productRepo, userRepo: userRepo, receipts: receipts, now: time.Now}
}

// Create registra un pedido del actor en estado Pending.
func (uc *OrderUseCase) Create(ctx context.Context, actorID int64, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if actorID <= 0 {
		return nil, domain.ErrMissingActor
	}
	if in.Quantity <= 0 || in.Price.LessThan(decimal.Zero) || !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusPending
	}
	order := &entity.Order{
		CustomerID:     actorID,
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		Price:          in.Price,
		OrderDate:      uc.now(),
		DeliveryDate:   in.DeliveryDate,
		PaymentMethod:  in.PaymentMethod,
		PaymentStatus:  paymentStatus,
		TransactionID:  in.TransactionID,
		Status:         entity.OrderPending,
		TrackingNumber: in.TrackingNumber,
		Notes:          in.Notes,
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	out := dto.ToOrderResponse(order)
	return &out, nil
}

// List pedidos del actor, el más reciente primero.
func (uc *OrderUseCase) List(ctx context.Context, actorID int64) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByCustomer(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponses(list), nil
}

// Get devuelve un pedido del actor.
func (uc *OrderUseCase) Get(ctx context.Context, actorID, id int64) (*dto.OrderResponse, error) {
	o, err := uc.resolve(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToOrderResponse(o)
	return &out, nil
}

// UpdateStatus sobrescribe el estado con cualquier miembro del enum.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, actorID, id int64, status string) (*dto.OrderResponse, error) {
	s := entity.OrderStatus(status)
	if !s.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.transition(ctx, actorID, id, s)
}

// Cancel pasa el pedido a Canceled sin importar el estado actual.
func (uc *OrderUseCase) Cancel(ctx context.Context, actorID, id int64) (*dto.OrderResponse, error) {
	return uc.transition(ctx, actorID, id, entity.OrderCanceled)
}

func (uc *OrderUseCase) transition(ctx context.Context, actorID, id int64, s entity.OrderStatus) (*dto.OrderResponse, error) {
	o, err := uc.resolve(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, o.ID, actorID, s); err != nil {
		return nil, err
	}
	o.Status = s
	out := dto.ToOrderResponse(o)
	return &out, nil
}

// Receipt genera el PDF del comprobante de un pedido del actor.
func (uc *OrderUseCase) Receipt(ctx context.Context, actorID, id int64) ([]byte, error) {
	if uc.receipts == nil {
		return nil, domain.ErrNotFound
	}
	o, err := uc.resolve(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, o.ProductID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return uc.receipts.OrderReceipt(o, product, customer)
}

func (uc *OrderUseCase) resolve(ctx context.Context, actorID, id int64) (*entity.Order, error) {
	if actorID <= 0 {
		return nil, domain.ErrMissingActor
	}
	o, err := uc.repo.GetByIDForCustomer(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}
