package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// InquiryUseCase consultas de compra sobre productos.
// El interesado edita su nota; el dueño del producto cambia el estado.
type InquiryUseCase struct {
	repo        repository.InquiryRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewInquiryUseCase construye el caso de uso.
func NewInquiryUseCase(repo repository.InquiryRepository, productRepo repository.ProductRepository) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, productRepo: productRepo, now: time.Now}
}

// Create registra una consulta. actorID nil = interesado anónimo.
func (uc *InquiryUseCase) Create(ctx context.Context, actorID *int64, in dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	if in.ProductID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	i := &entity.Inquiry{
		ProductID:  in.ProductID,
		UserID:     actorID,
		Note:       in.Note,
		Status:     entity.InquiryPending,
		CreateTime: uc.now(),
	}
	if err := uc.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	out := dto.ToInquiryResponse(i)
	return &out, nil
}

// Sent consultas creadas por el actor.
func (uc *InquiryUseCase) Sent(ctx context.Context, actorID int64) ([]dto.InquiryViewResponse, error) {
	if actorID <= 0 {
		return nil, domain.ErrMissingActor
	}
	list, err := uc.repo.ListSent(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return dto.ToInquiryViewResponses(list), nil
}

// Received consultas de otros sobre productos del actor.
func (uc *InquiryUseCase) Received(ctx context.Context, actorID int64) ([]dto.InquiryViewResponse, error) {
	if actorID <= 0 {
		return nil, domain.ErrMissingActor
	}
	list, err := uc.repo.ListReceived(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return dto.ToInquiryViewResponses(list), nil
}

// Get consulta creada por el actor.
func (uc *InquiryUseCase) Get(ctx context.Context, actorID, id int64) (*dto.InquiryResponse, error) {
	i, err := uc.forInquirer(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToInquiryResponse(i)
	return &out, nil
}

// UpdateNote reemplaza la nota; vacía conserva la actual.
func (uc *InquiryUseCase) UpdateNote(ctx context.Context, actorID, id int64, note string) (*dto.InquiryResponse, error) {
	i, err := uc.forInquirer(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if note != "" {
		if err := uc.repo.UpdateNote(ctx, i.ID, note); err != nil {
			return nil, err
		}
		i.Note = note
	}
	out := dto.ToInquiryResponse(i)
	return &out, nil
}

// UpdateStatus aplica el estado pedido por el dueño del producto.
// Cualquier transición entre miembros del enum es aceptada.
func (uc *InquiryUseCase) UpdateStatus(ctx context.Context, actorID, id int64, status string) (*dto.InquiryResponse, error) {
	if actorID <= 0 {
		return nil, domain.ErrMissingActor
	}
	s := entity.InquiryStatus(status)
	if !s.Valid() {
		return nil, domain.ErrInvalidInput
	}
	i, err := uc.repo.GetByIDForProductOwner(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(ctx, i.ID, s); err != nil {
		return nil, err
	}
	i.Status = s
	out := dto.ToInquiryResponse(i)
	return &out, nil
}

// Delete borra la consulta si el actor es el interesado o el dueño del producto.
func (uc *InquiryUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if actorID <= 0 {
		return domain.ErrMissingActor
	}
	n, err := uc.repo.Delete(ctx, id, actorID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProduct consultas de un producto.
func (uc *InquiryUseCase) ListByProduct(ctx context.Context, productID int64) ([]dto.InquiryResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return dto.ToInquiryResponses(list), nil
}

func (uc *InquiryUseCase) forInquirer(ctx context.Context, actorID, id int64) (*entity.Inquiry, error) {
	if actorID <= 0 {
		return nil, domain.ErrMissingActor
	}
	i, err := uc.repo.GetByIDForInquirer(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrNotFound
	}
	return i, nil
}
