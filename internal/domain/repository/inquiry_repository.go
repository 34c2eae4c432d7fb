package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// InquiryRepository puerto de persistencia para consultas de compra.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	// GetByIDForInquirer acota por quien creó la consulta.
	GetByIDForInquirer(ctx context.Context, id, userID int64) (*entity.Inquiry, error)
	// GetByIDForProductOwner acota por el dueño del producto consultado.
	GetByIDForProductOwner(ctx context.Context, id, ownerID int64) (*entity.Inquiry, error)
	UpdateNote(ctx context.Context, id int64, note string) error
	UpdateStatus(ctx context.Context, id int64, status entity.InquiryStatus) error
	// Delete borra si actorID es el interesado o el dueño del producto; devuelve filas afectadas.
	Delete(ctx context.Context, id, actorID int64) (int64, error)
	ListSent(ctx context.Context, userID int64) ([]*entity.InquiryView, error)
	ListReceived(ctx context.Context, ownerID int64) ([]*entity.InquiryView, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Inquiry, error)
}
