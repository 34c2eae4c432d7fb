package usecase

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// ProductUseCase lecturas del catálogo y cambio de visibilidad.
// La escritura masiva vive en inventory.IngestUseCase.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// ListMine devuelve todo el catálogo del actor, visible u oculto.
func (uc *ProductUseCase) ListMine(ctx context.Context, actorID int64) ([]dto.ProductResponse, error) {
	if actorID <= 0 {
		return nil, domain.ErrMissingActor
	}
	list, err := uc.repo.ListByOwner(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(list), nil
}

// ListByUser catálogo de userID visto por actorID: el dueño ve todo, el resto sólo lo visible.
func (uc *ProductUseCase) ListByUser(ctx context.Context, actorID, userID int64) ([]dto.ProductResponse, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if actorID == userID {
		return dto.ToProductResponses(list), nil
	}
	visible := list[:0]
	for _, p := range list {
		if p.Visibility {
			visible = append(visible, p)
		}
	}
	return dto.ToProductResponses(visible), nil
}

// UpdateVisibility muestra u oculta un producto del actor. Ajeno o inexistente = ErrNotFound.
func (uc *ProductUseCase) UpdateVisibility(ctx context.Context, actorID int64, in dto.UpdateVisibilityRequest) (*dto.ProductResponse, error) {
	if in.Visibility == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.UpdateVisibility(ctx, in.ID, actorID, *in.Visibility); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByIDForOwner(ctx, in.ID, actorID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToProductResponse(p)
	return &out, nil
}
