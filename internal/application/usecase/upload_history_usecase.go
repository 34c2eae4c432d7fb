package usecase

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// UploadHistoryUseCase consulta del historial de cargas.
type UploadHistoryUseCase struct {
	repo     repository.UploadHistoryRepository
	userRepo repository.UserRepository
}

// NewUploadHistoryUseCase construye el caso de uso.
func NewUploadHistoryUseCase(repo repository.UploadHistoryRepository, userRepo repository.UserRepository) *UploadHistoryUseCase {
	return &UploadHistoryUseCase{repo: repo, userRepo: userRepo}
}

// ListByUser historial de userID, el más reciente primero. Sólo el propio usuario o un admin.
func (uc *UploadHistoryUseCase) ListByUser(ctx context.Context, actorID int64, role string, userID int64) ([]dto.UploadHistoryResponse, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if actorID != userID && role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToUploadHistoryResponses(list), nil
}
