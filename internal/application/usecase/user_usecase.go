package usecase

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (rol admin).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve una página de usuarios.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(list), nil
}

// Verify marca (o desmarca) a un usuario como verificado.
func (uc *UserUseCase) Verify(ctx context.Context, userID int64, verified bool) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.repo.SetVerified(ctx, userID, verified); err != nil {
		return nil, err
	}
	u.IsVerified = verified
	out := dto.ToUserResponse(u)
	return &out, nil
}

// Delete borra un usuario. Un admin no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, userID int64) error {
	if userID <= 0 {
		return domain.ErrInvalidInput
	}
	if actorID == userID {
		return domain.ErrConflict
	}
	n, err := uc.repo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
