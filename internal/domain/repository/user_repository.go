package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// FindByLogin busca por email o por número legal registrado.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)
	ExistsAny(ctx context.Context, username, email, legalNumber string) (bool, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	SetVerified(ctx context.Context, id int64, verified bool) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
