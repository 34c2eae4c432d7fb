package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para el catálogo (DIP).
// Toda lectura o escritura por id se filtra por el dueño.
type ProductRepository interface {
	// LockCatalog serializa las ingestas de un mismo dueño hasta el fin de la transacción.
	LockCatalog(ctx context.Context, userID int64) error
	DeleteByOwner(ctx context.Context, userID int64) (int64, error)
	CreateBatch(ctx context.Context, products []*entity.Product) (int64, error)
	ListByOwner(ctx context.Context, userID int64) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByIDForOwner(ctx context.Context, id, userID int64) (*entity.Product, error)
	UpdateVisibility(ctx context.Context, id, userID int64, visibility bool) error
}
