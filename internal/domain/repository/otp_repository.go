package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// OTPRepository almacén con vencimiento para códigos de un solo uso.
type OTPRepository interface {
	// Save reemplaza cualquier código previo del usuario.
	Save(ctx context.Context, code *entity.OTPCode) error
	Get(ctx context.Context, userID int64) (*entity.OTPCode, error)
	// RegisterFailure suma un intento fallido y devuelve el total; 0 si no hay código.
	RegisterFailure(ctx context.Context, userID int64) (int, error)
	Delete(ctx context.Context, userID int64) error
}
