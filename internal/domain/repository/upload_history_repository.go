package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// UploadHistoryRepository puerto append-only para las corridas de ingesta.
type UploadHistoryRepository interface {
	Create(ctx context.Context, h *entity.UploadHistory) error
	// ListByUser devuelve las corridas del usuario, la más reciente primero.
	ListByUser(ctx context.Context, userID int64) ([]*entity.UploadHistory, error)
}
