package inventory

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ningún efecto visible.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		historyRepo repository.UploadHistoryRepository,
	) error) error
}
