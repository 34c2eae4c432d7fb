package memory

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/application/inventory"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta la función con el store bloqueado en escritura y restaura
// productos e historial si la función falla.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunCatalog ejecuta fn con repos de catálogo e historial atados a la "transacción".
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	historyRepo repository.UploadHistoryRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.snapshot()
	g := guard{s: r.s, held: true}
	if err := fn(&ProductRepository{g: g}, &UploadHistoryRepository{g: g}); err != nil {
		r.restore(snap)
		return err
	}
	return nil
}

type catalogSnapshot struct {
	seq      map[string]int64
	products map[int64]*entity.Product
	history  []*entity.UploadHistory
}

func (r *TxRunner) snapshot() catalogSnapshot {
	snap := catalogSnapshot{
		seq:      make(map[string]int64, len(r.s.seq)),
		products: make(map[int64]*entity.Product, len(r.s.products)),
		history:  append([]*entity.UploadHistory(nil), r.s.history...),
	}
	for k, v := range r.s.seq {
		snap.seq[k] = v
	}
	for id, p := range r.s.products {
		cp := *p
		snap.products[id] = &cp
	}
	return snap
}

func (r *TxRunner) restore(snap catalogSnapshot) {
	r.s.seq = snap.seq
	r.s.products = snap.products
	r.s.history = snap.history
}
