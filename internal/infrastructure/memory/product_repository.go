package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository catálogo en memoria.
type ProductRepository struct {
	g guard
}

// NewProductRepository crea el repositorio sobre el store.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{g: guard{s: s}}
}

// LockCatalog no hace nada: el TxRunner en memoria ya serializa las transacciones.
func (r *ProductRepository) LockCatalog(ctx context.Context, userID int64) error {
	return ctx.Err()
}

func (r *ProductRepository) DeleteByOwner(ctx context.Context, userID int64) (int64, error) {
	defer r.g.write()()
	var n int64
	for id, p := range r.g.s.products {
		if p.UserID == userID {
			delete(r.g.s.products, id)
			n++
		}
	}
	return n, nil
}

func (r *ProductRepository) CreateBatch(ctx context.Context, products []*entity.Product) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	defer r.g.write()()
	for _, p := range products {
		cp := *p
		cp.ID = r.g.s.nextID("products")
		p.ID = cp.ID
		r.g.s.products[cp.ID] = &cp
	}
	return int64(len(products)), nil
}

func (r *ProductRepository) ListByOwner(ctx context.Context, userID int64) ([]*entity.Product, error) {
	defer r.g.read()()
	out := make([]*entity.Product, 0)
	for _, p := range r.g.s.products {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	defer r.g.read()()
	p, ok := r.g.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepository) GetByIDForOwner(ctx context.Context, id, userID int64) (*entity.Product, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil || p == nil || p.UserID != userID {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) UpdateVisibility(ctx context.Context, id, userID int64, visibility bool) error {
	defer r.g.write()()
	p, ok := r.g.s.products[id]
	if !ok || p.UserID != userID {
		return domain.ErrNotFound
	}
	p.Visibility = visibility
	return nil
}
