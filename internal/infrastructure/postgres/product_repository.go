package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, user_id, stock_id, COALESCE(model_no, ''), COALESCE(brand, ''), COALESCE(gender, ''),
	COALESCE(metal_type, ''), case_size, COALESCE(condition, ''), COALESCE(box, ''), COALESCE(paper, ''),
	total_price, launch_year, COALESCE(image_link, ''), COALESCE(video_link, ''), COALESCE(location, ''),
	visibility, created_at, updated_at`

// copyColumns orden de columnas para CopyFrom en CreateBatch.
var copyColumns = []string{
	"user_id", "stock_id", "model_no", "brand", "gender", "metal_type", "case_size", "condition",
	"box", "paper", "total_price", "launch_year", "image_link", "video_link", "location",
	"visibility", "created_at", "updated_at",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// LockCatalog toma un advisory lock de transacción por dueño: dos cargas del mismo
// vendedor se serializan, las de vendedores distintos no se bloquean.
// La clave es el id completo (bigint); es el único advisory lock de la aplicación.
func (r *ProductRepo) LockCatalog(ctx context.Context, userID int64) error {
	_, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1::int8)`, userID)
	if err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	return nil
}

// DeleteByOwner borra el catálogo completo del dueño.
func (r *ProductRepo) DeleteByOwner(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CreateBatch inserta con COPY. Los IDs generados no se devuelven a las entidades.
func (r *ProductRepo) CreateBatch(ctx context.Context, products []*entity.Product) (int64, error) {
	n, err := r.q.CopyFrom(ctx, pgx.Identifier{"products"}, copyColumns,
		pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
			p := products[i]
			return []any{
				p.UserID, p.StockID, p.ModelNo, p.Brand, p.Gender, p.MetalType, p.CaseSize,
				p.Condition, p.Box, p.Paper, p.TotalPrice, p.LaunchYear, p.ImageLink,
				p.VideoLink, p.Location, p.Visibility, p.CreatedAt, p.UpdatedAt,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy products: %w", err)
	}
	return n, nil
}

// ListByOwner catálogo del dueño ordenado por id.
func (r *ProductRepo) ListByOwner(ctx context.Context, userID int64) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDForOwner obtiene un producto sólo si pertenece a userID.
func (r *ProductRepo) GetByIDForOwner(ctx context.Context, id, userID int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// UpdateVisibility cambia la visibilidad de un producto del dueño.
func (r *ProductRepo) UpdateVisibility(ctx context.Context, id, userID int64, visibility bool) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET visibility = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID, visibility)
	if err != nil {
		return fmt.Errorf("update visibility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.UserID, &p.StockID, &p.ModelNo, &p.Brand, &p.Gender, &p.MetalType, &p.CaseSize,
		&p.Condition, &p.Box, &p.Paper, &p.TotalPrice, &p.LaunchYear, &p.ImageLink, &p.VideoLink,
		&p.Location, &p.Visibility, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
