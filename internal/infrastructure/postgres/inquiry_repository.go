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

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

const inquiryColumns = `i.id, i.product_id, i.user_id, i.note, i.status, i.create_time`

// viewColumns producto + contraparte (alias u) para los listados.
const viewColumns = inquiryColumns + `,
	COALESCE(p.brand, ''), COALESCE(p.gender, ''), round(p.total_price, 2)::text, p.launch_year,
	COALESCE(p.model_no, ''), COALESCE(p.metal_type, ''), round(p.case_size, 2)::text, COALESCE(p.condition, ''),
	COALESCE(p.image_link, ''), COALESCE(p.location, ''),
	COALESCE(u.username, ''), COALESCE(u.email, ''), COALESCE(u.company_name, ''), COALESCE(u.company_address, '')`

// InquiryRepo consultas de compra sobre PostgreSQL.
type InquiryRepo struct {
	q Querier
}

// NewInquiryRepository construye el adaptador.
func NewInquiryRepository(q Querier) *InquiryRepo {
	return &InquiryRepo{q: q}
}

// Create inserta la consulta si el producto existe; si no, ErrNotFound.
func (r *InquiryRepo) Create(ctx context.Context, in *entity.Inquiry) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO inquiries (product_id, user_id, note, status, create_time)
		SELECT p.id, $2, $3, $4, $5 FROM products p WHERE p.id = $1
		RETURNING id`,
		in.ProductID, in.UserID, in.Note, string(in.Status), in.CreateTime,
	).Scan(&in.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *InquiryRepo) GetByIDForInquirer(ctx context.Context, id, userID int64) (*entity.Inquiry, error) {
	return r.findOne(ctx, `SELECT `+inquiryColumns+` FROM inquiries i WHERE i.id = $1 AND i.user_id = $2`, id, userID)
}

func (r *InquiryRepo) GetByIDForProductOwner(ctx context.Context, id, ownerID int64) (*entity.Inquiry, error) {
	return r.findOne(ctx, `
		SELECT `+inquiryColumns+` FROM inquiries i
		JOIN products p ON p.id = i.product_id
		WHERE i.id = $1 AND p.user_id = $2`, id, ownerID)
}

func (r *InquiryRepo) UpdateNote(ctx context.Context, id int64, note string) error {
	return r.exec(ctx, `UPDATE inquiries SET note = $2 WHERE id = $1`, id, note)
}

func (r *InquiryRepo) UpdateStatus(ctx context.Context, id int64, status entity.InquiryStatus) error {
	return r.exec(ctx, `UPDATE inquiries SET status = $2 WHERE id = $1`, id, string(status))
}

// Delete borra si actorID es el interesado o el dueño del producto.
func (r *InquiryRepo) Delete(ctx context.Context, id, actorID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM inquiries i
		WHERE i.id = $1
		  AND (i.user_id = $2 OR EXISTS (SELECT 1 FROM products p WHERE p.id = i.product_id AND p.user_id = $2))`,
		id, actorID)
	if err != nil {
		return 0, fmt.Errorf("delete inquiry: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListSent consultas de userID con el vendedor como contraparte.
func (r *InquiryRepo) ListSent(ctx context.Context, userID int64) ([]*entity.InquiryView, error) {
	return r.listViews(ctx, `
		SELECT `+viewColumns+`
		FROM inquiries i
		JOIN products p ON p.id = i.product_id
		LEFT JOIN users u ON u.id = p.user_id
		WHERE i.user_id = $1
		ORDER BY i.id DESC`, userID)
}

// ListReceived consultas sobre productos de ownerID hechas por otros usuarios.
// user_id NULL no cumple la desigualdad, así que las anónimas quedan fuera.
func (r *InquiryRepo) ListReceived(ctx context.Context, ownerID int64) ([]*entity.InquiryView, error) {
	return r.listViews(ctx, `
		SELECT `+viewColumns+`
		FROM inquiries i
		JOIN products p ON p.id = i.product_id
		LEFT JOIN users u ON u.id = i.user_id
		WHERE p.user_id = $1 AND i.user_id <> $1
		ORDER BY i.id DESC`, ownerID)
}

func (r *InquiryRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Inquiry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+inquiryColumns+` FROM inquiries i WHERE i.product_id = $1 ORDER BY i.id DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Inquiry, 0)
	for rows.Next() {
		in, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		list = append(list, in)
	}
	return list, rows.Err()
}

func (r *InquiryRepo) listViews(ctx context.Context, query string, arg int64) ([]*entity.InquiryView, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.InquiryView, 0)
	for rows.Next() {
		var (
			v      entity.InquiryView
			status string
		)
		err := rows.Scan(
			&v.ID, &v.ProductID, &v.UserID, &v.Note, &status, &v.CreateTime,
			&v.Brand, &v.Gender, &v.TotalPrice, &v.LaunchYear, &v.ModelNo, &v.MetalType, &v.CaseSize,
			&v.Condition, &v.ImageLink, &v.Location,
			&v.Username, &v.Email, &v.CompanyName, &v.CompanyAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry view: %w", err)
		}
		v.Status = entity.InquiryStatus(status)
		list = append(list, &v)
	}
	return list, rows.Err()
}

func (r *InquiryRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Inquiry, error) {
	in, err := scanInquiry(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return in, nil
}

func (r *InquiryRepo) exec(ctx context.Context, query string, args ...any) error {
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInquiry(row pgx.Row) (*entity.Inquiry, error) {
	var (
		in     entity.Inquiry
		status string
	)
	if err := row.Scan(&in.ID, &in.ProductID, &in.UserID, &in.Note, &status, &in.CreateTime); err != nil {
		return nil, err
	}
	in.Status = entity.InquiryStatus(status)
	return &in, nil
}
