package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.UploadHistoryRepository = (*UploadHistoryRepo)(nil)

// UploadHistoryRepo historial de cargas sobre PostgreSQL (usable con pool o tx).
type UploadHistoryRepo struct {
	q Querier
}

// NewUploadHistoryRepository construye el adaptador.
func NewUploadHistoryRepository(q Querier) *UploadHistoryRepo {
	return &UploadHistoryRepo{q: q}
}

// Create agrega una corrida y asigna su ID.
func (r *UploadHistoryRepo) Create(ctx context.Context, h *entity.UploadHistory) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO upload_history (user_id, file_name, upload_date, total_entries, successful_entries, errored_entries)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		h.UserID, h.FileName, h.UploadDate, h.TotalEntries, h.SuccessfulEntries, h.ErroredEntries,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("insert upload_history: %w", err)
	}
	return nil
}

// ListByUser corridas del usuario, la más reciente primero.
func (r *UploadHistoryRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.UploadHistory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, file_name, upload_date, total_entries, successful_entries, errored_entries
		FROM upload_history WHERE user_id = $1
		ORDER BY upload_date DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list upload_history: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.UploadHistory, 0)
	for rows.Next() {
		var h entity.UploadHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.FileName, &h.UploadDate, &h.TotalEntries, &h.SuccessfulEntries, &h.ErroredEntries); err != nil {
			return nil, fmt.Errorf("scan upload_history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
