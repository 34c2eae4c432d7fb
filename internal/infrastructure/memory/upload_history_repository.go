package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.UploadHistoryRepository = (*UploadHistoryRepository)(nil)

// UploadHistoryRepository historial de cargas en memoria (append-only).
type UploadHistoryRepository struct {
	g guard
}

// NewUploadHistoryRepository crea el repositorio sobre el store.
func NewUploadHistoryRepository(s *Store) *UploadHistoryRepository {
	return &UploadHistoryRepository{g: guard{s: s}}
}

func (r *UploadHistoryRepository) Create(ctx context.Context, h *entity.UploadHistory) error {
	defer r.g.write()()
	h.ID = r.g.s.nextID("upload_history")
	cp := *h
	r.g.s.history = append(r.g.s.history, &cp)
	return nil
}

func (r *UploadHistoryRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.UploadHistory, error) {
	defer r.g.read()()
	out := make([]*entity.UploadHistory, 0)
	for _, h := range r.g.s.history {
		if h.UserID == userID {
			cp := *h
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UploadDate.Equal(out[j].UploadDate) {
			return out[i].ID > out[j].ID
		}
		return out[i].UploadDate.After(out[j].UploadDate)
	})
	return out, nil
}
