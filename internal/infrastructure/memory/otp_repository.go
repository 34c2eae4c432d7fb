package memory

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.OTPRepository = (*OTPRepository)(nil)

// OTPRepository códigos de un solo uso en memoria.
type OTPRepository struct {
	g guard
}

// NewOTPRepository crea el repositorio sobre el store.
func NewOTPRepository(s *Store) *OTPRepository {
	return &OTPRepository{g: guard{s: s}}
}

func (r *OTPRepository) Save(ctx context.Context, c *entity.OTPCode) error {
	defer r.g.write()()
	cp := *c
	cp.Attempts = 0
	r.g.s.otps[c.UserID] = &cp
	return nil
}

func (r *OTPRepository) Get(ctx context.Context, userID int64) (*entity.OTPCode, error) {
	defer r.g.read()()
	c, ok := r.g.s.otps[userID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *OTPRepository) RegisterFailure(ctx context.Context, userID int64) (int, error) {
	defer r.g.write()()
	c, ok := r.g.s.otps[userID]
	if !ok {
		return 0, nil
	}
	c.Attempts++
	return c.Attempts, nil
}

func (r *OTPRepository) Delete(ctx context.Context, userID int64) error {
	defer r.g.write()()
	delete(r.g.s.otps, userID)
	return nil
}
