package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository usuarios en memoria.
type UserRepository struct {
	g guard
}

// NewUserRepository crea el repositorio sobre el store.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{g: guard{s: s}}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	defer r.g.write()()
	for _, x := range r.g.s.users {
		if clash(x, u.Username, u.Email, u.RegisteredLegalNumber) {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.ID = r.g.s.nextID("users")
	cp := *u
	r.g.s.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	defer r.g.read()()
	u, ok := r.g.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	defer r.g.read()()
	for _, u := range r.g.s.users {
		if strings.EqualFold(u.Email, login) || (u.RegisteredLegalNumber != "" && u.RegisteredLegalNumber == login) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) ExistsAny(ctx context.Context, username, email, legalNumber string) (bool, error) {
	defer r.g.read()()
	for _, u := range r.g.s.users {
		if clash(u, username, email, legalNumber) {
			return true, nil
		}
	}
	return false, nil
}

func clash(u *entity.User, username, email, legal string) bool {
	return (username != "" && u.Username == username) ||
		(email != "" && strings.EqualFold(u.Email, email)) ||
		(legal != "" && u.RegisteredLegalNumber == legal)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u *entity.User) error {
	defer r.g.write()()
	cur, ok := r.g.s.users[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	cur.Username = u.Username
	cur.CompanyName = u.CompanyName
	cur.CompanyAddress = u.CompanyAddress
	cur.Plan = u.Plan
	cur.CompanyLogo = u.CompanyLogo
	cur.UpdatedAt = u.UpdatedAt
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	defer r.g.write()()
	cur, ok := r.g.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	cur.PasswordHash = hash
	return nil
}

func (r *UserRepository) SetVerified(ctx context.Context, id int64, verified bool) error {
	defer r.g.write()()
	cur, ok := r.g.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	cur.IsVerified = verified
	return nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	defer r.g.read()()
	all := make([]*entity.User, 0, len(r.g.s.users))
	for _, u := range r.g.s.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset >= len(all) {
		return []*entity.User{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	defer r.g.write()()
	if _, ok := r.g.s.users[id]; !ok {
		return 0, nil
	}
	delete(r.g.s.users, id)
	return 1, nil
}
