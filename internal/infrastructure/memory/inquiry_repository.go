package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepository)(nil)

// InquiryRepository consultas en memoria; los listados cruzan con productos y usuarios.
type InquiryRepository struct {
	g guard
}

// NewInquiryRepository crea el repositorio sobre el store.
func NewInquiryRepository(s *Store) *InquiryRepository {
	return &InquiryRepository{g: guard{s: s}}
}

func (r *InquiryRepository) Create(ctx context.Context, i *entity.Inquiry) error {
	defer r.g.write()()
	if _, ok := r.g.s.products[i.ProductID]; !ok {
		return domain.ErrNotFound
	}
	i.ID = r.g.s.nextID("inquiries")
	cp := *i
	r.g.s.inquiries[i.ID] = &cp
	return nil
}

func (r *InquiryRepository) GetByIDForInquirer(ctx context.Context, id, userID int64) (*entity.Inquiry, error) {
	defer r.g.read()()
	i, ok := r.g.s.inquiries[id]
	if !ok || i.UserID == nil || *i.UserID != userID {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *InquiryRepository) GetByIDForProductOwner(ctx context.Context, id, ownerID int64) (*entity.Inquiry, error) {
	defer r.g.read()()
	i, ok := r.g.s.inquiries[id]
	if !ok || r.ownerOf(i.ProductID) != ownerID {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *InquiryRepository) UpdateNote(ctx context.Context, id int64, note string) error {
	defer r.g.write()()
	i, ok := r.g.s.inquiries[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.Note = note
	return nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int64, status entity.InquiryStatus) error {
	defer r.g.write()()
	i, ok := r.g.s.inquiries[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.Status = status
	return nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id, actorID int64) (int64, error) {
	defer r.g.write()()
	i, ok := r.g.s.inquiries[id]
	if !ok {
		return 0, nil
	}
	isInquirer := i.UserID != nil && *i.UserID == actorID
	if !isInquirer && r.ownerOf(i.ProductID) != actorID {
		return 0, nil
	}
	delete(r.g.s.inquiries, id)
	return 1, nil
}

// ListSent consultas creadas por userID, con el vendedor como contraparte.
func (r *InquiryRepository) ListSent(ctx context.Context, userID int64) ([]*entity.InquiryView, error) {
	defer r.g.read()()
	out := make([]*entity.InquiryView, 0)
	for _, i := range r.g.s.inquiries {
		if i.UserID == nil || *i.UserID != userID {
			continue
		}
		p, ok := r.g.s.products[i.ProductID]
		if !ok {
			continue
		}
		out = append(out, r.view(i, p, r.g.s.users[p.UserID]))
	}
	sortViews(out)
	return out, nil
}

// ListReceived consultas sobre productos de ownerID hechas por otros usuarios, con el
// interesado como contraparte. Las anónimas no entran: no tienen interesado.
func (r *InquiryRepository) ListReceived(ctx context.Context, ownerID int64) ([]*entity.InquiryView, error) {
	defer r.g.read()()
	out := make([]*entity.InquiryView, 0)
	for _, i := range r.g.s.inquiries {
		p, ok := r.g.s.products[i.ProductID]
		if !ok || p.UserID != ownerID {
			continue
		}
		if i.UserID == nil || *i.UserID == ownerID {
			continue
		}
		out = append(out, r.view(i, p, r.g.s.users[*i.UserID]))
	}
	sortViews(out)
	return out, nil
}

func (r *InquiryRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.Inquiry, error) {
	defer r.g.read()()
	out := make([]*entity.Inquiry, 0)
	for _, i := range r.g.s.inquiries {
		if i.ProductID == productID {
			cp := *i
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return out, nil
}

func (r *InquiryRepository) ownerOf(productID int64) int64 {
	if p, ok := r.g.s.products[productID]; ok {
		return p.UserID
	}
	return 0
}

func (r *InquiryRepository) view(i *entity.Inquiry, p *entity.Product, u *entity.User) *entity.InquiryView {
	v := &entity.InquiryView{
		Inquiry:    *i,
		Brand:      p.Brand,
		Gender:     p.Gender,
		TotalPrice: p.TotalPrice.StringFixed(2),
		LaunchYear: p.LaunchYear,
		ModelNo:    p.ModelNo,
		MetalType:  p.MetalType,
		Condition:  p.Condition,
		ImageLink:  p.ImageLink,
		Location:   p.Location,
	}
	if p.CaseSize != nil {
		cs := p.CaseSize.StringFixed(2)
		v.CaseSize = &cs
	}
	if u != nil {
		v.Username = u.Username
		v.Email = u.Email
		v.CompanyName = u.CompanyName
		v.CompanyAddress = u.CompanyAddress
	}
	return v
}

func sortViews(v []*entity.InquiryView) {
	sort.Slice(v, func(a, b int) bool { return v[a].ID > v[b].ID })
}
