package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/memory"
)

type env struct {
	store     *memory.Store
	users     *memory.UserRepository
	products  *memory.ProductRepository
	orders    *memory.OrderRepository
	inquiries *memory.InquiryRepository
	history   *memory.UploadHistoryRepository
}

func newEnv() *env {
	s := memory.NewStore()
	return &env{
		store:     s,
		users:     memory.NewUserRepository(s),
		products:  memory.NewProductRepository(s),
		orders:    memory.NewOrderRepository(s),
		inquiries: memory.NewInquiryRepository(s),
		history:   memory.NewUploadHistoryRepository(s),
	}
}

func (e *env) user(t *testing.T, name, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Username:              name,
		Email:                 name + "@example.com",
		RegisteredLegalNumber: "L-" + name,
		CompanyName:           name + " Watches",
		Role:                  role,
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *env) product(t *testing.T, ownerID int64, stock string, visible bool) *entity.Product {
	t.Helper()
	p := &entity.Product{
		UserID:     ownerID,
		StockID:    stock,
		Brand:      "Rolex",
		ModelNo:    "126610LN",
		TotalPrice: decimal.NewFromInt(14250),
		Visibility: visible,
		CreatedAt:  time.Now(),
	}
	_, err := e.products.CreateBatch(context.Background(), []*entity.Product{p})
	require.NoError(t, err)
	return p
}
