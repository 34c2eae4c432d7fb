package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/bootstrap"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/mail"
	"github.com/jhoicas/Marketplace-api/pkg/config"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

func TestOpen_Memory(t *testing.T) {
	b, err := bootstrap.Open(context.Background(), &config.Config{Storage: config.StorageMemory}, true, logger.Nop())
	require.NoError(t, err)
	defer b.Close()
	assert.Nil(t, b.Pool)

	// el tx runner opera sobre el mismo store que los repositorios
	u := &entity.User{Username: "ana", Email: "ana@example.com", RegisteredLegalNumber: "L1"}
	require.NoError(t, b.Users.Create(context.Background(), u))
	err = b.TxRunner.RunCatalog(context.Background(), func(p repository.ProductRepository, h repository.UploadHistoryRepository) error {
		_, err := p.CreateBatch(context.Background(), []*entity.Product{{UserID: u.ID, StockID: "S1"}})
		return err
	})
	require.NoError(t, err)

	list, err := b.Products.ListByOwner(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOpen_StorageDesconocido(t *testing.T) {
	_, err := bootstrap.Open(context.Background(), &config.Config{Storage: "mongo"}, false, logger.Nop())
	assert.Error(t, err)
}

func TestOTPSender_SinSMTPUsaLog(t *testing.T) {
	s := bootstrap.OTPSender(config.SMTPConfig{}, logger.Nop())
	assert.IsType(t, &mail.LogSender{}, s)

	s = bootstrap.OTPSender(config.SMTPConfig{Host: "smtp.example.com", Port: 587}, logger.Nop())
	assert.IsType(t, &mail.SMTPSender{}, s)
}
