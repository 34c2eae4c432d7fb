// Package bootstrap arma el backend de persistencia elegido en la configuración.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Marketplace-api/internal/application/auth"
	"github.com/jhoicas/Marketplace-api/internal/application/inventory"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/mail"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/memory"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Marketplace-api/pkg/config"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

// Backend repositorios y tx runner de un mismo almacenamiento.
type Backend struct {
	Users     repository.UserRepository
	Products  repository.ProductRepository
	History   repository.UploadHistoryRepository
	Orders    repository.OrderRepository
	Inquiries repository.InquiryRepository
	OTP       repository.OTPRepository
	TxRunner  inventory.TxRunner

	// Pool es nil en el backend en memoria.
	Pool *pgxpool.Pool
}

// Close libera el pool si lo hay.
func (b *Backend) Close() {
	if b.Pool != nil {
		b.Pool.Close()
	}
}

// Open conecta al almacenamiento configurado. Con postgres aplica las migraciones
// pendientes cuando migrate es true.
func Open(ctx context.Context, cfg *config.Config, migrate bool, log *logger.Logger) (*Backend, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return Memory(memory.NewStore()), nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if migrate {
			if err := postgres.Migrate(ctx, pool, log); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
		}
		return Postgres(pool), nil
	default:
		return nil, fmt.Errorf("storage desconocido: %q", cfg.Storage)
	}
}

// Postgres construye el backend sobre un pool existente.
func Postgres(pool *pgxpool.Pool) *Backend {
	return &Backend{
		Users:     postgres.NewUserRepository(pool),
		Products:  postgres.NewProductRepository(pool),
		History:   postgres.NewUploadHistoryRepository(pool),
		Orders:    postgres.NewOrderRepository(pool),
		Inquiries: postgres.NewInquiryRepository(pool),
		OTP:       postgres.NewOTPRepository(pool),
		TxRunner:  postgres.NewTxRunner(pool),
		Pool:      pool,
	}
}

// Memory construye el backend en memoria sobre s.
func Memory(s *memory.Store) *Backend {
	return &Backend{
		Users:     memory.NewUserRepository(s),
		Products:  memory.NewProductRepository(s),
		History:   memory.NewUploadHistoryRepository(s),
		Orders:    memory.NewOrderRepository(s),
		Inquiries: memory.NewInquiryRepository(s),
		OTP:       memory.NewOTPRepository(s),
		TxRunner:  memory.NewTxRunner(s),
	}
}

// OTPSender SMTP si hay servidor configurado; si no, los códigos sólo se loguean.
func OTPSender(cfg config.SMTPConfig, log *logger.Logger) auth.OTPSender {
	if !cfg.Enabled() {
		return mail.NewLogSender(log)
	}
	return mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		From:     cfg.From,
	}, log)
}
