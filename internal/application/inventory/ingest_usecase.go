package inventory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/parser"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

// IngestUseCase reemplaza el catálogo completo de un vendedor a partir de un archivo
// CSV o XLSX y deja constancia de la corrida en upload_history.
type IngestUseCase struct {
	userRepo repository.UserRepository
	txRunner TxRunner
	limiter  *UploadLimiter
	log      *logger.Logger
	now      func() time.Time
}

// NewIngestUseCase construye el caso de uso.
func NewIngestUseCase(
	userRepo repository.UserRepository,
	txRunner TxRunner,
	limiter *UploadLimiter,
	log *logger.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		userRepo: userRepo,
		txRunner: txRunner,
		limiter:  limiter,
		log:      log.Named("ingest"),
		now:      time.Now,
	}
}

// Ingest procesa el archivo temporal tempPath subido como originalFilename por actorID.
// El archivo temporal se borra siempre, haya error o no. Las filas inválidas no abortan
// la corrida: se informan en el resultado. Un fallo de persistencia deshace todo.
func (uc *IngestUseCase) Ingest(ctx context.Context, actorID int64, tempPath, originalFilename string) (*dto.IngestResult, error) {
	defer func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			uc.log.Warn().Err(err).Str("path", tempPath).Msg("no se pudo borrar el archivo temporal")
		}
	}()

	if actorID <= 0 {
		return nil, domain.ErrMissingActor
	}
	p, err := parser.ForFilename(originalFilename)
	if err != nil {
		return nil, err
	}
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMissingActor, domain.ErrUserNotFound)
	}

	if err := uc.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer uc.limiter.Release()

	records, err := parseFile(ctx, p, tempPath)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	result := &dto.IngestResult{TotalEntries: len(records), Errors: []dto.RowError{}}
	products := make([]*entity.Product, 0, len(records))
	for _, rec := range records {
		v := catalog.Validate(rec)
		if !v.Valid {
			result.Errors = append(result.Errors, dto.RowError{Record: rec, MissingFields: v.MissingFields})
			continue
		}
		products = append(products, catalog.Project(rec, actorID, now))
	}
	result.SuccessfulEntries = len(products)
	result.FailedEntries = len(result.Errors)

	history := &entity.UploadHistory{
		UserID:            actorID,
		FileName:          filepath.Base(originalFilename),
		UploadDate:        now,
		TotalEntries:      result.TotalEntries,
		SuccessfulEntries: result.SuccessfulEntries,
		ErroredEntries:    result.FailedEntries,
	}

	var deleted int64
	err = uc.txRunner.RunCatalog(ctx, func(productRepo repository.ProductRepository, historyRepo repository.UploadHistoryRepository) error {
		if err := productRepo.LockCatalog(ctx, actorID); err != nil {
			return fmt.Errorf("bloquear catálogo: %w", err)
		}
		n, err := productRepo.DeleteByOwner(ctx, actorID)
		if err != nil {
			return fmt.Errorf("borrar catálogo anterior: %w", err)
		}
		deleted = n
		if len(products) > 0 {
			if _, err := productRepo.CreateBatch(ctx, products); err != nil {
				return fmt.Errorf("insertar productos: %w", err)
			}
		}
		if err := historyRepo.Create(ctx, history); err != nil {
			return fmt.Errorf("registrar historial: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Int64("user_id", actorID).Str("file", history.FileName).Msg("ingesta revertida")
		return nil, err
	}

	uc.log.Info().
		Int64("user_id", actorID).
		Str("file", history.FileName).
		Int("total", result.TotalEntries).
		Int("ok", result.SuccessfulEntries).
		Int("failed", result.FailedEntries).
		Int64("replaced", deleted).
		Msg("catálogo reemplazado")
	return result, nil
}

func parseFile(ctx context.Context, p parser.Parser, path string) ([]catalog.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	defer f.Close()
	return p.Parse(ctx, f)
}
