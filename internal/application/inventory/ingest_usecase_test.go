package inventory_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/application/inventory"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/memory"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

const header = "Stock ID,Model No,Brand,Gender,Metal Type,Case Size (MM),Condition,Box,Paper,Total Price ($US),Launch Year,Image Link,Video Link,Location\n"

func row(stock, brand string) string {
	return stock + ",116500," + brand + ",Men,Steel,40,Used,Yes,Yes,$20000,2019,http://i/1.jpg,http://v/1.mp4,NYC\n"
}

type fixture struct {
	store    *memory.Store
	users    *memory.UserRepository
	products *memory.ProductRepository
	history  *memory.UploadHistoryRepository
	uc       *inventory.IngestUseCase
}

func newFixture(t *testing.T, tx inventory.TxRunner) *fixture {
	t.Helper()
	s := memory.NewStore()
	f := &fixture{
		store:    s,
		users:    memory.NewUserRepository(s),
		products: memory.NewProductRepository(s),
		history:  memory.NewUploadHistoryRepository(s),
	}
	if tx == nil {
		tx = memory.NewTxRunner(s)
	}
	f.uc = inventory.NewIngestUseCase(f.users, tx, inventory.NewUploadLimiter(2, time.Second), logger.Nop())
	return f
}

func (f *fixture) seller(t *testing.T, name string) int64 {
	t.Helper()
	u := &entity.User{Username: name, Email: name + "@example.com", RegisteredLegalNumber: "L-" + name, Role: entity.RoleSeller}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u.ID
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "upload.tmp")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestIngest_ContadoresYErroresPorFila(t *testing.T) {
	f := newFixture(t, nil)
	uid := f.seller(t, "ana")
	ctx := context.Background()

	bad := row("S2", "")
	path := writeTemp(t, header+row("S1", "Rolex")+bad+row("S3", "Omega"))

	res, err := f.uc.Ingest(ctx, uid, path, "stock.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalEntries)
	assert.Equal(t, 2, res.SuccessfulEntries)
	assert.Equal(t, 1, res.FailedEntries)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"Brand"}, res.Errors[0].MissingFields)
	assert.Equal(t, "S2", res.Errors[0].Record["Stock ID"])

	list, err := f.products.ListByOwner(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, p := range list {
		assert.Equal(t, uid, p.UserID)
		assert.True(t, p.Visibility)
	}

	hist, err := f.history.ListByUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "stock.csv", hist[0].FileName)
	assert.Equal(t, 3, hist[0].TotalEntries)
	assert.Equal(t, 2, hist[0].SuccessfulEntries)
	assert.Equal(t, 1, hist[0].ErroredEntries)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "el archivo temporal debe borrarse")
}

func TestIngest_ReemplazaSoloElCatalogoDelActor(t *testing.T) {
	f := newFixture(t, nil)
	a := f.seller(t, "ana")
	b := f.seller(t, "beto")
	ctx := context.Background()

	_, err := f.uc.Ingest(ctx, a, writeTemp(t, header+row("A1", "Rolex")+row("A2", "Rolex")), "a.csv")
	require.NoError(t, err)
	_, err = f.uc.Ingest(ctx, b, writeTemp(t, header+row("B1", "Tudor")), "b.csv")
	require.NoError(t, err)

	// segunda carga de A: reemplazo total, no merge
	_, err = f.uc.Ingest(ctx, a, writeTemp(t, header+row("A9", "Patek")), "a2.csv")
	require.NoError(t, err)

	listA, err := f.products.ListByOwner(ctx, a)
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, "A9", listA[0].StockID)

	listB, err := f.products.ListByOwner(ctx, b)
	require.NoError(t, err)
	require.Len(t, listB, 1)
	assert.Equal(t, "B1", listB[0].StockID)

	hist, err := f.history.ListByUser(ctx, a)
	require.NoError(t, err)
	assert.Len(t, hist, 2)
}

func TestIngest_ArchivoSinFilasVaciaElCatalogo(t *testing.T) {
	f := newFixture(t, nil)
	a := f.seller(t, "ana")
	ctx := context.Background()

	_, err := f.uc.Ingest(ctx, a, writeTemp(t, header+row("A1", "Rolex")), "a.csv")
	require.NoError(t, err)
	res, err := f.uc.Ingest(ctx, a, writeTemp(t, header), "vacio.csv")
	require.NoError(t, err)
	assert.Zero(t, res.TotalEntries)
	assert.Empty(t, res.Errors)

	list, err := f.products.ListByOwner(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestIngest_ExtensionNoSoportada(t *testing.T) {
	f := newFixture(t, nil)
	a := f.seller(t, "ana")
	path := writeTemp(t, "lo que sea")

	_, err := f.uc.Ingest(context.Background(), a, path, "stock.txt")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestIngest_UsuarioInexistente(t *testing.T) {
	f := newFixture(t, nil)
	path := writeTemp(t, header+row("A1", "Rolex"))

	_, err := f.uc.Ingest(context.Background(), 999, path, "a.csv")
	assert.ErrorIs(t, err, domain.ErrMissingActor)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.uc.Ingest(context.Background(), 0, writeTemp(t, header), "a.csv")
	assert.ErrorIs(t, err, domain.ErrMissingActor)
}

func TestIngest_XLSXCorrupto(t *testing.T) {
	f := newFixture(t, nil)
	a := f.seller(t, "ana")
	_, err := f.uc.Ingest(context.Background(), a, writeTemp(t, "no es xlsx"), "a.xlsx")
	assert.ErrorIs(t, err, domain.ErrParse)
}

// failingTx envuelve el runner en memoria y hace fallar CreateBatch después del borrado.
type failingTx struct {
	inner *memory.TxRunner
}

type failingProducts struct {
	repository.ProductRepository
}

var errInjected = errors.New("fallo inyectado")

func (f failingProducts) CreateBatch(ctx context.Context, p []*entity.Product) (int64, error) {
	return 0, errInjected
}

func (t failingTx) RunCatalog(ctx context.Context, fn func(repository.ProductRepository, repository.UploadHistoryRepository) error) error {
	return t.inner.RunCatalog(ctx, func(pr repository.ProductRepository, hr repository.UploadHistoryRepository) error {
		return fn(failingProducts{pr}, hr)
	})
}

func TestIngest_RollbackSiFallaLaInsercion(t *testing.T) {
	s := memory.NewStore()
	users := memory.NewUserRepository(s)
	products := memory.NewProductRepository(s)
	history := memory.NewUploadHistoryRepository(s)
	ctx := context.Background()

	u := &entity.User{Username: "ana", Email: "ana@example.com", RegisteredLegalNumber: "L1"}
	require.NoError(t, users.Create(ctx, u))

	ok := inventory.NewIngestUseCase(users, memory.NewTxRunner(s), inventory.NewUploadLimiter(1, time.Second), logger.Nop())
	_, err := ok.Ingest(ctx, u.ID, writeTemp(t, header+row("A1", "Rolex")), "a.csv")
	require.NoError(t, err)

	broken := inventory.NewIngestUseCase(users, failingTx{memory.NewTxRunner(s)}, inventory.NewUploadLimiter(1, time.Second), logger.Nop())
	_, err = broken.Ingest(ctx, u.ID, writeTemp(t, header+row("Z1", "Omega")), "b.csv")
	require.ErrorIs(t, err, errInjected)

	list, err := products.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1, "el catálogo anterior debe seguir intacto")
	assert.Equal(t, "A1", list[0].StockID)

	hist, err := history.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, hist, 1)
}

func TestIngest_ConcurrenteMismoActorNoMezcla(t *testing.T) {
	f := newFixture(t, nil)
	a := f.seller(t, "ana")
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, content := range []string{
		header + row("X1", "Rolex") + row("X2", "Rolex"),
		header + row("Y1", "Omega") + row("Y2", "Omega") + row("Y3", "Omega"),
	} {
		wg.Add(1)
		go func(c string) {
			defer wg.Done()
			_, err := f.uc.Ingest(ctx, a, writeTemp(t, c), "c.csv")
			assert.NoError(t, err)
		}(content)
	}
	wg.Wait()

	list, err := f.products.ListByOwner(ctx, a)
	require.NoError(t, err)
	// el resultado corresponde exactamente a uno de los dos archivos
	require.True(t, len(list) == 2 || len(list) == 3)
	prefix := list[0].StockID[:1]
	for _, p := range list {
		assert.Equal(t, prefix, p.StockID[:1])
	}
}
