package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/application/auth"
	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/inventory"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/memory"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Marketplace-api/internal/interfaces/http"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

const csvHeader = "Stock ID,Model No,Brand,Gender,Metal Type,Case Size (MM),Condition,Box,Paper,Total Price ($US),Launch Year,Image Link,Video Link,Location\n"

func csvRow(stock, brand string) string {
	return stock + ",126610LN," + brand + ",Men,Steel,41,New,Yes,Yes,\"$14,250.00\",2023,https://img/x.jpg,https://vid/x.mp4,Miami\n"
}

// captureSender guarda el último OTP enviado por destinatario.
type captureSender struct {
	mu    sync.Mutex
	codes map[string]string
}

func (s *captureSender) SendOTP(_ context.Context, to, code string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[to] = code
	return nil
}

func (s *captureSender) last(to string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[to]
}

type apiEnv struct {
	app      *fiber.App
	users    *memory.UserRepository
	products *memory.ProductRepository
	otp      *captureSender
}

func newAPI(t *testing.T) *apiEnv {
	t.Helper()
	log := logger.Nop()
	s := memory.NewStore()
	users := memory.NewUserRepository(s)
	products := memory.NewProductRepository(s)
	history := memory.NewUploadHistoryRepository(s)
	sender := &captureSender{codes: map[string]string{}}

	app := apphttp.NewApp(apphttp.ServerConfig{AppName: "marketplace-test"}, log)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, memory.NewOTPRepository(s), sender,
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
			auth.OTPConfig{TTL: 5 * time.Minute, Length: 6},
		),
		UserUC:          usecase.NewUserUseCase(users),
		ProductUC:       usecase.NewProductUseCase(products),
		IngestUC:        inventory.NewIngestUseCase(users, memory.NewTxRunner(s), inventory.NewUploadLimiter(2, time.Second), log),
		UploadHistoryUC: usecase.NewUploadHistoryUseCase(history, users),
		OrderUC:         usecase.NewOrderUseCase(memory.NewOrderRepository(s), products, users, pdf.NewReceiptGenerator("Marketplace")),
		InquiryUC:       usecase.NewInquiryUseCase(memory.NewInquiryRepository(s), products),
		JWTSecret:       testJWTSecret,
		Cookie:          apphttp.CookieConfig{Name: testCookie, TTL: time.Hour},
		UploadDir:       t.TempDir(),
	})
	return &apiEnv{app: app, users: users, products: products, otp: sender}
}

func (e *apiEnv) seller(t *testing.T, name string) (*entity.User, string) {
	t.Helper()
	u := &entity.User{
		Username:              name,
		Email:                 name + "@example.com",
		RegisteredLegalNumber: "L-" + name,
		Role:                  entity.RoleSeller,
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u, tokenFor(t, u.ID, u.Role)
}

func (e *apiEnv) product(t *testing.T, ownerID int64, stock string) *entity.Product {
	t.Helper()
	p := &entity.Product{
		UserID:     ownerID,
		StockID:    stock,
		Brand:      "Rolex",
		TotalPrice: decimal.NewFromInt(14250),
		Visibility: true,
	}
	_, err := e.products.CreateBatch(context.Background(), []*entity.Product{p})
	require.NoError(t, err)
	return p
}

func (e *apiEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *apiEnv) upload(t *testing.T, token, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga masiva
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_CSVReemplazaCatalogoYRegistraHistorial(t *testing.T) {
	e := newAPI(t)
	_, token := e.seller(t, "ana")

	bad := "S2,,Rolex,Men,Steel,41,New,Yes,Yes,100,2020,https://img,https://vid,\n"
	resp := e.upload(t, token, "inventario.csv", csvHeader+csvRow("S1", "Rolex")+bad+csvRow("S3", "Omega"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[dto.IngestResult](t, resp)
	assert.Equal(t, 3, res.TotalEntries)
	assert.Equal(t, 2, res.SuccessfulEntries)
	assert.Equal(t, 1, res.FailedEntries)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"Model No", "Location"}, res.Errors[0].MissingFields)

	list := decode[[]dto.ProductResponse](t, e.do(t, http.MethodGet, "/api/products", token, nil))
	assert.Len(t, list, 2)

	// una segunda carga reemplaza, no acumula
	resp = e.upload(t, token, "inventario.csv", csvHeader+csvRow("S9", "Tudor"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	list = decode[[]dto.ProductResponse](t, e.do(t, http.MethodGet, "/api/products", token, nil))
	require.Len(t, list, 1)
	assert.Equal(t, "S9", list[0].StockID)
}

func TestUpload_HistorialSoloPropioOAdmin(t *testing.T) {
	e := newAPI(t)
	ana, anaToken := e.seller(t, "ana")
	_, otroToken := e.seller(t, "otro")

	resp := e.upload(t, anaToken, "a.csv", csvHeader+csvRow("S1", "Rolex"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	hist := decode[[]dto.UploadHistoryResponse](t,
		e.do(t, http.MethodPost, "/api/upload-history/by-user", anaToken, dto.UserIDRequest{UserID: ana.ID}))
	require.Len(t, hist, 1)
	assert.Equal(t, "a.csv", hist[0].FileName)
	assert.Equal(t, 1, hist[0].SuccessfulEntries)

	resp = e.do(t, http.MethodPost, "/api/upload-history/by-user", otroToken, dto.UserIDRequest{UserID: ana.ID})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin := tokenFor(t, 999, entity.RoleAdmin)
	hist = decode[[]dto.UploadHistoryResponse](t,
		e.do(t, http.MethodPost, "/api/upload-history/by-user", admin, dto.UserIDRequest{UserID: ana.ID}))
	assert.Len(t, hist, 1)
}

func TestUpload_ErroresDeEntrada(t *testing.T) {
	e := newAPI(t)
	_, token := e.seller(t, "ana")

	t.Run("formato no soportado", func(t *testing.T) {
		resp := e.upload(t, token, "inventario.txt", "hola")
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "UNSUPPORTED_FILE", body.Code)
	})

	t.Run("sin archivo", func(t *testing.T) {
		resp := e.do(t, http.MethodPost, "/api/products/upload", token, nil)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_FILE", body.Code)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		resp := e.upload(t, tokenFor(t, 12345, entity.RoleSeller), "a.csv", csvHeader+csvRow("S1", "Rolex"))
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_USER", body.Code)
	})

	t.Run("sin token", func(t *testing.T) {
		resp := e.upload(t, "", "a.csv", csvHeader)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestProducts_ByUserYVisibilidad(t *testing.T) {
	e := newAPI(t)
	ana, anaToken := e.seller(t, "ana")
	_, otroToken := e.seller(t, "otro")
	p := e.product(t, ana.ID, "S1")

	visible := false
	resp := e.do(t, http.MethodPost, "/api/products/updateVisibility", otroToken, dto.UpdateVisibilityRequest{ID: p.ID, Visibility: &visible})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decode[dto.ProductResponse](t,
		e.do(t, http.MethodPost, "/api/products/updateVisibility", anaToken, dto.UpdateVisibilityRequest{ID: p.ID, Visibility: &visible}))
	assert.False(t, out.Visibility)

	ajeno := decode[[]dto.ProductResponse](t,
		e.do(t, http.MethodPost, "/api/products/by-user", otroToken, dto.UserIDRequest{UserID: ana.ID}))
	assert.Empty(t, ajeno)

	propio := decode[[]dto.ProductResponse](t,
		e.do(t, http.MethodPost, "/api/products/by-user", anaToken, dto.UserIDRequest{UserID: ana.ID}))
	assert.Len(t, propio, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_AccesoAcotadoAlCliente(t *testing.T) {
	e := newAPI(t)
	vendedor, _ := e.seller(t, "vend")
	_, clienteToken := e.seller(t, "cliente")
	_, otroToken := e.seller(t, "otro")
	p := e.product(t, vendedor.ID, "S1")

	resp := e.do(t, http.MethodPost, "/api/orders", clienteToken, dto.CreateOrderRequest{
		ProductID:     p.ID,
		Quantity:      1,
		Price:         decimal.NewFromInt(14250),
		PaymentMethod: entity.PaymentCOD,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, "Pending", order.OrderStatus)

	path := fmt.Sprintf("/api/orders/%d", order.ID)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp = e.do(t, method, path, otroToken, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, method)
	}

	resp = e.do(t, http.MethodPut, path+"/status", clienteToken, dto.UpdateOrderStatusRequest{OrderStatus: "Lost"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	shipped := decode[dto.OrderResponse](t,
		e.do(t, http.MethodPut, path+"/status", clienteToken, dto.UpdateOrderStatusRequest{OrderStatus: "Shipped"}))
	assert.Equal(t, "Shipped", shipped.OrderStatus)

	canceled := decode[dto.OrderResponse](t, e.do(t, http.MethodDelete, path, clienteToken, nil))
	assert.Equal(t, "Canceled", canceled.OrderStatus)

	list := decode[[]dto.OrderResponse](t, e.do(t, http.MethodGet, "/api/orders", clienteToken, nil))
	require.Len(t, list, 1, "cancelar no borra el pedido")
}

func TestOrders_ReceiptPDF(t *testing.T) {
	e := newAPI(t)
	vendedor, _ := e.seller(t, "vend")
	_, clienteToken := e.seller(t, "cliente")
	p := e.product(t, vendedor.ID, "S1")

	order := decode[dto.OrderResponse](t, e.do(t, http.MethodPost, "/api/orders", clienteToken, dto.CreateOrderRequest{
		ProductID: p.ID, Quantity: 2, Price: decimal.NewFromInt(500), PaymentMethod: entity.PaymentPayPal,
	}))

	resp := e.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d/receipt", order.ID), clienteToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestInquiries_EstadoSoloPorDuenoDelProducto(t *testing.T) {
	e := newAPI(t)
	dueno, duenoToken := e.seller(t, "dueno")
	_, compradorToken := e.seller(t, "comprador")
	p := e.product(t, dueno.ID, "S1")

	resp := e.do(t, http.MethodPost, "/api/inquiries", compradorToken, dto.CreateInquiryRequest{ProductID: p.ID, Note: "¿precio final?"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	inq := decode[dto.InquiryResponse](t, resp)
	require.NotNil(t, inq.UserID)

	anon := decode[dto.InquiryResponse](t,
		e.do(t, http.MethodPost, "/api/inquiries", "", dto.CreateInquiryRequest{ProductID: p.ID, Note: "anónima"}))
	assert.Nil(t, anon.UserID)

	body := dto.UpdateInquiryStatusRequest{ID: inq.ID, Status: "Accept"}
	resp = e.do(t, http.MethodPost, "/api/inquiries/updatestatus", compradorToken, body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "el interesado no decide el estado")

	out := decode[dto.InquiryResponse](t, e.do(t, http.MethodPost, "/api/inquiries/updatestatus", duenoToken, body))
	assert.Equal(t, "Accept", out.Status)

	resp = e.do(t, http.MethodPost, "/api/inquiries/updatestatus", duenoToken, dto.UpdateInquiryStatusRequest{ID: inq.ID, Status: "Maybe"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	recibidas := decode[[]dto.InquiryViewResponse](t, e.do(t, http.MethodGet, "/api/inquiries/recive", duenoToken, nil))
	require.Len(t, recibidas, 1, "las anónimas no cuentan como recibidas")
	assert.Equal(t, inq.ID, recibidas[0].ID)
	assert.Equal(t, "comprador", recibidas[0].Username)

	enviadas := decode[[]dto.InquiryViewResponse](t, e.do(t, http.MethodGet, "/api/inquiries/sent", compradorToken, nil))
	require.Len(t, enviadas, 1)
	assert.Equal(t, "dueno", enviadas[0].Username)

	publicas := decode[[]dto.InquiryResponse](t, e.do(t, http.MethodGet, fmt.Sprintf("/api/inquiries/product/%d", p.ID), "", nil))
	assert.Len(t, publicas, 2)
}

func TestInquiries_NotaYBorrado(t *testing.T) {
	e := newAPI(t)
	dueno, duenoToken := e.seller(t, "dueno")
	_, compradorToken := e.seller(t, "comprador")
	_, otroToken := e.seller(t, "otro")
	p := e.product(t, dueno.ID, "S1")

	inq := decode[dto.InquiryResponse](t,
		e.do(t, http.MethodPost, "/api/inquiries", compradorToken, dto.CreateInquiryRequest{ProductID: p.ID, Note: "hola"}))
	path := fmt.Sprintf("/api/inquiries/%d", inq.ID)

	upd := decode[dto.InquiryResponse](t, e.do(t, http.MethodPut, path, compradorToken, dto.UpdateInquiryNoteRequest{Note: "nuevo"}))
	assert.Equal(t, "nuevo", upd.Note)

	resp := e.do(t, http.MethodDelete, path, otroToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = e.do(t, http.MethodDelete, path, duenoToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.do(t, http.MethodGet, path, compradorToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUsers_RegistroLoginConOTP(t *testing.T) {
	e := newAPI(t)

	signup := dto.SignUpRequest{
		Username:              "marta",
		Email:                 "Marta@Example.com",
		Password:              "s3cretos!",
		CompanyName:           "Marta Watches",
		RegisteredLegalNumber: "RL-1",
	}
	resp := e.do(t, http.MethodPost, "/api/users/sign-up", "", signup)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "marta@example.com", created.Email)

	resp = e.do(t, http.MethodPost, "/api/users/sign-up", "", signup)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/users/sign-in", "", dto.SignInRequest{Login: "marta@example.com", Password: "mala"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	step := decode[dto.SignInOTPResponse](t,
		e.do(t, http.MethodPost, "/api/users/sign-in", "", dto.SignInRequest{Login: "RL-1", Password: "s3cretos!"}))
	assert.Equal(t, created.ID, step.UserID)
	code := e.otp.last("marta@example.com")
	require.Len(t, code, 6)

	resp = e.do(t, http.MethodPost, "/api/users/verify-otp", "", dto.VerifyOTPRequest{UserID: step.UserID, OTP: code})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie {
			session = ck
		}
	}
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)
	require.NotNil(t, session)
	assert.Equal(t, login.Token, session.Value)

	// el código es de un solo uso
	resp = e.do(t, http.MethodPost, "/api/users/verify-otp", "", dto.VerifyOTPRequest{UserID: step.UserID, OTP: code})
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_OTP", body.Code)

	profile := decode[dto.UserResponse](t, e.do(t, http.MethodGet, "/api/users/profile", login.Token, nil))
	assert.Equal(t, "marta", profile.Username)
}

func TestUsers_AdministracionSoloAdmin(t *testing.T) {
	e := newAPI(t)
	ana, anaToken := e.seller(t, "ana")
	admin := &entity.User{Username: "root", Email: "root@example.com", RegisteredLegalNumber: "L-root", Role: entity.RoleAdmin}
	require.NoError(t, e.users.Create(context.Background(), admin))
	adminToken := tokenFor(t, admin.ID, admin.Role)

	resp := e.do(t, http.MethodPost, "/api/users/get-all", anaToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	all := decode[[]dto.UserResponse](t, e.do(t, http.MethodPost, "/api/users/get-all", adminToken, nil))
	assert.Len(t, all, 2)

	yes := true
	verified := decode[dto.UserResponse](t, e.do(t, http.MethodPost, "/api/users/update-verification-status", adminToken,
		dto.UpdateVerificationRequest{UserID: ana.ID, IsVerified: &yes}))
	assert.True(t, verified.IsVerified)

	resp = e.do(t, http.MethodPost, "/api/users/delete", adminToken, dto.UserIDRequest{UserID: admin.ID})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/users/delete", adminToken, dto.UserIDRequest{UserID: ana.ID})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRutaInexistente_RespuestaDeErrorJSON(t *testing.T) {
	e := newAPI(t)
	resp := e.do(t, http.MethodGet, "/api/no-existe", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Contains(t, body.Message, "/api/no-existe")
}

func TestHealth(t *testing.T) {
	e := newAPI(t)
	resp := e.do(t, http.MethodGet, "/health", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
