package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Marketplace-api/internal/application/auth"
	"github.com/jhoicas/Marketplace-api/internal/application/inventory"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	UserUC          *usecase.UserUseCase
	ProductUC       *usecase.ProductUseCase
	IngestUC        *inventory.IngestUseCase
	UploadHistoryUC *usecase.UploadHistoryUseCase
	OrderUC         *usecase.OrderUseCase
	InquiryUC       *usecase.InquiryUseCase
	JWTSecret       string
	Cookie          CookieConfig
	UploadDir       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret, deps.Cookie.Name)
	optionalAuth := OptionalAuth(deps.JWTSecret, deps.Cookie.Name)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users: registro y login públicos, perfil protegido, administración sólo admin
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users")
	users.Post("/sign-up", authHandler.SignUp)
	users.Post("/sign-in", authHandler.SignIn)
	users.Post("/sign-in/password", authHandler.SignInPassword)
	users.Post("/verify-otp", authHandler.VerifyOTP)
	users.Post("/sign-out", requireAuth, authHandler.SignOut)
	users.Get("/profile", requireAuth, authHandler.Profile)
	users.Put("/profile", requireAuth, authHandler.UpdateProfile)
	users.Put("/change-password", requireAuth, authHandler.ChangePassword)
	users.Post("/get-all", requireAuth, adminOnly, userHandler.GetAll)
	users.Post("/update-verification-status", requireAuth, adminOnly, userHandler.UpdateVerification)
	users.Post("/delete", requireAuth, adminOnly, userHandler.Delete)

	// Products (protegido)
	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC, deps.IngestUC, deps.UploadDir)
	products.Post("/upload", productHandler.Upload)
	products.Get("/", productHandler.List)
	products.Post("/by-user", productHandler.ByUser)
	products.Post("/updateVisibility", productHandler.UpdateVisibility)

	// Upload history (protegido)
	history := api.Group("/upload-history", requireAuth)
	historyHandler := NewUploadHistoryHandler(deps.UploadHistoryUC)
	history.Post("/by-user", historyHandler.ByUser)

	// Orders (protegido)
	orders := api.Group("/orders", requireAuth)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id/receipt", orderHandler.Receipt)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Cancel)

	// Inquiries: alta con sesión opcional y listado por producto público; el resto protegido.
	// Las rutas estáticas van antes de /:id.
	inquiries := api.Group("/inquiries")
	inquiryHandler := NewInquiryHandler(deps.InquiryUC)
	inquiries.Post("/", optionalAuth, inquiryHandler.Create)
	inquiries.Get("/product/:product_id", inquiryHandler.ByProduct)
	inquiries.Get("/sent", requireAuth, inquiryHandler.Sent)
	inquiries.Get("/recive", requireAuth, inquiryHandler.Received)
	inquiries.Post("/updatestatus", requireAuth, inquiryHandler.UpdateStatus)
	inquiries.Get("/:id", requireAuth, inquiryHandler.GetByID)
	inquiries.Put("/:id", requireAuth, inquiryHandler.UpdateNote)
	inquiries.Delete("/:id", requireAuth, inquiryHandler.Delete)
}
