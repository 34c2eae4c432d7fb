package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/application/auth"
	"github.com/jhoicas/Marketplace-api/internal/application/inventory"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/internal/bootstrap"
	infrapdf "github.com/jhoicas/Marketplace-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Marketplace-api/internal/interfaces/http"
	"github.com/jhoicas/Marketplace-api/pkg/config"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, err := bootstrap.Open(ctx, cfg, true, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer backend.Close()

	if err := os.MkdirAll(cfg.Upload.TempDir, 0o750); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.TempDir).Msg("directorio temporal de cargas")
	}

	limiter := inventory.NewUploadLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWait)
	ingestUC := inventory.NewIngestUseCase(backend.Users, backend.TxRunner, limiter, log)

	authUC := auth.NewAuthUseCase(backend.Users, backend.OTP, bootstrap.OTPSender(cfg.SMTP, log),
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		auth.OTPConfig{TTL: cfg.OTP.TTL, Length: cfg.OTP.Length, MaxAttempts: cfg.OTP.MaxAttempts},
	)

	// PDF: comprobante de pedido
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.Upload.MaxBodyMB * 1024 * 1024,
	}, log)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          usecase.NewUserUseCase(backend.Users),
		ProductUC:       usecase.NewProductUseCase(backend.Products),
		IngestUC:        ingestUC,
		UploadHistoryUC: usecase.NewUploadHistoryUseCase(backend.History, backend.Users),
		OrderUC:         usecase.NewOrderUseCase(backend.Orders, backend.Products, backend.Users, receipts),
		InquiryUC:       usecase.NewInquiryUseCase(backend.Inquiries, backend.Products),
		JWTSecret:       cfg.JWT.Secret,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.JWT.CookieName,
			TTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
			Secure: cfg.App.Env == "production",
		},
		UploadDir: cfg.Upload.TempDir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// las cargas en curso terminan su transacción antes de cerrar el pool
	if err := limiter.WaitForDrain(shutdownCtx); err != nil {
		log.Warn().Err(err).Int("active", limiter.ActiveCount()).Msg("cargas sin terminar al apagar")
	}

	log.Info().Msg("aplicación detenida")
}
