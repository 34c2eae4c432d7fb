package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/pkg/jwt"
)

const otpAlphabet = "0123456789"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// OTPConfig vigencia y largo del código de login.
// Tras MaxAttempts verificaciones fallidas el código se invalida (0 = DefaultOTPMaxAttempts).
type OTPConfig struct {
	TTL         time.Duration
	Length      int
	MaxAttempts int
}

const DefaultOTPMaxAttempts = 5

// AuthUseCase casos de uso de autenticación: registro, login en dos pasos y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	sender   OTPSender
	jwtCfg   JWTConfig
	otpCfg   OTPConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	otpRepo repository.OTPRepository,
	sender OTPSender,
	jwtCfg JWTConfig,
	otpCfg OTPConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		sender:   sender,
		jwtCfg:   jwtCfg,
		otpCfg:   otpCfg,
		now:      time.Now,
	}
}

// SignUp crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si username, email o número legal ya existen.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.UserResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := uc.userRepo.ExistsAny(ctx, in.Username, in.Email, in.RegisteredLegalNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		Username:              in.Username,
		Email:                 in.Email,
		PasswordHash:          string(hash),
		CompanyName:           in.CompanyName,
		CompanyAddress:        in.CompanyAddress,
		RegisteredLegalNumber: in.RegisteredLegalNumber,
		Plan:                  in.Plan,
		CompanyLogo:           in.CompanyLogo,
		Role:                  entity.RoleSeller,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

// SignIn primer paso del login: valida la contraseña y envía un OTP por email.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.SignInOTPResponse, error) {
	user, err := uc.checkPassword(ctx, in.Login, in.Password)
	if err != nil {
		return nil, err
	}
	code, err := gonanoid.Generate(otpAlphabet, uc.otpCfg.Length)
	if err != nil {
		return nil, fmt.Errorf("generar otp: %w", err)
	}
	otp := &entity.OTPCode{UserID: user.ID, Code: code, ExpiresAt: uc.now().Add(uc.otpCfg.TTL)}
	if err := uc.otpRepo.Save(ctx, otp); err != nil {
		return nil, err
	}
	if err := uc.sender.SendOTP(ctx, user.Email, code, uc.otpCfg.TTL); err != nil {
		return nil, fmt.Errorf("enviar otp: %w", err)
	}
	return &dto.SignInOTPResponse{Message: "OTP enviado a su email", UserID: user.ID}, nil
}

// VerifyOTP segundo paso: el código es de un solo uso y vence a los TTL minutos.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, in dto.VerifyOTPRequest) (*dto.LoginResponse, error) {
	stored, err := uc.otpRepo.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrInvalidOTP
	}
	if stored.Expired(uc.now()) {
		_ = uc.otpRepo.Delete(ctx, in.UserID)
		return nil, domain.ErrInvalidOTP
	}
	if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(in.OTP)) != 1 {
		n, err := uc.otpRepo.RegisterFailure(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if n >= uc.maxAttempts() {
			if err := uc.otpRepo.Delete(ctx, in.UserID); err != nil {
				return nil, err
			}
		}
		return nil, domain.ErrInvalidOTP
	}
	if err := uc.otpRepo.Delete(ctx, in.UserID); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.issue(user)
}

func (uc *AuthUseCase) maxAttempts() int {
	if uc.otpCfg.MaxAttempts > 0 {
		return uc.otpCfg.MaxAttempts
	}
	return DefaultOTPMaxAttempts
}

// SignInDirect login de un paso con contraseña (clientes que no usan OTP).
func (uc *AuthUseCase) SignInDirect(ctx context.Context, in dto.SignInRequest) (*dto.LoginResponse, error) {
	user, err := uc.checkPassword(ctx, in.Login, in.Password)
	if err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// Profile datos del usuario autenticado.
func (uc *AuthUseCase) Profile(ctx context.Context, actorID int64) (*dto.UserResponse, error) {
	user, err := uc.mustUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

// UpdateProfile aplica sólo los campos presentes.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, actorID int64, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.mustUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if in.Username != nil && *in.Username != user.Username {
		taken, err := uc.userRepo.ExistsAny(ctx, *in.Username, "", "")
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Username = *in.Username
	}
	if in.CompanyName != nil {
		user.CompanyName = *in.CompanyName
	}
	if in.CompanyAddress != nil {
		user.CompanyAddress = *in.CompanyAddress
	}
	if in.Plan != nil {
		user.Plan = *in.Plan
	}
	if in.CompanyLogo != nil {
		user.CompanyLogo = *in.CompanyLogo
	}
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

// ChangePassword exige la contraseña actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, actorID int64, in dto.ChangePasswordRequest) error {
	user, err := uc.mustUser(ctx, actorID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

func (uc *AuthUseCase) checkPassword(ctx context.Context, login, password string) (*entity.User, error) {
	user, err := uc.userRepo.FindByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		return nil, err
	}
	// usuario inexistente y contraseña errónea responden igual
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func (uc *AuthUseCase) mustUser(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, domain.ErrMissingActor
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}
