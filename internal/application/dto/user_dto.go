package dto

import (
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// SignUpRequest entrada para registro (password en texto, se hashea en use case).
type SignUpRequest struct {
	Username              string `json:"username" validate:"required,min=3,max=100"`
	Email                 string `json:"email" validate:"required,email"`
	Password              string `json:"password" validate:"required,min=8"`
	CompanyName           string `json:"company_name" validate:"required,max=200"`
	CompanyAddress        string `json:"company_address" validate:"max=300"`
	RegisteredLegalNumber string `json:"registered_legal_number" validate:"required,max=100"`
	Plan                  string `json:"plan" validate:"max=50"`
	CompanyLogo           string `json:"company_logo" validate:"omitempty,url"`
}

// SignInRequest entrada para login: login es el email o el número legal registrado.
type SignInRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// VerifyOTPRequest segundo paso del login con código enviado por email.
type VerifyOTPRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	OTP    string `json:"otp" validate:"required,numeric"`
}

// UpdateProfileRequest campos editables del perfil propio.
type UpdateProfileRequest struct {
	Username       *string `json:"username" validate:"omitempty,min=3,max=100"`
	CompanyName    *string `json:"company_name" validate:"omitempty,max=200"`
	CompanyAddress *string `json:"company_address" validate:"omitempty,max=300"`
	Plan           *string `json:"plan" validate:"omitempty,max=50"`
	CompanyLogo    *string `json:"company_logo" validate:"omitempty,url"`
}

// ChangePasswordRequest cambio de contraseña con la actual.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UpdateVerificationRequest entrada admin para (des)verificar un usuario.
type UpdateVerificationRequest struct {
	UserID     int64 `json:"user_id" validate:"required,gt=0"`
	IsVerified *bool `json:"is_verified" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID                    int64     `json:"id"`
	Username              string    `json:"username"`
	Email                 string    `json:"email"`
	CompanyName           string    `json:"company_name"`
	CompanyAddress        string    `json:"company_address"`
	RegisteredLegalNumber string    `json:"registered_legal_number"`
	Plan                  string    `json:"plan"`
	CompanyLogo           string    `json:"company_logo"`
	IsVerified            bool      `json:"is_verified"`
	Role                  string    `json:"role"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// SignInOTPResponse respuesta del primer paso: el código se envió por email.
type SignInOTPResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse mapea la entidad sin exponer el hash.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:                    u.ID,
		Username:              u.Username,
		Email:                 u.Email,
		CompanyName:           u.CompanyName,
		CompanyAddress:        u.CompanyAddress,
		RegisteredLegalNumber: u.RegisteredLegalNumber,
		Plan:                  u.Plan,
		CompanyLogo:           u.CompanyLogo,
		IsVerified:            u.IsVerified,
		Role:                  u.Role,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

// ToUserResponses mapea una lista; nunca devuelve nil.
func ToUserResponses(list []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUserResponse(u))
	}
	return out
}
