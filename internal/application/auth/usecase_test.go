package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/memory"
	"github.com/jhoicas/Marketplace-api/pkg/jwt"
)

const testSecret = "secret"

type captureSender struct {
	to   string
	code string
}

func (c *captureSender) SendOTP(ctx context.Context, to, code string, ttl time.Duration) error {
	c.to, c.code = to, code
	return nil
}

func newTestUseCase() (*AuthUseCase, *captureSender) {
	s := memory.NewStore()
	sender := &captureSender{}
	uc := NewAuthUseCase(
		memory.NewUserRepository(s),
		memory.NewOTPRepository(s),
		sender,
		JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "test"},
		OTPConfig{TTL: 10 * time.Minute, Length: 6},
	)
	return uc, sender
}

func signUp(t *testing.T, uc *AuthUseCase) *dto.UserResponse {
	t.Helper()
	u, err := uc.SignUp(context.Background(), dto.SignUpRequest{
		Username:              "ana",
		Email:                 "Ana@Example.com",
		Password:              "supersecreta",
		CompanyName:           "Ana Watches",
		RegisteredLegalNumber: "+57 300 000 0000",
	})
	require.NoError(t, err)
	return u
}

func TestSignUp_DuplicadoYHash(t *testing.T) {
	uc, _ := newTestUseCase()
	u := signUp(t, uc)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, "seller", u.Role)

	_, err := uc.SignUp(context.Background(), dto.SignUpRequest{
		Username: "otra", Email: "ana@example.com", Password: "supersecreta", RegisteredLegalNumber: "x",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignIn_OTPFlujoCompleto(t *testing.T) {
	uc, sender := newTestUseCase()
	u := signUp(t, uc)
	ctx := context.Background()

	res, err := uc.SignIn(ctx, dto.SignInRequest{Login: "ana@example.com", Password: "supersecreta"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.UserID)
	assert.Equal(t, "ana@example.com", sender.to)
	require.Len(t, sender.code, 6)
	assert.Regexp(t, `^[0-9]{6}$`, sender.code)

	login, err := uc.VerifyOTP(ctx, dto.VerifyOTPRequest{UserID: u.ID, OTP: sender.code})
	require.NoError(t, err)
	uid, role, err := jwt.Parse(testSecret, login.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)
	assert.Equal(t, "seller", role)

	// un solo uso
	_, err = uc.VerifyOTP(ctx, dto.VerifyOTPRequest{UserID: u.ID, OTP: sender.code})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

func TestVerifyOTP_CodigoIncorrectoYVencido(t *testing.T) {
	uc, sender := newTestUseCase()
	u := signUp(t, uc)
	ctx := context.Background()

	_, err := uc.SignIn(ctx, dto.SignInRequest{Login: "+57 300 000 0000", Password: "supersecreta"})
	require.NoError(t, err)

	wrong := "000000"
	if sender.code == wrong {
		wrong = "111111"
	}
	_, err = uc.VerifyOTP(ctx, dto.VerifyOTPRequest{UserID: u.ID, OTP: wrong})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)

	uc.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	_, err = uc.VerifyOTP(ctx, dto.VerifyOTPRequest{UserID: u.ID, OTP: sender.code})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

func TestVerifyOTP_SeInvalidaTrasIntentosFallidos(t *testing.T) {
	uc, sender := newTestUseCase()
	uc.otpCfg.MaxAttempts = 3
	u := signUp(t, uc)
	ctx := context.Background()

	_, err := uc.SignIn(ctx, dto.SignInRequest{Login: "ana@example.com", Password: "supersecreta"})
	require.NoError(t, err)
	wrong := "000000"
	if sender.code == wrong {
		wrong = "111111"
	}
	for i := 0; i < 3; i++ {
		_, err = uc.VerifyOTP(ctx, dto.VerifyOTPRequest{UserID: u.ID, OTP: wrong})
		require.ErrorIs(t, err, domain.ErrInvalidOTP)
	}
	// agotados los intentos, ni el código correcto sirve
	_, err = uc.VerifyOTP(ctx, dto.VerifyOTPRequest{UserID: u.ID, OTP: sender.code})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)

	// un código nuevo reinicia el contador
	_, err = uc.SignIn(ctx, dto.SignInRequest{Login: "ana@example.com", Password: "supersecreta"})
	require.NoError(t, err)
	wrong = "000000"
	if sender.code == wrong {
		wrong = "111111"
	}
	_, err = uc.VerifyOTP(ctx, dto.VerifyOTPRequest{UserID: u.ID, OTP: wrong})
	require.ErrorIs(t, err, domain.ErrInvalidOTP)
	_, err = uc.VerifyOTP(ctx, dto.VerifyOTPRequest{UserID: u.ID, OTP: sender.code})
	assert.NoError(t, err)
}

func TestSignIn_CredencialesInvalidas(t *testing.T) {
	uc, _ := newTestUseCase()
	signUp(t, uc)
	ctx := context.Background()

	_, err := uc.SignIn(ctx, dto.SignInRequest{Login: "ana@example.com", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.SignInDirect(ctx, dto.SignInRequest{Login: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPerfilYCambioDeContrasena(t *testing.T) {
	uc, _ := newTestUseCase()
	u := signUp(t, uc)
	ctx := context.Background()

	name := "Ana Relojes"
	out, err := uc.UpdateProfile(ctx, u.ID, dto.UpdateProfileRequest{CompanyName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, out.CompanyName)
	assert.Equal(t, "ana", out.Username)

	err = uc.ChangePassword(ctx, u.ID, dto.ChangePasswordRequest{CurrentPassword: "mala", NewPassword: "nuevaclave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	require.NoError(t, uc.ChangePassword(ctx, u.ID, dto.ChangePasswordRequest{CurrentPassword: "supersecreta", NewPassword: "nuevaclave"}))

	_, err = uc.SignInDirect(ctx, dto.SignInRequest{Login: "ana@example.com", Password: "nuevaclave"})
	assert.NoError(t, err)

	p, err := uc.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, name, p.CompanyName)
}
