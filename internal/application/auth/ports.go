package auth

import (
	"context"
	"time"
)

// OTPSender entrega el código de un solo uso al usuario (email).
type OTPSender interface {
	SendOTP(ctx context.Context, to, code string, ttl time.Duration) error
}
