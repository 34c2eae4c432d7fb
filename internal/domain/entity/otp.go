package entity

import "time"

// OTPCode código de un solo uso pendiente de verificación para un usuario.
type OTPCode struct {
	UserID    int64
	Code      string
	ExpiresAt time.Time
	Attempts  int // verificaciones fallidas
}

// Expired informa si el código ya venció respecto a now.
func (o OTPCode) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
