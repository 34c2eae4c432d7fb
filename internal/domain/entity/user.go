package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User representa un actor del marketplace (vendedor/comprador) con datos de empresa.
type User struct {
	ID                    int64
	Username              string
	Email                 string
	PasswordHash          string // bcrypt, nunca plano después de persistir
	CompanyName           string
	CompanyAddress        string
	RegisteredLegalNumber string
	Plan                  string
	CompanyLogo           string
	IsVerified            bool
	Role                  string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
