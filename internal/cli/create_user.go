package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

var (
	userName     string
	userEmail    string
	userPassword string
	userLegal    string
	userCompany  string
	userAdmin    bool
	userVerified bool
)

func newCreateUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Crea un usuario (vendedor o admin)",
		Long: `Crea un usuario directamente en el almacenamiento. Es la única forma de crear
administradores: el registro público siempre asigna el rol seller.

Ejemplo:
  marketctl create-user --username root --email root@example.com --password 's3cret!!' --legal-number RL-0 --admin`,
		Args: cobra.NoArgs,
		RunE: createUser,
	}
	cmd.Flags().StringVar(&userName, "username", "", "Nombre de usuario (requerido)")
	cmd.Flags().StringVar(&userEmail, "email", "", "Email (requerido)")
	cmd.Flags().StringVar(&userPassword, "password", "", "Contraseña, mínimo 8 caracteres (requerido)")
	cmd.Flags().StringVar(&userLegal, "legal-number", "", "Número legal registrado (requerido)")
	cmd.Flags().StringVar(&userCompany, "company", "", "Nombre de la empresa")
	cmd.Flags().BoolVar(&userAdmin, "admin", false, "Crear con rol admin")
	cmd.Flags().BoolVar(&userVerified, "verified", false, "Marcar como verificado")
	for _, f := range []string{"username", "email", "password", "legal-number"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func createUser(cmd *cobra.Command, args []string) error {
	if len(userPassword) < 8 {
		return fmt.Errorf("la contraseña debe tener al menos 8 caracteres")
	}
	e, err := setup(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer e.backend.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(userPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	role := entity.RoleSeller
	if userAdmin {
		role = entity.RoleAdmin
	}
	now := time.Now()
	u := &entity.User{
		Username:              strings.TrimSpace(userName),
		Email:                 strings.ToLower(strings.TrimSpace(userEmail)),
		PasswordHash:          string(hash),
		CompanyName:           userCompany,
		RegisteredLegalNumber: strings.TrimSpace(userLegal),
		IsVerified:            userVerified,
		Role:                  role,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := e.backend.Users.Create(cmd.Context(), u); err != nil {
		return err
	}
	output(cmd, dto.ToUserResponse(u), "usuario %d creado (%s, rol %s)", u.ID, u.Email, u.Role)
	return nil
}
