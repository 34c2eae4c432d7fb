package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
)

// UserHandler administración de usuarios (sólo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PageRequest  false  "limit, offset"
// @Success      200   {array}   dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users/get-all [post]
func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	var page dto.PageRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &page); err != nil {
			return err
		}
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateVerification godoc
// @Summary      Marcar un usuario como verificado o no
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateVerificationRequest  true  "user_id, is_verified"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/update-verification-status [post]
func (h *UserHandler) UpdateVerification(c *fiber.Ctx) error {
	var in dto.UpdateVerificationRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Verify(c.Context(), in.UserID, *in.IsVerified)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserIDRequest  true  "user_id"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/delete [post]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var in dto.UserIDRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), GetUserID(c), in.UserID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}
