package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
)

// UploadHistoryHandler expone el historial de cargas.
type UploadHistoryHandler struct {
	uc *usecase.UploadHistoryUseCase
}

func NewUploadHistoryHandler(uc *usecase.UploadHistoryUseCase) *UploadHistoryHandler {
	return &UploadHistoryHandler{uc: uc}
}

// ByUser godoc
// @Summary      Historial de cargas de un usuario, la más reciente primero
// @Tags         upload-history
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserIDRequest  true  "user_id"
// @Success      200   {array}   dto.UploadHistoryResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/upload-history/by-user [post]
func (h *UploadHistoryHandler) ByUser(c *fiber.Ctx) error {
	var in dto.UserIDRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.ListByUser(c.Context(), GetUserID(c), GetRole(c), in.UserID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
