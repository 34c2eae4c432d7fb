package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
)

// InquiryHandler consultas de compra.
type InquiryHandler struct {
	uc *usecase.InquiryUseCase
}

// NewInquiryHandler construye el handler.
func NewInquiryHandler(uc *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Create godoc
// @Summary      Consultar por un producto (sesión opcional)
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInquiryRequest  true  "product_id, note"
// @Success      201   {object}  dto.InquiryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInquiryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	var actor *int64
	if id := GetUserID(c); id > 0 {
		actor = &id
	}
	out, err := h.uc.Create(c.Context(), actor, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Sent godoc
// @Summary      Consultas enviadas por el usuario
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InquiryViewResponse
// @Router       /api/inquiries/sent [get]
func (h *InquiryHandler) Sent(c *fiber.Ctx) error {
	out, err := h.uc.Sent(c.Context(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Received godoc
// @Summary      Consultas recibidas sobre productos del usuario
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InquiryViewResponse
// @Router       /api/inquiries/recive [get]
func (h *InquiryHandler) Received(c *fiber.Ctx) error {
	out, err := h.uc.Received(c.Context(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener consulta propia
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la consulta"
// @Success      200  {object}  dto.InquiryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inquiries/{id} [get]
func (h *InquiryHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.Context(), GetUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateNote godoc
// @Summary      Editar la nota de una consulta propia
// @Tags         inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la consulta"
// @Param        body  body  dto.UpdateInquiryNoteRequest  true  "note"
// @Success      200   {object}  dto.InquiryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inquiries/{id} [put]
func (h *InquiryHandler) UpdateNote(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateInquiryNoteRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateNote(c.Context(), GetUserID(c), id, in.Note)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Aceptar o rechazar una consulta sobre un producto propio
// @Tags         inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateInquiryStatusRequest  true  "id, status"
// @Success      200   {object}  dto.InquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inquiries/updatestatus [post]
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateInquiryStatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateStatus(c.Context(), GetUserID(c), in.ID, in.Status)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar consulta (interesado o dueño del producto)
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la consulta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), GetUserID(c), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "consulta eliminada"})
}

// ByProduct godoc
// @Summary      Consultas de un producto (público)
// @Tags         inquiries
// @Produce      json
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.InquiryResponse
// @Router       /api/inquiries/product/{product_id} [get]
func (h *InquiryHandler) ByProduct(c *fiber.Ctx) error {
	productID, err := paramID(c, "product_id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByProduct(c.Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
