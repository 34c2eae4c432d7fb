package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/inventory"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
)

// ProductHandler maneja catálogo y carga masiva (protegido).
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	ingest    *inventory.IngestUseCase
	uploadDir string
}

// NewProductHandler construye el handler. uploadDir vacío = directorio temporal del sistema.
func NewProductHandler(uc *usecase.ProductUseCase, ingest *inventory.IngestUseCase, uploadDir string) *ProductHandler {
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &ProductHandler{uc: uc, ingest: ingest, uploadDir: uploadDir}
}

// Upload godoc
// @Summary      Carga masiva de inventario (reemplaza el catálogo del usuario)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  ".csv o .xlsx"
// @Success      200   {object}  dto.IngestResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/products/upload [post]
func (h *ProductHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el campo file es requerido"})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	tempPath := filepath.Join(h.uploadDir, uuid.NewString()+ext)
	if err := c.SaveFile(file, tempPath); err != nil {
		return err
	}
	// Ingest elimina el archivo temporal en todos los casos.
	out, err := h.ingest.Ingest(c.Context(), GetUserID(c), tempPath, file.Filename)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Catálogo del usuario autenticado
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ByUser godoc
// @Summary      Catálogo de otro usuario (sólo visibles si no es el dueño)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserIDRequest  true  "user_id"
// @Success      200   {array}   dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/by-user [post]
func (h *ProductHandler) ByUser(c *fiber.Ctx) error {
	var in dto.UserIDRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.ListByUser(c.Context(), GetUserID(c), in.UserID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateVisibility godoc
// @Summary      Mostrar u ocultar un producto propio
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateVisibilityRequest  true  "id, visibility"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/updateVisibility [post]
func (h *ProductHandler) UpdateVisibility(c *fiber.Ctx) error {
	var in dto.UpdateVisibilityRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateVisibility(c.Context(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
