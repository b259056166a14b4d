package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reparto-app/reparto-api/internal/application/access"
	"github.com/reparto-app/reparto-api/internal/application/dto"
	"github.com/reparto-app/reparto-api/internal/application/usecase"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
)

// CenterHandler maneja las peticiones HTTP de centros de almacén.
type CenterHandler struct {
	uc       *usecase.CenterUseCase
	access   *access.UseCase
	redirect *Redirector
}

// NewCenterHandler construye el handler.
func NewCenterHandler(uc *usecase.CenterUseCase, accessUC *access.UseCase, redirect *Redirector) *CenterHandler {
	return &CenterHandler{uc: uc, access: accessUC, redirect: redirect}
}

// Create alta de centro (canal de formulario, admin).
func (h *CenterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return h.redirect.WithMessage(c, "/admin", "Error al añadir el centro")
	}
	if !h.access.Verify(entity.TierAdmin, in.Code) {
		return h.redirect.InvalidCode(c, "/admin")
	}
	if in.Name == "" {
		return h.redirect.WithMessage(c, "/admin", "Error al añadir el centro")
	}
	if _, err := h.uc.Create(in); err != nil {
		return h.redirect.WithMessage(c, "/admin", "Error al añadir el centro")
	}
	return h.redirect.WithMessage(c, "/admin", "Centro añadido con éxito")
}

// List devuelve todos los centros (sin código: solo lectura).
func (h *CenterHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al recibir datos de la base de datos"})
	}
	return c.JSON(items)
}

// Delete borrado de centro (canal de formulario, admin).
// El frontend envía el id a borrar en el campo delete.
func (h *CenterHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return h.redirect.WithMessage(c, "/admin", "Error al eliminar el centro")
	}
	if !h.access.Verify(entity.TierAdmin, in.Code) {
		return h.redirect.InvalidCode(c, "/admin")
	}
	if err := h.uc.Delete(in.ID); err != nil {
		return h.redirect.WithMessage(c, "/admin", "Error al eliminar el centro")
	}
	return h.redirect.WithMessage(c, "/admin", "Centro eliminado con éxito")
}
