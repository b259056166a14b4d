package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/reparto-app/reparto-api/internal/application/access"
	"github.com/reparto-app/reparto-api/internal/application/dto"
	"github.com/reparto-app/reparto-api/internal/application/usecase"
	"github.com/reparto-app/reparto-api/internal/domain"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
)

// ArticleHandler maneja las peticiones HTTP del catálogo de artículos.
type ArticleHandler struct {
	uc       *usecase.ArticleUseCase
	access   *access.UseCase
	redirect *Redirector
}

// NewArticleHandler construye el handler.
func NewArticleHandler(uc *usecase.ArticleUseCase, accessUC *access.UseCase, redirect *Redirector) *ArticleHandler {
	return &ArticleHandler{uc: uc, access: accessUC, redirect: redirect}
}

// Create alta de artículo (canal de formulario, admin). Un código de barras
// duplicado vuelve del motor como ErrDuplicate: no hay lectura previa de existencia.
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return h.redirect.WithMessage(c, "/admin", "Error al añadir el artículo")
	}
	if !h.access.Verify(entity.TierAdmin, in.Code) {
		return h.redirect.InvalidCode(c, "/admin")
	}
	if in.Barcode == "" || in.Name == "" {
		return h.redirect.WithMessage(c, "/admin", "Error al añadir el artículo")
	}
	if _, err := h.uc.Create(in); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return h.redirect.WithMessage(c, "", "Error: El código de barras ya existe")
		}
		return h.redirect.WithMessage(c, "/admin", "Error al añadir el artículo")
	}
	return h.redirect.WithMessage(c, "/admin", "Artículo añadido con éxito")
}

// GetByCode busca un artículo por código de barras. Devuelve una lista (vacía
// o de un elemento): el frontend itera sobre la respuesta.
func (h *ArticleHandler) GetByCode(c *fiber.Ctx) error {
	var in dto.ArticleByCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.GetByCode(in.Barcode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al recibir datos de la base de datos"})
	}
	items := []dto.ArticleResponse{}
	if out != nil {
		items = append(items, *out)
	}
	return c.JSON(items)
}

// List godoc
// @Summary      Listar el catálogo de artículos
// @Tags         articles
// @Produce      json
// @Success      200  {array}   dto.ArticleResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /verificar-article [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al recibir datos de la base de datos"})
	}
	return c.JSON(items)
}

// Delete borrado de artículo por id (admin).
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.access.Verify(entity.TierAdmin, in.Code) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Error: Código de verificación inválido o expirado"})
	}
	if err := h.uc.Delete(in.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al eliminar el artículo"})
	}
	return c.JSON(dto.StatusResponse{Message: 1})
}
