package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/reparto-app/reparto-api/internal/application/access"
	"github.com/reparto-app/reparto-api/internal/application/dto"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
)

// AccessHandler maneja las peticiones HTTP de códigos de acceso.
type AccessHandler struct {
	uc       *access.UseCase
	redirect *Redirector
}

// NewAccessHandler construye el handler.
func NewAccessHandler(uc *access.UseCase, redirect *Redirector) *AccessHandler {
	return &AccessHandler{uc: uc, redirect: redirect}
}

// CodeExpired godoc
// @Summary      Consultar expiración del código de usuario
// @Tags         codes
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        code  formData  string  true  "Código presentado"
// @Success      200   {object}  dto.CodeExpiredResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /codi-expirat [post]
func (h *AccessHandler) CodeExpired(c *fiber.Ctx) error {
	return h.codeExpired(c, entity.TierUser)
}

// CodeExpiredAdmin variante admin de la consulta de expiración.
func (h *AccessHandler) CodeExpiredAdmin(c *fiber.Ctx) error {
	return h.codeExpired(c, entity.TierAdmin)
}

func (h *AccessHandler) codeExpired(c *fiber.Ctx, tier entity.Tier) error {
	var in dto.CodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.CodeExpiredResponse{Expired: true})
	}
	expired, err := h.uc.CheckExpired(tier, in.Code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al recibir datos de la base de datos"})
	}
	return c.JSON(dto.CodeExpiredResponse{Expired: expired})
}

// Rotate cambia el código de usuario (canal de formulario, autorizado por código admin).
// Sin expiración explícita se usa la medianoche del día siguiente.
func (h *AccessHandler) Rotate(c *fiber.Ctx) error {
	var in dto.RotateCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return h.redirect.WithMessage(c, "/admin", "Error al cambiar la contraseña")
	}
	if !h.uc.Verify(entity.TierAdmin, in.Code) {
		return h.redirect.InvalidCode(c, "/admin")
	}

	newCode, err := strconv.ParseInt(in.Password, 10, 32)
	if err != nil {
		return h.redirect.WithMessage(c, "/admin", "Error: La nueva contraseña debe ser numérica")
	}

	var expiresAt *time.Time
	if in.Expiration != "" {
		t, err := time.Parse(time.RFC3339, in.Expiration)
		if err != nil {
			return h.redirect.WithMessage(c, "/admin", "Error: Fecha de expiración inválida")
		}
		expiresAt = &t
	}

	if err := h.uc.Rotate(c.UserContext(), entity.TierUser, int32(newCode), expiresAt); err != nil {
		return h.redirect.WithMessage(c, "/admin", "Error al cambiar la contraseña")
	}
	return h.redirect.WithMessage(c, "/admin", "Contraseña cambiada con éxito")
}

// ActiveCode devuelve el código de usuario vigente (autorizado por código admin).
func (h *AccessHandler) ActiveCode(c *fiber.Ctx) error {
	var in dto.CodeRequest
	if err := c.BodyParser(&in); err != nil {
		return h.redirect.InvalidCode(c, "/admin")
	}
	if !h.uc.Verify(entity.TierAdmin, in.Code) {
		return h.redirect.InvalidCode(c, "/admin")
	}

	code, err := h.uc.ActiveCode(entity.TierUser)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al verificar el código de verificación"})
	}
	if code == nil {
		return c.JSON(dto.ActiveCodeResponse{Message: "No active code found"})
	}
	return c.JSON(dto.ActiveCodeResponse{Data: &dto.ActiveCodeData{Code: code.Code, Expiration: code.ExpiresAt}})
}
