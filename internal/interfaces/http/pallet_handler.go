package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/reparto-app/reparto-api/internal/application/access"
	"github.com/reparto-app/reparto-api/internal/application/dto"
	"github.com/reparto-app/reparto-api/internal/application/pallet"
	"github.com/reparto-app/reparto-api/internal/domain"
	"github.com/reparto-app/reparto-api/internal/domain/entity"
)

// PalletHandler maneja las peticiones HTTP de palets.
// Cada operación mutadora pasa primero por el verificador de códigos: user
// para operaciones de palet, admin para las manuales de administración.
type PalletHandler struct {
	uc       *pallet.UseCase
	access   *access.UseCase
	redirect *Redirector
}

// NewPalletHandler construye el handler.
func NewPalletHandler(uc *pallet.UseCase, accessUC *access.UseCase, redirect *Redirector) *PalletHandler {
	return &PalletHandler{uc: uc, access: accessUC, redirect: redirect}
}

// Upload alta por escaneo (canal de formulario). En un almacén principal
// reenvía el palet aceptado más antiguo en lugar de crear uno nuevo.
func (h *PalletHandler) Upload(c *fiber.Ctx) error {
	var in dto.ScanInRequest
	if err := c.BodyParser(&in); err != nil {
		return h.redirect.WithMessage(c, "", "Error al enviar datos a la base de datos")
	}
	if !h.access.Verify(entity.TierUser, in.Code) {
		return h.redirect.InvalidCode(c, "/login")
	}

	var ts time.Time
	if in.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, in.Timestamp); err == nil {
			ts = t
		}
	}

	result, err := h.uc.ScanIn(pallet.ScanInInput{
		ArticleCode: in.Barcode,
		WarehouseID: in.WarehouseID,
		Timestamp:   ts,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.redirect.WithMessage(c, "", "Error: No hay ningún palet aceptado pendiente de reenviar")
		}
		return h.redirect.WithMessage(c, "", "Error al enviar datos a la base de datos")
	}
	if result.Forwarded {
		return h.redirect.WithMessage(c, "", "Palet reenviado desde el almacén principal")
	}
	return h.redirect.WithMessage(c, "", "Datos del formulario recibidos y almacenados en la base de datos")
}

// Delete borra un palet por id. Responde con el formato compacto del frontend
// de escaneo: message=1 borrado, message=0 código rechazado.
func (h *PalletHandler) Delete(c *fiber.Ctx) error {
	var in dto.PalletByIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.access.Verify(entity.TierUser, in.Code) {
		return c.JSON(dto.StatusResponse{Message: 0})
	}
	if err := h.uc.DeleteByID(in.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "palet no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al eliminar el palet"})
	}
	return c.JSON(dto.StatusResponse{Message: 1})
}

// AcceptByID acepta un palet concreto; exige que esté pendiente.
func (h *PalletHandler) AcceptByID(c *fiber.Ctx) error {
	var in dto.PalletByIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.access.Verify(entity.TierUser, in.Code) {
		return c.JSON(dto.StatusResponse{Message: 0})
	}
	if err := h.uc.AcceptByID(in.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "palet pendiente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al aceptar el palet"})
	}
	return c.JSON(dto.StatusResponse{Message: 1})
}

// AcceptOldest godoc
// @Summary      Aceptar el palet pendiente más antiguo de un almacén y artículo
// @Tags         pallets
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        code     formData  string  true  "Código de verificación"
// @Param        barcode  formData  string  true  "Código de barras del artículo"
// @Param        almacen  formData  int     true  "ID del almacén"
// @Success      200  {object}  dto.PalletDetailResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /recepcionar-palet [post]
func (h *PalletHandler) AcceptOldest(c *fiber.Ctx) error {
	var in dto.AcceptOldestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.access.Verify(entity.TierUser, in.Code) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Error: Código de verificación inválido o expirado"})
	}
	p, err := h.uc.Accept(in.WarehouseID, in.Barcode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay palets pendientes para ese almacén y artículo"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al aceptar el palet"})
	}
	return c.JSON(toPalletResponse(p))
}

// Query movimientos de un artículo con nombres resueltos (sin código: solo lectura).
func (h *PalletHandler) Query(c *fiber.Ctx) error {
	var in dto.QueryByArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	list, err := h.uc.FindByArticle(in.Barcode, in.WarehouseID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al recibir datos de la base de datos"})
	}
	return c.JSON(toPalletDetailResponses(list))
}

// Filter consulta filtrada de palets (admin).
func (h *PalletHandler) Filter(c *fiber.Ctx) error {
	var in dto.FilterPalletsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.access.Verify(entity.TierAdmin, in.Code) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Error: Código de verificación inválido o expirado"})
	}

	filter := entity.PalletFilter{
		ArticleCode: in.Barcode,
		WarehouseID: in.WarehouseID,
		State:       in.State,
		Limit:       in.Limit,
		Offset:      in.Offset,
	}
	if in.From != "" {
		t, err := time.Parse(time.RFC3339, in.From)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde: fecha inválida"})
		}
		filter.From = &t
	}
	if in.To != "" {
		t, err := time.Parse(time.RFC3339, in.To)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hasta: fecha inválida"})
		}
		filter.To = &t
	}

	list, err := h.uc.Filter(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al recibir datos de la base de datos"})
	}
	return c.JSON(toPalletDetailResponses(list))
}

// BulkInsert alta manual de N palets simulados ya aceptados (admin).
func (h *PalletHandler) BulkInsert(c *fiber.Ctx) error {
	var in dto.BulkInsertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.access.Verify(entity.TierAdmin, in.Code) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Error: Código de verificación inválido o expirado"})
	}
	n, err := h.uc.BulkInsert(in.Barcode, in.WarehouseID, in.Count)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode y count > 0 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al insertar los palets"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BulkResponse{Affected: n})
}

// BulkDelete borrado manual de hasta N palets, los más antiguos primero (admin).
// Pedir más de los que existen no es un fallo: se borran los que haya.
func (h *PalletHandler) BulkDelete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.access.Verify(entity.TierAdmin, in.Code) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Error: Código de verificación inválido o expirado"})
	}
	n, err := h.uc.BulkDelete(in.Barcode, in.Count)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode y count > 0 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al eliminar los palets"})
	}
	return c.JSON(dto.BulkResponse{Affected: n})
}

// Simulate alta de un único palet simulado ya aceptado.
func (h *PalletHandler) Simulate(c *fiber.Ctx) error {
	var in dto.SimulateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !h.access.Verify(entity.TierUser, in.Code) {
		return c.JSON(dto.StatusResponse{Message: 0})
	}
	if err := h.uc.Simulate(in.Barcode, in.WarehouseID); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al simular el palet"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{Message: 1})
}

func toPalletResponse(p *entity.Pallet) dto.PalletDetailResponse {
	return dto.PalletDetailResponse{
		ID:          p.ID,
		ArticleCode: p.ArticleCode,
		WarehouseID: p.WarehouseID,
		Timestamp:   p.Timestamp,
		State:       p.State,
		ReceivedAt:  p.ReceivedAt,
		Simulated:   p.Simulated,
	}
}

func toPalletDetailResponses(list []*entity.PalletDetail) []dto.PalletDetailResponse {
	items := make([]dto.PalletDetailResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.PalletDetailResponse{
			ID:            d.ID,
			ArticleCode:   d.ArticleCode,
			ArticleName:   d.ArticleName,
			WarehouseID:   d.WarehouseID,
			WarehouseName: d.WarehouseName,
			Timestamp:     d.Timestamp,
			State:         d.State,
			ReceivedAt:    d.ReceivedAt,
			Simulated:     d.Simulated,
		})
	}
	return items
}
