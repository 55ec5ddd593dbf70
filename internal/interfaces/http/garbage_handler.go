package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/garbage"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

// GarbageHandler rutas del flujo de unidades defectuosas (protegido).
type GarbageHandler struct {
	workflow *garbage.Workflow
	log      *logger.Logger
}

// NewGarbageHandler construye el handler.
func NewGarbageHandler(workflow *garbage.Workflow, log *logger.Logger) *GarbageHandler {
	return &GarbageHandler{workflow: workflow, log: log}
}

// MarkDefective godoc
// @Router       /api/garbage [post]
func (h *GarbageHandler) MarkDefective(c *fiber.Ctx) error {
	var in dto.MarkDefectiveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.workflow.MarkDefective(c.Context(), GetScope(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Clear devuelve la unidad a stock y borra el registro.
// @Router       /api/garbage/:id [delete]
func (h *GarbageHandler) Clear(c *fiber.Ctx) error {
	out, err := h.workflow.ClearDefective(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateReason godoc
// @Router       /api/garbage/:id/reason [put]
func (h *GarbageHandler) UpdateReason(c *fiber.Ctx) error {
	var in dto.UpdateGarbageReasonRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.workflow.UpdateReason(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Router       /api/garbage/:id/deactivate [post]
func (h *GarbageHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.workflow.Deactivate(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List ?shop_id=&active=true
// @Router       /api/garbage [get]
func (h *GarbageHandler) List(c *fiber.Ctx) error {
	list, err := h.workflow.List(c.Context(), GetScope(c), c.Query("shop_id"), c.QueryBool("active", false))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "records": list})
}
