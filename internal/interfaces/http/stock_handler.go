package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

// StockHandler rutas del registro de unidades (protegido).
type StockHandler struct {
	registry *stock.Registry
	log      *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(registry *stock.Registry, log *logger.Logger) *StockHandler {
	return &StockHandler{registry: registry, log: log}
}

// Create godoc
// @Summary      Registrar unidad
// @Tags         stock
// @Security     Bearer
// @Param        body  body  dto.CreateUnitRequest  true  "variant_id, identificadores y datos comerciales"
// @Success      201   {object}  dto.UnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/units [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.registry.CreateUnit(c.Context(), GetScope(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBulk registra N unidades en una sola transacción (todo o nada).
// @Router       /api/stock/units/bulk [post]
func (h *StockHandler) CreateBulk(c *fiber.Ctx) error {
	var in dto.BulkCreateUnitsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.registry.CreateUnitsBulk(c.Context(), GetScope(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"total": len(out), "units": out})
}

// List godoc
// @Router       /api/stock/units [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var in dto.ListUnitsRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	in.DefaultPage()
	list, err := h.registry.ListUnits(c.Context(), GetScope(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "page": in.Page(len(list)), "units": list})
}

// GetByID godoc
// @Router       /api/stock/units/:id [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.registry.GetUnit(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Lookup búsqueda de punto de venta: ?kind=imei|serial|barcode&value=...
// @Router       /api/stock/units/lookup [get]
func (h *StockHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.registry.FindByIdentifier(c.Context(), GetScope(c), c.Query("kind"), c.Query("value"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Router       /api/stock/units/:id [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.registry.UpdateUnit(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Router       /api/stock/units/:id [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.registry.SoftDelete(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock variantes en o bajo su umbral mínimo.
// @Param        shop_id  query  string  false  "Vacío = tienda activa"
// @Router       /api/stock/low-stock [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.registry.LowStock(c.Context(), GetScope(c), c.Query("shop_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "items": list})
}
