package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/sales"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

// SaleHandler rutas de ventas (protegido).
type SaleHandler struct {
	processor *sales.Processor
	receipts  *sales.ReceiptUseCase
	log       *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(processor *sales.Processor, receipts *sales.ReceiptUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{processor: processor, receipts: receipts, log: log}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Todas las unidades del carrito pasan a vendidas o ninguna.
// @Tags         sales
// @Security     Bearer
// @Param        body  body  dto.CreateSaleRequest  true  "items, payment_method, discount, tax"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.processor.CreateSale(c.Context(), GetScope(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Router       /api/sales/:id [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.processor.GetSale(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Receipt devuelve el comprobante PDF.
// @Produce      application/pdf
// @Router       /api/sales/:id/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdf, err := h.receipts.Generate(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="venta-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}
