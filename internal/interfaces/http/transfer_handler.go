package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/transfer"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

// TransferHandler rutas de traslados entre tiendas (protegido).
type TransferHandler struct {
	workflow *transfer.Workflow
	log      *logger.Logger
}

// NewTransferHandler construye el handler.
func NewTransferHandler(workflow *transfer.Workflow, log *logger.Logger) *TransferHandler {
	return &TransferHandler{workflow: workflow, log: log}
}

// Create traslada una unidad (por unit_id o imei).
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.workflow.CreateTransfer(c.Context(), GetScope(c), in)
	if err != nil {
		return writeErrorWith(c, h.log, err, transferStatus)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBatch godoc
// @Router       /api/transfers/batch [post]
func (h *TransferHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateTransferBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.workflow.CreateTransferBatch(c.Context(), GetScope(c), in)
	if err != nil {
		return writeErrorWith(c, h.log, err, transferStatus)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.workflow.ListTransfers(c.Context(), GetScope(c), c.Query("shop_id"), page)
	if err != nil {
		return writeErrorWith(c, h.log, err, transferStatus)
	}
	return c.JSON(fiber.Map{"total": len(list), "page": page.Page(len(list)), "transfers": list})
}
