package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/internal/application/garbage"
	"github.com/jhoicas/Stock-api/internal/application/sales"
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/internal/application/transfer"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

// Roles que pueden dar de baja unidades y registros de defecto.
var managerRoles = []string{"owner", "manager"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Registry  *stock.Registry
	Sales     *sales.Processor
	Receipts  *sales.ReceiptUseCase
	Transfers *transfer.Workflow
	Garbage   *garbage.Workflow
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Stock
	stockHandler := NewStockHandler(deps.Registry, log)
	units := api.Group("/stock/units")
	units.Post("/", stockHandler.Create)
	units.Post("/bulk", stockHandler.CreateBulk)
	units.Get("/", stockHandler.List)
	units.Get("/lookup", stockHandler.Lookup)
	units.Get("/:id", stockHandler.GetByID)
	units.Put("/:id", stockHandler.Update)
	units.Delete("/:id", RequireRole(managerRoles...), stockHandler.Delete)
	api.Get("/stock/low-stock", stockHandler.LowStock)

	// Ventas
	saleHandler := NewSaleHandler(deps.Sales, deps.Receipts, log)
	salesGroup := api.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Traslados
	transferHandler := NewTransferHandler(deps.Transfers, log)
	transfers := api.Group("/transfers")
	transfers.Post("/", transferHandler.Create)
	transfers.Post("/batch", transferHandler.CreateBatch)
	transfers.Get("/", transferHandler.List)

	// Defectuosos
	garbageHandler := NewGarbageHandler(deps.Garbage, log)
	g := api.Group("/garbage")
	g.Post("/", garbageHandler.MarkDefective)
	g.Get("/", garbageHandler.List)
	g.Delete("/:id", garbageHandler.Clear)
	g.Put("/:id/reason", garbageHandler.UpdateReason)
	g.Post("/:id/deactivate", RequireRole(managerRoles...), garbageHandler.Deactivate)
}
