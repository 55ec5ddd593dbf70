package http

import (
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/docs"
)

// Docs Swagger UI en /docs y la especificación en /docs/swagger.json.
// La especificación sale del paquete docs (swag init), no de disco.
func Docs(title string) fiber.Handler {
	return swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "./docs/swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       title,
	})
}
