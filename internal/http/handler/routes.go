package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"craftapi/internal/service"
)

// Services groups the use-case dependencies the routes need.
type Services struct {
	Artisans       service.ArtisanService
	Products       service.ProductService
	Transcriptions service.TranscriptionService
	Content        service.ContentService
	Enhance        service.EnhanceService
	Export         service.ExportService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; everything flows through the
// injected services.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Artisan profiles
	app.Post("/artisans", CreateArtisan(svcs.Artisans))
	app.Get("/artisans", ListArtisans(svcs.Artisans))
	app.Get("/artisans/:id", GetArtisan(svcs.Artisans))
	app.Patch("/artisans/:id", UpdateArtisan(svcs.Artisans))

	// Products
	app.Post("/artisans/:id/products", UploadProduct(svcs.Products))
	app.Get("/artisans/:id/products", ListProducts(svcs.Products))
	app.Get("/products/:id", GetProduct(svcs.Products))
	app.Put("/products/:id/tags", ConfirmTags(svcs.Products))
	app.Delete("/products/:id", DeleteProduct(svcs.Products))

	// AI pipeline
	app.Post("/transcriptions", Transcribe(svcs.Transcriptions))
	app.Post("/translations", Translate(svcs.Transcriptions))
	app.Post("/products/:id/content", GenerateContent(svcs.Content))
	app.Post("/products/:id/enhance", EnhanceImage(svcs.Enhance))
	app.Post("/products/:id/export", ExportPack(svcs.Export))
}
