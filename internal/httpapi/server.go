package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/nguyentantai21042004/slide-narrator/internal/config"
	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
)

// New builds the fiber app with every route mounted.
func New(cfg config.ServerConfig, h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "slide-narrator",
		BodyLimit:             cfg.MaxUploadMB * 1024 * 1024,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return RespondWithError(c, fe.Code, fe.Message)
			}
			return respondErr(c, err)
		},
	})

	app.Use(cors.New())
	app.Use(RequestLogger(logger.Logrus(h.Logger)))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "slide-narrator is healthy",
		})
	})

	api := app.Group("/api/v1")

	runs := api.Group("/runs")
	runs.Post("/", h.CreateRun)
	runs.Get("/", h.ListRuns)
	runs.Get("/years", h.ListYears)
	runs.Get("/pending", h.ListPending)
	runs.Post("/resume/:id", h.ResumeRun)
	runs.Post("/:name/load", h.LoadRun)

	sess := api.Group("/session")
	sess.Get("/", h.GetSession)
	sess.Delete("/", h.ClearSession)
	sess.Post("/import", h.ImportSession)
	sess.Get("/export.pdf", h.ExportPDF)
	sess.Get("/export.docx", h.ExportDOCX)

	return app
}
