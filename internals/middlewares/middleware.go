package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"perpusku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar untuk semua request.
// Gate login dipasang terpisah di route setup supaya urutannya jelas.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
