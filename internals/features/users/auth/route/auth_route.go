// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "perpusku_backend/internals/features/users/auth/controller"
	rateLimiter "perpusku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// 🔓 Public: login & logout ada di allow-list gate
	app.Get("/login", authController.LoginForm)
	app.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	app.Get("/logout", authController.Logout)
}
