// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookRoute "perpusku_backend/internals/features/library/books/route"
	categoryRoute "perpusku_backend/internals/features/library/categories/route"
	authRoute "perpusku_backend/internals/features/users/auth/route"
	helper "perpusku_backend/internals/helpers"
	middlewareAuth "perpusku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GATE =====================
	// Satu interceptor global untuk semua route di bawah ini — modul baru
	// otomatis ikut terproteksi tanpa duplikasi check per handler.
	log.Println("[INFO] Memasang gate RequireLogin...")
	app.Use(middlewareAuth.RequireLogin())

	// ===================== PROTECTED =====================
	log.Println("[INFO] Mounting Book routes...")
	bookRoute.BookRoutes(app.Group("/books"), db)

	log.Println("[INFO] Mounting Category routes...")
	categoryRoute.CategoryRoutes(app.Group("/categories"), db)

	// ===================== 404 =====================
	app.Use(func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "Halaman tidak ditemukan")
	})
}
