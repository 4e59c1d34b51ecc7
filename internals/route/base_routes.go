package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	databases "perpusku_backend/internals/databases"
	middlewareAuth "perpusku_backend/internals/middlewares/auth"
)

var startTime = time.Now()

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	// Root: sudah login → daftar buku, belum → halaman login
	app.Get("/", func(c *fiber.Ctx) error {
		if sess, err := middlewareAuth.GetSession(c); err == nil {
			if sess.Get(middlewareAuth.SessionUserIDKey) != nil {
				return c.Redirect("/books/", fiber.StatusSeeOther)
			}
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := databases.DB.DB()
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
