// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/constants"
	helper "perpusku_backend/internals/helpers"
)

// OnlyAdmin membatasi aksi tulis ke identitas admin tunggal (dari config,
// bukan hardcode). Dipasang deklaratif di setiap route create/update/delete
// buku & kategori — termasuk kategori, menutup celah versi lama yang
// membiarkan mutasi kategori tanpa guard.
func OnlyAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, ok := c.Locals("user_name").(string)
		if !ok || username == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing identity")
		}

		if username != configs.AdminUsername {
			log.Printf("[WARNING] User %q mencoba akses fitur admin %q", username, feature)
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}

		return c.Next()
	}
}
