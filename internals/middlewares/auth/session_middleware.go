// internals/middlewares/auth/session_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"perpusku_backend/internals/configs"
	helper "perpusku_backend/internals/helpers"
)

// Key session per caller. Session ada ⇔ login sukses dan belum logout/expired.
const (
	SessionUserIDKey   = "user_id"
	SessionUsernameKey = "user_name"
)

var store *session.Store

// InitSessionStore menyiapkan session store (cookie token + state in-memory).
// Panggil sekali setelah configs.LoadEnv().
func InitSessionStore() {
	store = session.New(session.Config{
		KeyLookup:      "cookie:" + configs.SessionCookieName,
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	log.Println("✅ Session store siap.")
}

// GetSession mengambil session milik caller request ini.
func GetSession(c *fiber.Ctx) (*session.Session, error) {
	if store == nil {
		InitSessionStore()
	}
	return store.Get(c)
}

// Endpoint publik yang di-skip gate login (selaras dengan allow-list lama:
// login, logout, static asset, root redirect, health check).
var publicPaths = map[string]struct{}{
	"/":       {},
	"/login":  {},
	"/logout": {},
	"/health": {},
}

func isPublicPath(path string) bool {
	if _, ok := publicPaths[path]; ok {
		return true
	}
	return strings.HasPrefix(path, "/static/")
}

// RequireLogin adalah gate global: satu interceptor untuk SEMUA route,
// termasuk modul yang ditambahkan belakangan. Selain allow-list publik,
// request tanpa session aktif langsung di-redirect ke /login tanpa
// menjalankan handler apa pun.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isPublicPath(c.Path()) {
			return c.Next()
		}

		sess, err := GetSession(c)
		if err != nil {
			log.Println("[ERROR] Gagal membaca session:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca session")
		}

		userID := sess.Get(SessionUserIDKey)
		if userID == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}

		// Simpan identitas caller untuk handler & admin guard di bawahnya
		c.Locals("user_id", userID)
		if name, ok := sess.Get(SessionUsernameKey).(string); ok {
			c.Locals("user_name", name)
		}

		return c.Next()
	}
}
