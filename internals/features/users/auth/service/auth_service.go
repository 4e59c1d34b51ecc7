// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/constants"
	authDTO "perpusku_backend/internals/features/users/auth/dto"
	authRepo "perpusku_backend/internals/features/users/auth/repository"
	helper "perpusku_backend/internals/helpers"
	middlewareAuth "perpusku_backend/internals/middlewares/auth"
)

var validate = validator.New()

// ========================== LOGIN ==========================
// Satu-satunya transisi ANONYMOUS → AUTHENTICATED. Sukses = session
// terisi (user_id, user_name) lalu redirect ke daftar buku.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	// 🔹 Cari user. Pesan gagal SELALU sama — jangan bocorkan apakah
	// username-nya yang tidak ada atau password-nya yang salah.
	user, err := authRepo.FindUserByUsername(db, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrInvalidCredentials)
		}
		log.Println("[ERROR] DB error saat cari user:", err)
		return helper.JsonDBError(c, err, "Gagal memproses login")
	}

	// 🔹 Verifikasi password terhadap hash legacy
	ok, err := VerifyPassword(input.Password, user.Password)
	if err != nil {
		log.Printf("[ERROR] Hash password user %q tidak valid: %v", user.Username, err)
		return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrInvalidCredentials)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrInvalidCredentials)
	}

	// 🔹 Login sukses → buat session
	sess, err := middlewareAuth.GetSession(c)
	if err != nil {
		log.Println("[ERROR] Gagal ambil session:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat session")
	}
	sess.Set(middlewareAuth.SessionUserIDKey, user.ID)
	sess.Set(middlewareAuth.SessionUsernameKey, user.Username)
	if err := sess.Save(); err != nil {
		log.Println("[ERROR] Gagal simpan session:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan session")
	}

	log.Printf("[SUCCESS] Login: %s", user.Username)
	return c.Redirect("/books/", fiber.StatusSeeOther)
}

// ========================== LOGOUT ==========================
func Logout(c *fiber.Ctx) error {
	sess, err := middlewareAuth.GetSession(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			log.Println("[WARN] Gagal hapus session:", err)
		}
	}
	return c.Redirect("/login", fiber.StatusFound)
}
