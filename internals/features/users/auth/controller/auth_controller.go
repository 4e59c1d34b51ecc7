package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/users/auth/service"
	helper "perpusku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// LoginForm: pengganti render login.html — klien tinggal POST ke /login.
func (ac *AuthController) LoginForm(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Silakan login", fiber.Map{
		"fields": []string{"username", "password"},
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(c)
}
