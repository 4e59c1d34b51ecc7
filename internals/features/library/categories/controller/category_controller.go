package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/library/categories/dto"
	"perpusku_backend/internals/features/library/categories/repository"
	helper "perpusku_backend/internals/helpers"
	middlewareAuth "perpusku_backend/internals/middlewares/auth"
)

type CategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Validate: validator.New()}
}

// ✅ GET /categories/ — list kategori, terbaru duluan
func (ctrl *CategoryController) GetAll(c *fiber.Ctx) error {
	items, err := repository.GetAllCategories(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] Gagal mengambil kategori:", err)
		return helper.JsonDBError(c, err, "Gagal mengambil daftar kategori")
	}

	var flash *helper.Flash
	if sess, err := middlewareAuth.GetSession(c); err == nil {
		flash = helper.TakeFlash(sess)
	}
	return helper.JsonList(c, "Daftar kategori", items, flash)
}

// ✅ GET /categories/view/:id — detail kategori
func (ctrl *CategoryController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	item, err := repository.GetCategory(ctrl.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctrl.redirectNotFound(c)
		}
		log.Println("[ERROR] Gagal mengambil kategori:", err)
		return helper.JsonDBError(c, err, "Gagal mengambil kategori")
	}

	return helper.JsonOK(c, "Detail kategori", item)
}

// ✅ GET /categories/add — data form tambah (admin)
func (ctrl *CategoryController) AddForm(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Form tambah kategori", fiber.Map{
		"fields": []string{"name", "description"},
	})
}

// ✅ POST /categories/add — insert kategori baru (admin)
func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	var input dto.CategoryRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.Normalize()
	if err := ctrl.Validate.Struct(input); err != nil {
		// tidak ada row yang ditulis
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	item := input.ToModel()
	if err := repository.CreateCategory(ctrl.DB, item); err != nil {
		log.Println("[ERROR] Gagal membuat kategori:", err)
		return helper.JsonDBError(c, err, "Gagal menyimpan kategori")
	}

	ctrl.flash(c, "success", "Kategori berhasil ditambahkan.")
	return c.Redirect("/categories/", fiber.StatusSeeOther)
}

// ✅ GET /categories/edit/:id — data form edit (admin)
func (ctrl *CategoryController) EditForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	item, err := repository.GetCategory(ctrl.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctrl.redirectNotFound(c)
		}
		return helper.JsonDBError(c, err, "Gagal mengambil kategori")
	}

	return helper.JsonOK(c, "Form edit kategori", item)
}

// ✅ POST /categories/edit/:id — update name + description sekaligus (admin)
func (ctrl *CategoryController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	if _, err := repository.GetCategory(ctrl.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctrl.redirectNotFound(c)
		}
		return helper.JsonDBError(c, err, "Gagal mengambil kategori")
	}

	var input dto.CategoryRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.Normalize()
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	if err := repository.UpdateCategory(ctrl.DB, uint(id), input.Name, input.Description); err != nil {
		log.Println("[ERROR] Gagal update kategori:", err)
		return helper.JsonDBError(c, err, "Gagal update kategori")
	}

	ctrl.flash(c, "success", "Kategori berhasil diperbarui.")
	return c.Redirect("/categories/", fiber.StatusSeeOther)
}

// ✅ GET /categories/delete/:id — data konfirmasi hapus (admin)
func (ctrl *CategoryController) DeleteConfirm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	item, err := repository.GetCategory(ctrl.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctrl.redirectNotFound(c)
		}
		return helper.JsonDBError(c, err, "Gagal mengambil kategori")
	}

	return helper.JsonOK(c, "Konfirmasi hapus kategori", item)
}

// ✅ POST /categories/delete/:id — hapus kategori (admin).
// Buku yang merujuk kategori ini dibiarkan (tanpa cascade).
func (ctrl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	if err := repository.DeleteCategory(ctrl.DB, uint(id)); err != nil {
		log.Println("[ERROR] Gagal hapus kategori:", err)
		return helper.JsonDBError(c, err, "Gagal menghapus kategori")
	}

	ctrl.flash(c, "success", "Kategori berhasil dihapus.")
	return c.Redirect("/categories/", fiber.StatusSeeOther)
}

func (ctrl *CategoryController) redirectNotFound(c *fiber.Ctx) error {
	ctrl.flash(c, "error", "Kategori tidak ditemukan.")
	return c.Redirect("/categories/", fiber.StatusFound)
}

func (ctrl *CategoryController) flash(c *fiber.Ctx, level, message string) {
	if sess, err := middlewareAuth.GetSession(c); err == nil {
		helper.SetFlash(sess, level, message)
	}
}
