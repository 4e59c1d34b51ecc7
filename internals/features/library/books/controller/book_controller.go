package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/library/books/dto"
	"perpusku_backend/internals/features/library/books/repository"
	helper "perpusku_backend/internals/helpers"
	middlewareAuth "perpusku_backend/internals/middlewares/auth"
)

type BookController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db, Validate: validator.New()}
}

// ✅ GET /books/ — list buku + nama kategori, terbaru duluan
func (ctrl *BookController) GetAll(c *fiber.Ctx) error {
	items, err := repository.GetAllBooks(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] Gagal mengambil buku:", err)
		return helper.JsonDBError(c, err, "Gagal mengambil daftar buku")
	}

	var flash *helper.Flash
	if sess, err := middlewareAuth.GetSession(c); err == nil {
		flash = helper.TakeFlash(sess)
	}
	return helper.JsonList(c, "Daftar buku", items, flash)
}

// ✅ GET /books/view/:id — detail buku
func (ctrl *BookController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}

	item, err := repository.GetBook(ctrl.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctrl.redirectNotFound(c)
		}
		log.Println("[ERROR] Gagal mengambil buku:", err)
		return helper.JsonDBError(c, err, "Gagal mengambil buku")
	}

	return helper.JsonOK(c, "Detail buku", item)
}

// ✅ GET /books/add — data form tambah + dropdown kategori (admin)
func (ctrl *BookController) AddForm(c *fiber.Ctx) error {
	opts, err := repository.GetCategoryOptions(ctrl.DB)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "Form tambah buku", fiber.Map{
		"categories": opts,
	})
}

// ✅ POST /books/add — insert buku baru (admin)
func (ctrl *BookController) Create(c *fiber.Ctx) error {
	var input dto.BookRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.Normalize()
	if err := ctrl.Validate.Struct(input); err != nil {
		// field wajib kosong → tidak ada row yang ditulis
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	item, err := input.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"published_date": {err.Error()},
		})
	}

	if err := repository.CreateBook(ctrl.DB, item); err != nil {
		log.Println("[ERROR] Gagal membuat buku:", err)
		return helper.JsonDBError(c, err, "Gagal menyimpan buku")
	}

	ctrl.flash(c, "success", "Buku berhasil ditambahkan.")
	return c.Redirect("/books/", fiber.StatusSeeOther)
}

// ✅ GET /books/edit/:id — data form edit + dropdown kategori (admin)
func (ctrl *BookController) EditForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}

	item, err := repository.GetBook(ctrl.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctrl.redirectNotFound(c)
		}
		return helper.JsonDBError(c, err, "Gagal mengambil buku")
	}

	opts, err := repository.GetCategoryOptions(ctrl.DB)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil kategori")
	}

	return helper.JsonOK(c, "Form edit buku", fiber.Map{
		"book":       item,
		"categories": opts,
	})
}

// ✅ POST /books/edit/:id — update SELURUH field buku (admin)
func (ctrl *BookController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}

	if _, err := repository.GetBook(ctrl.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctrl.redirectNotFound(c)
		}
		return helper.JsonDBError(c, err, "Gagal mengambil buku")
	}

	var input dto.BookRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.Normalize()
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	item, err := input.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"published_date": {err.Error()},
		})
	}

	if err := repository.UpdateBook(ctrl.DB, uint(id), item); err != nil {
		log.Println("[ERROR] Gagal update buku:", err)
		return helper.JsonDBError(c, err, "Gagal update buku")
	}

	ctrl.flash(c, "success", "Buku berhasil diperbarui.")
	return c.Redirect("/books/", fiber.StatusSeeOther)
}

// ✅ POST /books/delete/:id — hapus buku, idempotent (admin)
func (ctrl *BookController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}

	if err := repository.DeleteBook(ctrl.DB, uint(id)); err != nil {
		log.Println("[ERROR] Gagal hapus buku:", err)
		return helper.JsonDBError(c, err, "Gagal menghapus buku")
	}

	ctrl.flash(c, "success", "Buku berhasil dihapus.")
	return c.Redirect("/books/", fiber.StatusSeeOther)
}

func (ctrl *BookController) redirectNotFound(c *fiber.Ctx) error {
	ctrl.flash(c, "error", "Buku tidak ditemukan.")
	return c.Redirect("/books/", fiber.StatusFound)
}

func (ctrl *BookController) flash(c *fiber.Ctx, level, message string) {
	if sess, err := middlewareAuth.GetSession(c); err == nil {
		helper.SetFlash(sess, level, message)
	}
}
