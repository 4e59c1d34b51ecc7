package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/library/categories/controller"
	middlewareAuth "perpusku_backend/internals/middlewares/auth"
)

// CategoryRoutes dipasang di bawah gate login. Semua aksi tulis
// (termasuk kategori — versi lama membiarkannya tanpa guard) wajib admin.
func CategoryRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	router.Get("/", ctrl.GetAll)
	router.Get("/view/:id", ctrl.GetByID)

	router.Get("/add", middlewareAuth.OnlyAdmin("tambah kategori"), ctrl.AddForm)
	router.Post("/add", middlewareAuth.OnlyAdmin("tambah kategori"), ctrl.Create)
	router.Get("/edit/:id", middlewareAuth.OnlyAdmin("edit kategori"), ctrl.EditForm)
	router.Post("/edit/:id", middlewareAuth.OnlyAdmin("edit kategori"), ctrl.Update)
	router.Get("/delete/:id", middlewareAuth.OnlyAdmin("hapus kategori"), ctrl.DeleteConfirm)
	router.Post("/delete/:id", middlewareAuth.OnlyAdmin("hapus kategori"), ctrl.Delete)
}
