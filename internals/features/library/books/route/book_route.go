package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/library/books/controller"
	middlewareAuth "perpusku_backend/internals/middlewares/auth"
)

// BookRoutes dipasang di bawah gate login; aksi tulis wajib admin.
func BookRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookController(db)

	router.Get("/", ctrl.GetAll)
	router.Get("/view/:id", ctrl.GetByID)

	router.Get("/add", middlewareAuth.OnlyAdmin("tambah buku"), ctrl.AddForm)
	router.Post("/add", middlewareAuth.OnlyAdmin("tambah buku"), ctrl.Create)
	router.Get("/edit/:id", middlewareAuth.OnlyAdmin("edit buku"), ctrl.EditForm)
	router.Post("/edit/:id", middlewareAuth.OnlyAdmin("edit buku"), ctrl.Update)
	router.Post("/delete/:id", middlewareAuth.OnlyAdmin("hapus buku"), ctrl.Delete)
}
