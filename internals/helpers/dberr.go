// file: internals/helpers/dberr.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kode error Postgres yang kita bedakan secara eksplisit.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// JsonDBError memetakan error dari layer data ke response JSON.
// Selain pelanggaran constraint, semua error DB dianggap fatal
// untuk request berjalan (500, tanpa retry).
func JsonDBError(c *fiber.Ctx, err error, fallbackMessage string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return JsonError(c, fiber.StatusConflict, "Data dengan nilai yang sama sudah ada")
		case pgForeignKeyViolation:
			return JsonError(c, fiber.StatusUnprocessableEntity, "Referensi data tidak valid")
		case pgNotNullViolation:
			return JsonError(c, fiber.StatusUnprocessableEntity, "Field wajib tidak boleh kosong")
		}
	}

	if fallbackMessage == "" {
		fallbackMessage = "Terjadi kesalahan pada database"
	}
	return JsonError(c, fiber.StatusInternalServerError, fallbackMessage)
}
