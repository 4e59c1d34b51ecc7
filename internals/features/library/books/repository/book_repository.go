// internals/features/library/books/repository/book_repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"perpusku_backend/internals/features/library/books/model"
)

/* ====================== BOOKS ====================== */

// GetAllBooks mengembalikan semua buku + nama kategorinya, id terbaru duluan.
func GetAllBooks(db *gorm.DB) ([]model.BookWithCategory, error) {
	var items []model.BookWithCategory
	err := db.Table("books AS b").
		Select("b.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON b.category_id = c.id").
		Order("b.id DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetBook mengembalikan satu buku + nama kategori. gorm.ErrRecordNotFound
// kalau id tidak ada — handler yang memutuskan mau redirect ke mana.
func GetBook(db *gorm.DB, id uint) (*model.BookWithCategory, error) {
	var item model.BookWithCategory
	err := db.Table("books AS b").
		Select("b.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON b.category_id = c.id").
		Where("b.id = ?", id).
		Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &item, nil
}

func CreateBook(db *gorm.DB, item *model.BookModel) error {
	return db.Create(item).Error
}

// UpdateBook menulis SELURUH field dalam satu statement. Varian lama yang
// cuma meng-update sebagian field menghilangkan data diam-diam; di sini
// selalu full field set.
func UpdateBook(db *gorm.DB, id uint, item *model.BookModel) error {
	return db.Model(&model.BookModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"published_date": item.PublishedDate,
			"title":          item.Title,
			"hepburn":        item.Hepburn,
			"author":         item.Author,
			"release":        item.Release,
			"url":            item.URL,
			"summary":        item.Summary,
			"category_id":    item.CategoryID,
		}).Error
}

// DeleteBook idempotent: menghapus id yang sudah hilang bukan error.
func DeleteBook(db *gorm.DB, id uint) error {
	return db.Delete(&model.BookModel{}, "id = ?", id).Error
}

/* ====================== DROPDOWN ====================== */

// CategoryOption untuk dropdown form add/edit buku.
type CategoryOption struct {
	ID   uint   `gorm:"column:id" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

func GetCategoryOptions(db *gorm.DB) ([]CategoryOption, error) {
	var opts []CategoryOption
	err := db.Table("categories").
		Select("id, name").
		Order("name").
		Scan(&opts).Error
	if err != nil {
		return nil, err
	}
	return opts, nil
}
