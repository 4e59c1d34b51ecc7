// internals/features/library/categories/repository/category_repository.go
package repository

import (
	"gorm.io/gorm"

	"perpusku_backend/internals/features/library/categories/model"
)

func GetAllCategories(db *gorm.DB) ([]model.CategoryModel, error) {
	var items []model.CategoryModel
	if err := db.Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func GetCategory(db *gorm.DB, id uint) (*model.CategoryModel, error) {
	var item model.CategoryModel
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func CreateCategory(db *gorm.DB, item *model.CategoryModel) error {
	return db.Create(item).Error
}

// UpdateCategory menulis name + description sekaligus (atomik satu statement).
func UpdateCategory(db *gorm.DB, id uint, name, description string) error {
	return db.Model(&model.CategoryModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
		}).Error
}

// DeleteCategory idempotent: menghapus id yang sudah tidak ada bukan error.
// Tidak ada cascade ke books — category_id yatim dibiarkan (lihat model).
func DeleteCategory(db *gorm.DB, id uint) error {
	return db.Delete(&model.CategoryModel{}, "id = ?", id).Error
}
