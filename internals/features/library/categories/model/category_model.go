package model

// CategoryModel memetakan tabel categories. Kategori berdiri sendiri;
// boleh dirujuk nol atau lebih buku, dan menghapus kategori TIDAK
// ikut menghapus buku yang merujuknya.
type CategoryModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:name;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
}

// TableName memastikan nama tabel sesuai
func (CategoryModel) TableName() string {
	return "categories"
}
