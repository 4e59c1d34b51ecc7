package model

import (
	"gorm.io/datatypes"
)

// BookModel memetakan tabel books. category_id nullable dan TANPA
// foreign key constraint di DB — referensi yatim (kategori sudah
// dihapus) sah, join nama kategori tinggal menghasilkan null.
type BookModel struct {
	ID            uint            `gorm:"column:id;primaryKey" json:"id"`
	PublishedDate *datatypes.Date `gorm:"column:published_date" json:"published_date"`
	Title         string          `gorm:"column:title;not null" json:"title"`
	Hepburn       string          `gorm:"column:hepburn" json:"hepburn"` // transliterasi judul
	Author        string          `gorm:"column:author" json:"author"`
	Release       string          `gorm:"column:release" json:"release"`
	URL           string          `gorm:"column:url" json:"url"`
	Summary       string          `gorm:"column:summary;type:text" json:"summary"`
	CategoryID    *uint           `gorm:"column:category_id" json:"category_id"`
}

// TableName memastikan nama tabel sesuai
func (BookModel) TableName() string {
	return "books"
}

// BookWithCategory adalah hasil join buku + nama kategorinya.
// CategoryName nil kalau buku tak berkategori atau kategorinya sudah dihapus.
type BookWithCategory struct {
	BookModel    `gorm:"embedded"`
	CategoryName *string `gorm:"column:category_name" json:"category_name"`
}
