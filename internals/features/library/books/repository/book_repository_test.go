package repository

import (
	"os"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/library/books/model"
	categoryModel "perpusku_backend/internals/features/library/categories/model"
	categoryRepo "perpusku_backend/internals/features/library/categories/repository"
)

// Test integrasi: butuh Postgres. Set TEST_DATABASE_URL untuk menjalankan.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL tidak diset; test integrasi dilewati")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("konek DB test: %v", err)
	}

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS books (
			id SERIAL PRIMARY KEY,
			published_date DATE,
			title TEXT NOT NULL,
			hepburn TEXT,
			author TEXT,
			"release" TEXT,
			url TEXT,
			summary TEXT,
			category_id INTEGER
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("DDL test: %v", err)
		}
	}
	if err := db.Exec(`TRUNCATE books, categories RESTART IDENTITY`).Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return db
}

func mustCreateCategory(t *testing.T, db *gorm.DB, name string) *categoryModel.CategoryModel {
	t.Helper()
	cat := &categoryModel.CategoryModel{Name: name}
	if err := categoryRepo.CreateCategory(db, cat); err != nil {
		t.Fatalf("create category: %v", err)
	}
	return cat
}

func TestBookRoundTrip(t *testing.T) {
	db := testDB(t)
	cat := mustCreateCategory(t, db, "Fiction")

	book := &model.BookModel{
		Title:      "T",
		Hepburn:    "H",
		Author:     "A",
		Release:    "R",
		URL:        "U",
		CategoryID: &cat.ID,
	}
	if err := CreateBook(db, book); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if book.ID == 0 {
		t.Fatal("CreateBook tidak mengisi id baru")
	}

	got, err := GetBook(db, book.ID)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.Title != "T" || got.Hepburn != "H" || got.Author != "A" || got.Release != "R" || got.URL != "U" {
		t.Fatalf("field tidak round-trip: %+v", got)
	}
	if got.CategoryID == nil || *got.CategoryID != cat.ID {
		t.Fatalf("category_id tidak round-trip: %+v", got.CategoryID)
	}
	if got.CategoryName == nil || *got.CategoryName != "Fiction" {
		t.Fatalf("join nama kategori salah: %v", got.CategoryName)
	}
}

func TestGetAllBooks_NewestFirst(t *testing.T) {
	db := testDB(t)

	for _, title := range []string{"pertama", "kedua", "ketiga"} {
		if err := CreateBook(db, &model.BookModel{
			Title: title, Hepburn: "h", Author: "a", Release: "r", URL: "u",
		}); err != nil {
			t.Fatalf("CreateBook: %v", err)
		}
	}

	items, err := GetAllBooks(db)
	if err != nil {
		t.Fatalf("GetAllBooks: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, mau 3", len(items))
	}
	if items[0].Title != "ketiga" || items[2].Title != "pertama" {
		t.Fatalf("urutan bukan id terbaru duluan: %s, %s, %s",
			items[0].Title, items[1].Title, items[2].Title)
	}
}

func TestDeleteBook_Idempotent(t *testing.T) {
	db := testDB(t)

	book := &model.BookModel{Title: "x", Hepburn: "h", Author: "a", Release: "r", URL: "u"}
	if err := CreateBook(db, book); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	if err := DeleteBook(db, book.ID); err != nil {
		t.Fatalf("delete pertama: %v", err)
	}
	// hapus kedua kali: tetap sukses (no-op)
	if err := DeleteBook(db, book.ID); err != nil {
		t.Fatalf("delete kedua: %v", err)
	}

	items, err := GetAllBooks(db)
	if err != nil {
		t.Fatalf("GetAllBooks: %v", err)
	}
	for _, it := range items {
		if it.ID == book.ID {
			t.Fatal("buku masih muncul setelah delete")
		}
	}
}

func TestOrphanedCategoryReference(t *testing.T) {
	db := testDB(t)
	cat := mustCreateCategory(t, db, "Fiction")

	book := &model.BookModel{
		Title: "t", Hepburn: "h", Author: "a", Release: "r", URL: "u",
		CategoryID: &cat.ID,
	}
	if err := CreateBook(db, book); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	// hapus kategorinya — TANPA cascade ke buku
	if err := categoryRepo.DeleteCategory(db, cat.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	got, err := GetBook(db, book.ID)
	if err != nil {
		t.Fatalf("GetBook setelah kategori dihapus: %v", err)
	}
	if got.CategoryID == nil || *got.CategoryID != cat.ID {
		t.Fatal("category_id yatim harus tetap tersimpan")
	}
	if got.CategoryName != nil {
		t.Fatalf("nama kategori harus null, dapat %q", *got.CategoryName)
	}
}

func TestUpdateBook_FullFieldSet(t *testing.T) {
	db := testDB(t)
	cat := mustCreateCategory(t, db, "Sejarah")

	book := &model.BookModel{
		Title: "lama", Hepburn: "lama", Author: "lama", Release: "lama", URL: "lama",
		Summary: "ada isi", CategoryID: &cat.ID,
	}
	if err := CreateBook(db, book); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	// Update tanpa summary & kategori: keduanya ikut ditulis (dikosongkan),
	// bukan dibiarkan diam-diam.
	if err := UpdateBook(db, book.ID, &model.BookModel{
		Title: "baru", Hepburn: "baru", Author: "baru", Release: "baru", URL: "baru",
	}); err != nil {
		t.Fatalf("UpdateBook: %v", err)
	}

	got, err := GetBook(db, book.ID)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.Title != "baru" || got.Summary != "" || got.CategoryID != nil {
		t.Fatalf("update bukan full field set: %+v", got)
	}
}

func TestGetBook_NotFound(t *testing.T) {
	db := testDB(t)
	if _, err := GetBook(db, 999999); err != gorm.ErrRecordNotFound {
		t.Fatalf("id tak ada harus gorm.ErrRecordNotFound, dapat %v", err)
	}
}

func TestGetCategoryOptions_OrderedByName(t *testing.T) {
	db := testDB(t)
	mustCreateCategory(t, db, "Sejarah")
	mustCreateCategory(t, db, "Fiksi")
	mustCreateCategory(t, db, "Biografi")

	opts, err := GetCategoryOptions(db)
	if err != nil {
		t.Fatalf("GetCategoryOptions: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("len = %d, mau 3", len(opts))
	}
	if opts[0].Name != "Biografi" || opts[1].Name != "Fiksi" || opts[2].Name != "Sejarah" {
		t.Fatalf("dropdown tidak urut nama: %+v", opts)
	}
}

func TestCreateBook_PublishedDateRoundTrip(t *testing.T) {
	db := testDB(t)

	// parsing string tanggal diuji di paket dto; di sini cukup simpan langsung
	d, _ := time.Parse("2006-01-02", "1914-04-20")
	pub := datatypes.Date(d)
	book := &model.BookModel{
		Title: "Kokoro", Hepburn: "Kokoro", Author: "Natsume Soseki",
		Release: "1914", URL: "u",
		PublishedDate: &pub,
	}
	if err := CreateBook(db, book); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	got, err := GetBook(db, book.ID)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.PublishedDate == nil {
		t.Fatal("published_date hilang")
	}
	if f := time.Time(*got.PublishedDate).Format("2006-01-02"); f != "1914-04-20" {
		t.Fatalf("published_date = %s", f)
	}
}
