package dto

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"

	"perpusku_backend/internals/features/library/books/model"
)

var ErrInvalidPublishedDate = errors.New("published_date harus berformat YYYY-MM-DD")

// BookRequest dipakai untuk add dan edit. Update SELALU menulis
// seluruh field supaya tidak ada data yang hilang diam-diam.
type BookRequest struct {
	Title         string `json:"title" form:"title" validate:"required"`
	Hepburn       string `json:"hepburn" form:"hepburn" validate:"required"`
	Author        string `json:"author" form:"author" validate:"required"`
	Release       string `json:"release" form:"release" validate:"required"`
	URL           string `json:"url" form:"url" validate:"required"`
	Summary       string `json:"summary" form:"summary"`
	PublishedDate string `json:"published_date" form:"published_date"` // opsional, YYYY-MM-DD
	CategoryID    *uint  `json:"category_id" form:"category_id"`       // opsional, nullable
}

// Normalize membersihkan whitespace SEBELUM validasi; field wajib yang
// isinya spasi doang akan gagal di tag required.
func (r *BookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Hepburn = strings.TrimSpace(r.Hepburn)
	r.Author = strings.TrimSpace(r.Author)
	r.Release = strings.TrimSpace(r.Release)
	r.URL = strings.TrimSpace(r.URL)
	r.Summary = strings.TrimSpace(r.Summary)
	r.PublishedDate = strings.TrimSpace(r.PublishedDate)
}

// ParsePublishedDate mengubah string tanggal opsional ke datatypes.Date.
func (r *BookRequest) ParsePublishedDate() (*datatypes.Date, error) {
	if r.PublishedDate == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", r.PublishedDate)
	if err != nil {
		return nil, ErrInvalidPublishedDate
	}
	d := datatypes.Date(t)
	return &d, nil
}

func (r *BookRequest) ToModel() (*model.BookModel, error) {
	pub, err := r.ParsePublishedDate()
	if err != nil {
		return nil, err
	}
	return &model.BookModel{
		PublishedDate: pub,
		Title:         r.Title,
		Hepburn:       r.Hepburn,
		Author:        r.Author,
		Release:       r.Release,
		URL:           r.URL,
		Summary:       r.Summary,
		CategoryID:    r.CategoryID,
	}, nil
}
