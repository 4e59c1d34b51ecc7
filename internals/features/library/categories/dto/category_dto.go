package dto

import (
	"strings"

	"perpusku_backend/internals/features/library/categories/model"
)

type CategoryRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
}

// Normalize membersihkan whitespace SEBELUM validasi, supaya nama
// yang isinya spasi doang tetap ditolak sebagai kosong.
func (r *CategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CategoryRequest) ToModel() *model.CategoryModel {
	return &model.CategoryModel{
		Name:        r.Name,
		Description: r.Description,
	}
}
