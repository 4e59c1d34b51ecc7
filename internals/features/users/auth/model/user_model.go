package model

// UserModel memetakan tabel auth_user peninggalan aplikasi lama.
// User dibuat di luar sistem ini; dari sisi kita read-only.
type UserModel struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Username string `gorm:"column:username;unique;not null" json:"username"`
	Password string `gorm:"column:password;not null" json:"-"` // hash legacy pbkdf2_sha256
}

// TableName memastikan nama tabel sesuai
func (UserModel) TableName() string {
	return "auth_user"
}
