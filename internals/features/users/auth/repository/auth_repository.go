// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"gorm.io/gorm"

	userModel "perpusku_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
