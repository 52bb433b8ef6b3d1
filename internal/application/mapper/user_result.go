package mapper

import (
	"auth-service/internal/application/common"
	"auth-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	if user == nil {
		return nil
	}
	return &common.UserResult{
		UserID:          user.ID,
		FullName:        user.FullName,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
	}
}
