package postgres

import (
	"time"
)

type UserModel struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Email           string  `gorm:"uniqueIndex;not null"`
	Password        string  `gorm:"not null"`
	FullName        string  `gorm:"not null"`
	ProfileImageURL *string `gorm:"column:profile_image_url"`
}

func (UserModel) TableName() string {
	return "users"
}
