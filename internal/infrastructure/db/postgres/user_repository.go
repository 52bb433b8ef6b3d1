package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"auth-service/internal/domain/entities"
	"auth-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		CreatedAt:       userEntity.CreatedAt,
		UpdatedAt:       userEntity.UpdatedAt,
		Email:           userEntity.Email,
		Password:        userEntity.Credential,
		FullName:        userEntity.FullName,
		ProfileImageURL: userEntity.ProfileImageURL,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		if isDuplicate(err) {
			return nil, repositories.ErrDuplicateEmail
		}
		return nil, err
	}

	// Read back the created row so the caller sees the store-assigned id
	return r.FindByID(ctx, userModel.ID)
}

func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

// isDuplicate reports whether err came from the unique index on email. The
// text match covers drivers that predate gorm's error translation.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		ID:              userModel.ID,
		CreatedAt:       userModel.CreatedAt,
		UpdatedAt:       userModel.UpdatedAt,
		Email:           userModel.Email,
		Credential:      userModel.Password,
		FullName:        userModel.FullName,
		ProfileImageURL: userModel.ProfileImageURL,
	}
}
