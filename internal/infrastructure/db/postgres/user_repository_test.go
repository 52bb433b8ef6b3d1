package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"auth-service/internal/domain/entities"
	"auth-service/internal/domain/repositories"
)

func setupRepo(t *testing.T) repositories.UserRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UserModel{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM users")
	})

	return NewUserRepository(db)
}

func validatedUser(t *testing.T, firstName, lastName, email string) *entities.ValidatedUser {
	t.Helper()

	user, err := entities.NewValidatedUser(entities.NewUser(firstName, lastName, email, "hashed-credential"))
	require.NoError(t, err)
	return user
}

func TestUserRepository_Create(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, validatedUser(t, "Ada", "Lovelace", "ada@example.com"))
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, "Ada Lovelace", created.FullName)
	assert.Nil(t, created.ProfileImageURL)
	assert.Equal(t, "hashed-credential", created.Credential)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, validatedUser(t, "Ada", "Lovelace", "ada@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, validatedUser(t, "Augusta", "King", "ada@example.com"))
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)

	count, err := repo.CountByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_CountByEmail(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	count, err := repo.CountByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = repo.Create(ctx, validatedUser(t, "Ada", "Lovelace", "ada@example.com"))
	require.NoError(t, err)

	count, err = repo.CountByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	found, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)

	created, err := repo.Create(ctx, validatedUser(t, "Ada", "Lovelace", "ada@example.com"))
	require.NoError(t, err)

	found, err = repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Ada Lovelace", found.FullName)
}

func TestUserRepository_FindByID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	found, err := repo.FindByID(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, found)

	created, err := repo.Create(ctx, validatedUser(t, "Ada", "Lovelace", "ada@example.com"))
	require.NoError(t, err)

	found, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "ada@example.com", found.Email)
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, isDuplicate(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicate(errors.New(`duplicate key value violates unique constraint "idx_users_email"`)))
	assert.False(t, isDuplicate(gorm.ErrRecordNotFound))
	assert.False(t, isDuplicate(assert.AnError))
}
