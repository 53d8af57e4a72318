package auth

import (
	"testing"

	"github.com/mutantboi/blog-core/internal/models"
	"github.com/mutantboi/blog-core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, password string) *models.UserModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := models.UserModel{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	user := seedUser(t, db, "admin", "hunter22")

	token, got, err := svc.Login(&LoginDTO{Username: "admin", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	require.NotEmpty(t, token)

	subject, err := jwt.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	seedUser(t, db, "admin", "hunter22")

	_, _, err := svc.Login(&LoginDTO{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, errInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, _, err := svc.Login(&LoginDTO{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, errInvalidCredentials)
}
