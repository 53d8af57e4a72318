package contact

import (
	"fmt"
	"testing"

	"github.com/mutantboi/blog-core/internal/models"
	"github.com/mutantboi/blog-core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	require.NoError(t, db.AutoMigrate(&models.ContactMessageModel{}))
	return db
}

func submit(t *testing.T, svc *Service, subject string) *models.ContactMessageModel {
	t.Helper()
	msg, err := svc.Create(&CreateMessageDTO{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: subject,
		Message: "Hello there",
	}, "203.0.113.7", "test-agent/1.0")
	require.NoError(t, err)
	return msg
}

func TestCreateStoresRequestMetadata(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	msg := submit(t, svc, "First contact")
	assert.Equal(t, "203.0.113.7", msg.IPAddress)
	assert.Equal(t, "test-agent/1.0", msg.UserAgent)
	assert.False(t, msg.IsRead)
	assert.False(t, msg.IsReplied)
	assert.NotEmpty(t, msg.ID)
}

func TestListUnreadFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	for i := 0; i < 3; i++ {
		submit(t, svc, fmt.Sprintf("Message %d", i))
	}
	read := submit(t, svc, "Already read")
	_, err := svc.MarkRead(read.ID)
	require.NoError(t, err)

	all, meta, err := svc.List(pagination.Query{Page: 1, Limit: 10}, false)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.EqualValues(t, 4, meta.Total)

	unread, meta, err := svc.List(pagination.Query{Page: 1, Limit: 10}, true)
	require.NoError(t, err)
	assert.Len(t, unread, 3)
	assert.EqualValues(t, 3, meta.Total)
}

func TestMarkReadAndReplied(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	msg := submit(t, svc, "Flag me")

	got, err := svc.MarkRead(msg.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	got, err = svc.MarkReplied(msg.ID)
	require.NoError(t, err)
	assert.True(t, got.IsReplied)
}

func TestMarkRepliedImpliesRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	msg := submit(t, svc, "Straight to replied")

	got, err := svc.MarkReplied(msg.ID)
	require.NoError(t, err)
	assert.True(t, got.IsReplied)
	assert.True(t, got.IsRead)
}

func TestMarkReadMissingMessage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	got, err := svc.MarkRead("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}
