package category

import (
	"testing"

	"github.com/mutantboi/blog-core/internal/models"
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
	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.PostModel{}, &models.PostTag{}))
	return db
}

func makePost(t *testing.T, db *gorm.DB, slug string, published bool, types ...models.TagType) {
	t.Helper()
	tags := make([]models.PostTag, len(types))
	for i, typ := range types {
		tags[i] = models.PostTag{Name: string(typ), Type: typ, Position: i}
	}
	p := models.PostModel{
		Title:       slug,
		Slug:        slug,
		Content:     "body",
		AuthorID:    "author-1",
		IsPublished: published,
		Tags:        tags,
	}
	require.NoError(t, db.Create(&p).Error)
}

func TestListCountsPublishedPostsPerType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	makePost(t, db, "p1", true, models.TagEssays)
	makePost(t, db, "p2", true, models.TagEssays, models.TagDesign)
	makePost(t, db, "p3", true, models.TagAV)
	makePost(t, db, "p4", false, models.TagTattoo)

	categories, err := svc.List()
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, models.TagEssays, categories[0].Type)
	assert.Equal(t, "Essays", categories[0].Name)
	assert.EqualValues(t, 2, categories[0].Count)

	byType := map[models.TagType]Category{}
	for _, c := range categories {
		byType[c.Type] = c
	}
	assert.Equal(t, "Audio/Visual", byType[models.TagAV].Name)
	assert.EqualValues(t, 1, byType[models.TagDesign].Count)
	assert.NotContains(t, byType, models.TagTattoo)
}

func TestListCountsTagOccurrences(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	// Two tags of the same type on one post count twice.
	p := models.PostModel{
		Title: "double", Slug: "double", Content: "x",
		AuthorID: "a", IsPublished: true,
		Tags: []models.PostTag{
			{Name: "one", Type: models.TagPainting, Position: 0},
			{Name: "two", Type: models.TagPainting, Position: 1},
		},
	}
	require.NoError(t, db.Create(&p).Error)

	categories, err := svc.List()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.EqualValues(t, 2, categories[0].Count)
}

func TestListEmptyWhenNoPosts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	categories, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, categories)
}
