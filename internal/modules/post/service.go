package post

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mutantboi/blog-core/internal/models"
	"github.com/mutantboi/blog-core/internal/pkg/pagination"
	"github.com/mutantboi/blog-core/internal/pkg/slug"
	"gorm.io/gorm"
)

var (
	ErrForbidden     = errors.New("not allowed to modify this post")
	ErrSlugExhausted = errors.New("could not generate a unique slug")
)

// maxSlugAttempts bounds the numeric suffix probing when a title
// collides with many existing slugs.
const maxSlugAttempts = 100

// fallbackSlug is used when a title reduces to an empty slug, e.g. a
// title made entirely of punctuation.
const fallbackSlug = "post"

// sortColumns maps accepted sort keys to their columns. Anything else
// in the sort param is ignored.
var sortColumns = map[string]string{
	"publishedAt": "published_at",
	"updatedAt":   "updated_at",
	"createdAt":   "created_at",
	"viewCount":   "view_count",
	"title":       "title",
}

// Service handles post business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GenerateUniqueSlug derives a slug from title and appends an
// incrementing numeric suffix until no other post holds it. excludeID
// lets an update re-derive a slug without colliding with itself.
func (s *Service) GenerateUniqueSlug(title, excludeID string) (string, error) {
	base := slug.Slugify(title)
	if base == "" {
		base = fallbackSlug
	}

	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		taken, err := s.slugTaken(candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrSlugExhausted
}

func (s *Service) slugTaken(candidate, excludeID string) (bool, error) {
	tx := s.db.Model(&models.PostModel{}).Where("slug = ?", candidate)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns a paginated list of posts. Unauthenticated callers only
// see published posts.
func (s *Service) List(q pagination.Query, lq ListQuery, isAdmin bool) ([]models.PostModel, pagination.Meta, error) {
	// An unknown category can never match a tag row.
	if lq.Category != "" && !models.IsValidTagType(lq.Category) {
		return []models.PostModel{}, pagination.Meta{CurrentPage: q.Page}, nil
	}

	tx := s.db.Model(&models.PostModel{}).
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_tags.position")
		})

	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	if lq.Category != "" {
		tx = tx.Where(
			"EXISTS (SELECT 1 FROM post_tags WHERE post_tags.post_id = posts.id AND post_tags.type = ?)",
			lq.Category,
		)
	}
	if lq.Search != "" {
		pattern := "%" + strings.ToLower(lq.Search) + "%"
		tx = tx.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(excerpt) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	tx = tx.Order(orderClause(lq.Sort))

	var posts []models.PostModel
	meta, err := pagination.Paginate(tx, q, &posts)
	return posts, meta, err
}

// orderClause turns a sort param like "-publishedAt" into SQL. Unknown
// keys fall back to newest-published-first. created_at and id break
// ties so pages stay stable.
func orderClause(sort string) string {
	key := strings.TrimSpace(sort)
	desc := false
	if strings.HasPrefix(key, "-") {
		desc = true
		key = key[1:]
	}
	column, ok := sortColumns[key]
	if !ok {
		column, desc = "published_at", true
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, created_at DESC, id DESC", column, dir)
}

// GetBySlug fetches a single post by slug.
func (s *Service) GetBySlug(postSlug string, isAdmin bool) (*models.PostModel, error) {
	var post models.PostModel
	tx := s.db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_tags.position")
		}).
		Where("slug = ?", postSlug)
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	if err := tx.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByID fetches a single post by ID.
func (s *Service) GetByID(id string) (*models.PostModel, error) {
	var post models.PostModel
	err := s.db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_tags.position")
		}).
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post with a freshly derived slug. A concurrent
// insert of the same slug surfaces as a duplicate-key error, in which
// case the slug is re-derived once against the now-visible row.
func (s *Service) Create(dto *CreatePostDTO, author *models.UserModel) (*models.PostModel, error) {
	for attempt := 0; attempt < 2; attempt++ {
		postSlug, err := s.GenerateUniqueSlug(dto.Title, "")
		if err != nil {
			return nil, err
		}

		post := models.PostModel{
			Title:         dto.Title,
			Slug:          postSlug,
			Content:       dto.Content,
			Excerpt:       dto.Excerpt,
			AuthorID:      author.ID,
			FeaturedImage: dto.FeaturedImage,
			IsPublished:   true,
			PublishedAt:   time.Now(),
			Tags:          tagsFromDTO(dto.Tags),
		}
		if dto.IsPublished != nil {
			post.IsPublished = *dto.IsPublished
		}

		err = s.db.Create(&post).Error
		if err == nil {
			post.Author = author
			return &post, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, ErrSlugExhausted
}

// Update patches a post. Only the author or an admin may modify it.
// A changed title re-derives the slug; tags, when present, replace the
// existing set wholesale.
func (s *Service) Update(id string, dto *UpdatePostDTO, actor *models.UserModel) (*models.PostModel, error) {
	post, err := s.GetByID(id)
	if err != nil || post == nil {
		return post, err
	}
	if !canModify(post, actor) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if dto.Title != nil && *dto.Title != post.Title {
		updates["title"] = *dto.Title
		newSlug, err := s.GenerateUniqueSlug(*dto.Title, post.ID)
		if err != nil {
			return nil, err
		}
		updates["slug"] = newSlug
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.FeaturedImage != nil {
		updates["featured_image"] = *dto.FeaturedImage
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
		if *dto.IsPublished && !post.IsPublished {
			updates["published_at"] = time.Now()
		}
	}
	// A tags-only patch still has to touch the post row so updated_at
	// moves with the mutation.
	if dto.Tags != nil && len(updates) == 0 {
		updates["updated_at"] = time.Now()
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(post).Updates(updates).Error; err != nil {
				return err
			}
		}
		if dto.Tags != nil {
			if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostTag{}).Error; err != nil {
				return err
			}
			tags := tagsFromDTO(*dto.Tags)
			for i := range tags {
				tags[i].PostID = post.ID
			}
			if len(tags) > 0 {
				if err := tx.Create(&tags).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a post and its tags. Only the author or an admin may
// delete it.
func (s *Service) Delete(id string, actor *models.UserModel) (bool, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, nil
	}
	if !canModify(post, actor) {
		return false, ErrForbidden
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PostModel{}, "id = ?", post.ID).Error
	})
	return err == nil, err
}

// IncrementViewCount atomically bumps the view counter.
func (s *Service) IncrementViewCount(id string) error {
	return s.db.Model(&models.PostModel{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func canModify(post *models.PostModel, actor *models.UserModel) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || post.AuthorID == actor.ID
}

func tagsFromDTO(in []TagDTO) []models.PostTag {
	tags := make([]models.PostTag, len(in))
	for i, t := range in {
		tags[i] = models.PostTag{Name: t.Name, Type: t.Type, Position: i}
	}
	return tags
}
