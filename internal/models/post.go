package models

import "time"

// TagType is one of the fixed content categories a tag can belong to.
type TagType = string

const (
	TagDesign      TagType = "design"
	TagTattoo      TagType = "tattoo"
	TagPainting    TagType = "painting"
	TagPhotography TagType = "photography"
	TagAudio       TagType = "audio"
	TagAV          TagType = "av"
	TagEssays      TagType = "essays"
	TagResources   TagType = "resources"
)

// TagTypes lists every known tag type.
var TagTypes = []TagType{
	TagDesign, TagTattoo, TagPainting, TagPhotography,
	TagAudio, TagAV, TagEssays, TagResources,
}

// IsValidTagType reports whether t is one of the known tag types.
func IsValidTagType(t string) bool {
	for _, known := range TagTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PostModel is a blog post.
type PostModel struct {
	Base
	Title         string     `json:"title"         gorm:"not null"`
	Slug          string     `json:"slug"          gorm:"uniqueIndex;not null"`
	Content       string     `json:"content"       gorm:"type:longtext;not null"`
	Excerpt       string     `json:"excerpt"       gorm:"type:varchar(200);not null"`
	AuthorID      string     `json:"authorId"      gorm:"index;not null"`
	Author        *UserModel `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags          []PostTag  `json:"tags"          gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	FeaturedImage string     `json:"featuredImage"`
	IsPublished   bool       `json:"isPublished"   gorm:"default:true;index"`
	PublishedAt   time.Time  `json:"publishedAt"`
	ViewCount     int        `json:"viewCount"     gorm:"default:0"`
}

func (PostModel) TableName() string { return "posts" }

// PostTag is a tag embedded in a post. Tags have no lifecycle of their
// own: they are created and deleted with their parent post. Position
// preserves the order the author assigned them in.
type PostTag struct {
	ID       uint    `json:"-"    gorm:"primaryKey;autoIncrement"`
	PostID   string  `json:"-"    gorm:"index;not null"`
	Name     string  `json:"name" gorm:"not null"`
	Type     TagType `json:"type" gorm:"index;not null"`
	Position int     `json:"-"    gorm:"default:0"`
}

func (PostTag) TableName() string { return "post_tags" }
