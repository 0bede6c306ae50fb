package models

import "time"

// Category is slug-keyed and shared across the whole corpus: two posts that
// use the same slug reference the same row, each language filling in its own
// name/description columns over time.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug          string  `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	NameAr        *string `json:"name_ar,omitempty"`
	NameEn        *string `json:"name_en,omitempty"`
	DescriptionAr *string `json:"description_ar,omitempty" gorm:"type:text"`
	DescriptionEn *string `json:"description_en,omitempty" gorm:"type:text"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_categories"`
}

func (Category) TableName() string { return "categories" }

// Tag works like Category minus the description columns.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug   string  `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	NameAr *string `json:"name_ar,omitempty"`
	NameEn *string `json:"name_en,omitempty"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags"`
}

func (Tag) TableName() string { return "tags" }

// PostCategory is the join row written explicitly by the transactional
// writer. The composite primary key makes re-links idempotent.
type PostCategory struct {
	PostID     uint `json:"post_id" gorm:"primaryKey"`
	CategoryID uint `json:"category_id" gorm:"primaryKey"`
}

func (PostCategory) TableName() string { return "post_categories" }

type PostTag struct {
	PostID uint `json:"post_id" gorm:"primaryKey"`
	TagID  uint `json:"tag_id" gorm:"primaryKey"`
}

func (PostTag) TableName() string { return "post_tags" }
