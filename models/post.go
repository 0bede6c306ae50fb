package models

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

const (
	SectionTypeText  = "text"
	SectionTypeCode  = "code"
	SectionTypeImage = "image"
	SectionTypeVideo = "video"
	SectionTypeQuote = "quote"
)

// Post is the root aggregate of a bilingual blog entry. One row holds both
// language variants; optional variant columns stay NULL when a language was
// not supplied.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug             string     `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	TitleAr          string     `json:"title_ar" gorm:"not null"`
	TitleEn          string     `json:"title_en" gorm:"not null"`
	SummaryAr        *string    `json:"summary_ar,omitempty" gorm:"type:text"`
	SummaryEn        *string    `json:"summary_en,omitempty" gorm:"type:text"`
	FeaturedImageURL *string    `json:"featured_image_url,omitempty"`
	Status           string     `json:"status" gorm:"index;default:'draft'"`
	PublishAt        *time.Time `json:"publish_at,omitempty" gorm:"index"`
	AuthorID         uint       `json:"author_id" gorm:"index;not null"`

	ContentSections []ContentSection `json:"content_sections,omitempty" gorm:"foreignKey:PostID"`
	TableOfContents []TableOfContent `json:"table_of_contents,omitempty" gorm:"foreignKey:PostID"`
	RelatedPosts    []RelatedPost    `json:"related_posts,omitempty" gorm:"foreignKey:PostID"`
	Categories      []Category       `json:"categories,omitempty" gorm:"many2many:post_categories"`
	Tags            []Tag            `json:"tags,omitempty" gorm:"many2many:post_tags"`
}

func (Post) TableName() string { return "posts" }

// ContentSection is one ordered body block of a post. A single row carries
// both language variants for its section order.
type ContentSection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PostID       uint    `json:"post_id" gorm:"not null;uniqueIndex:idx_content_sections_post_order"`
	SectionOrder int     `json:"section_order" gorm:"not null;uniqueIndex:idx_content_sections_post_order"`
	HeadingAr    *string `json:"heading_ar,omitempty"`
	HeadingEn    *string `json:"heading_en,omitempty"`
	BodyAr       *string `json:"body_ar,omitempty" gorm:"type:text"`
	BodyEn       *string `json:"body_en,omitempty" gorm:"type:text"`
	SectionType  string  `json:"section_type" gorm:"default:'text'"`

	FaqItems []FaqItem `json:"faq_items,omitempty" gorm:"foreignKey:ContentSectionID"`
}

func (ContentSection) TableName() string { return "content_sections" }

// TableOfContent is one ordered heading of a post's table of contents.
type TableOfContent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PostID    uint    `json:"post_id" gorm:"index;not null"`
	TocOrder  int     `json:"toc_order" gorm:"not null"`
	HeadingAr *string `json:"heading_ar,omitempty"`
	HeadingEn *string `json:"heading_en,omitempty"`
}

func (TableOfContent) TableName() string { return "table_of_contents" }

// FaqItem belongs to a content section, not directly to the post.
type FaqItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ContentSectionID uint    `json:"content_section_id" gorm:"index;not null"`
	FaqOrder         int     `json:"faq_order" gorm:"not null"`
	QuestionAr       *string `json:"question_ar,omitempty" gorm:"type:text"`
	QuestionEn       *string `json:"question_en,omitempty" gorm:"type:text"`
	AnswerAr         *string `json:"answer_ar,omitempty" gorm:"type:text"`
	AnswerEn         *string `json:"answer_en,omitempty" gorm:"type:text"`
}

func (FaqItem) TableName() string { return "faq_items" }

// RelatedPost points at another post by slug. The slug is language
// independent; only the display title is bilingual.
type RelatedPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PostID             uint    `json:"post_id" gorm:"index;not null"`
	RelatedPostTitleAr *string `json:"related_post_title_ar,omitempty"`
	RelatedPostTitleEn *string `json:"related_post_title_en,omitempty"`
	RelatedPostSlug    string  `json:"related_post_slug" gorm:"size:255;not null"`
	RelevanceOrder     int     `json:"relevance_order" gorm:"not null"`
}

func (RelatedPost) TableName() string { return "related_posts" }
