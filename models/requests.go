package models

import "time"

// Request payloads for the bilingual creation pipeline. Each language tree
// carries the same entity kinds; items are matched across languages by their
// order key (sections, toc, faq, related) or slug (categories, tags).

type SectionRequest struct {
	SectionOrder int    `json:"section_order" validate:"required,gt=0"`
	Heading      string `json:"heading"`
	Body         string `json:"body"`
	SectionType  string `json:"section_type" validate:"omitempty,oneof=text code image video quote"`
}

type CategoryRequest struct {
	Slug        string `json:"slug" validate:"required,max=255"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TagRequest struct {
	Slug string `json:"slug" validate:"required,max=255"`
	Name string `json:"name"`
}

type TocRequest struct {
	TocOrder int    `json:"toc_order" validate:"required,gt=0"`
	Heading  string `json:"heading"`
}

type FaqRequest struct {
	FaqOrder int    `json:"faq_order" validate:"required,gt=0"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	// SectionOrder references a content section of the same request by its
	// order key. 0 means "attach to the first section".
	SectionOrder int `json:"section_order" validate:"omitempty,gt=0"`
}

type RelatedPostRequest struct {
	RelevanceOrder int    `json:"relevance_order" validate:"required,gt=0"`
	Title          string `json:"title"`
	Slug           string `json:"slug" validate:"required,max=255"`
}

// LanguageContent is one language's sub-tree of a creation request.
type LanguageContent struct {
	ContentSections []SectionRequest     `json:"content_sections" validate:"dive"`
	Categories      []CategoryRequest    `json:"categories" validate:"dive"`
	Tags            []TagRequest         `json:"tags" validate:"dive"`
	TableOfContents []TocRequest         `json:"table_of_contents" validate:"dive"`
	FaqItems        []FaqRequest         `json:"faq_items" validate:"dive"`
	RelatedPosts    []RelatedPostRequest `json:"related_posts" validate:"dive"`
}

type CreatePostRequest struct {
	Slug             string     `json:"slug" validate:"required,max=255"`
	TitleAr          string     `json:"title_ar" validate:"required"`
	TitleEn          string     `json:"title_en" validate:"required"`
	SummaryAr        string     `json:"summary_ar"`
	SummaryEn        string     `json:"summary_en"`
	FeaturedImageURL string     `json:"featured_image_url" validate:"omitempty,url"`
	Status           string     `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishAt        *time.Time `json:"publish_at"`

	Ar LanguageContent `json:"ar"`
	En LanguageContent `json:"en"`
}

type FeatureRequest struct {
	FeatureOrder int    `json:"feature_order" validate:"required,gt=0"`
	Name         string `json:"name"`
}

// PropertyLanguageContent is the lesser language tree used by listings.
type PropertyLanguageContent struct {
	Description string           `json:"description"`
	Features    []FeatureRequest `json:"features" validate:"dive"`
}

type CreatePropertyRequest struct {
	Slug             string   `json:"slug" validate:"required,max=255"`
	TitleAr          string   `json:"title_ar" validate:"required"`
	TitleEn          string   `json:"title_en" validate:"required"`
	PropertyType     string   `json:"property_type" validate:"required"`
	Status           string   `json:"status" validate:"omitempty,oneof=available sold rented"`
	Price            float64  `json:"price" validate:"gte=0"`
	Currency         string   `json:"currency" validate:"omitempty,len=3"`
	City             string   `json:"city"`
	District         string   `json:"district"`
	Bedrooms         int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms        int      `json:"bathrooms" validate:"gte=0"`
	AreaSqm          float64  `json:"area_sqm" validate:"gte=0"`
	FeaturedImageURL string   `json:"featured_image_url" validate:"omitempty,url"`
	Amenities        []string `json:"amenities"`

	Ar PropertyLanguageContent `json:"ar"`
	En PropertyLanguageContent `json:"en"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
