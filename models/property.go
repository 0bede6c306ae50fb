package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
)

// Property is a bilingual real-estate listing. It runs through a lesser form
// of the post pipeline: the listing row plus its merged bilingual feature
// rows are written in one transaction.
type Property struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug          string  `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	TitleAr       string  `json:"title_ar" gorm:"not null"`
	TitleEn       string  `json:"title_en" gorm:"not null"`
	DescriptionAr *string `json:"description_ar,omitempty" gorm:"type:text"`
	DescriptionEn *string `json:"description_en,omitempty" gorm:"type:text"`

	PropertyType string  `json:"property_type" gorm:"index;not null"`
	Status       string  `json:"status" gorm:"index;default:'available'"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency" gorm:"size:8;default:'SAR'"`
	City         string  `json:"city" gorm:"index"`
	District     string  `json:"district,omitempty"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	AreaSqm      float64 `json:"area_sqm"`

	FeaturedImageURL *string        `json:"featured_image_url,omitempty"`
	Amenities        datatypes.JSON `json:"amenities,omitempty" gorm:"type:jsonb"`
	AuthorID         uint           `json:"author_id" gorm:"index;not null"`

	Features []PropertyFeature `json:"features,omitempty" gorm:"foreignKey:PropertyID"`
}

func (Property) TableName() string { return "properties" }

// PropertyFeature is one ordered bilingual selling point of a listing.
type PropertyFeature struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PropertyID   uint    `json:"property_id" gorm:"not null;uniqueIndex:idx_property_features_order"`
	FeatureOrder int     `json:"feature_order" gorm:"not null;uniqueIndex:idx_property_features_order"`
	NameAr       *string `json:"name_ar,omitempty"`
	NameEn       *string `json:"name_en,omitempty"`
}

func (PropertyFeature) TableName() string { return "property_features" }

// PropertyFilter narrows listing queries. Zero values mean "any".
type PropertyFilter struct {
	City         string
	PropertyType string
	Status       string
	MinPrice     float64
	MaxPrice     float64
}
