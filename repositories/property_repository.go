package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"aqarpress/models"
)

// GormPropertyRepository persists listings. Create is the lesser form of
// the post pipeline: the listing row plus its merged bilingual feature rows
// are written in one transaction.
type GormPropertyRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPropertyRepository(db *gorm.DB, log *zap.Logger) *GormPropertyRepository {
	return &GormPropertyRepository{db: db, log: log}
}

func (r *GormPropertyRepository) Create(ctx context.Context, req *models.CreatePropertyRequest, authorID uint) (uint, error) {
	var propertyID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		property := models.Property{
			Slug:             req.Slug,
			TitleAr:          req.TitleAr,
			TitleEn:          req.TitleEn,
			DescriptionAr:    nullable(req.Ar.Description),
			DescriptionEn:    nullable(req.En.Description),
			PropertyType:     req.PropertyType,
			Status:           req.Status,
			Price:            req.Price,
			Currency:         req.Currency,
			City:             req.City,
			District:         req.District,
			Bedrooms:         req.Bedrooms,
			Bathrooms:        req.Bathrooms,
			AreaSqm:          req.AreaSqm,
			FeaturedImageURL: nullable(req.FeaturedImageURL),
			AuthorID:         authorID,
		}
		if property.Status == "" {
			property.Status = models.PropertyStatusAvailable
		}
		if len(req.Amenities) > 0 {
			raw, err := json.Marshal(req.Amenities)
			if err != nil {
				return fmt.Errorf("encoding amenities: %w", err)
			}
			property.Amenities = raw
		}
		if err := tx.Create(&property).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("property slug %q: %w", req.Slug, ErrDuplicateSlug)
			}
			return fmt.Errorf("inserting property: %w", err)
		}
		propertyID = property.ID

		features := models.MergePropertyFeatures(req.Ar.Features, req.En.Features)
		if len(features) == 0 {
			return nil
		}
		for i := range features {
			features[i].PropertyID = property.ID
		}
		if err := tx.Create(&features).Error; err != nil {
			return fmt.Errorf("property %d: inserting features: %w", property.ID, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.log.Info("property committed", zap.Uint("property_id", propertyID), zap.String("slug", req.Slug))
	return propertyID, nil
}

func (r *GormPropertyRepository) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("feature_order") }).
		Where("slug = ?", slug).
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *GormPropertyRepository) List(ctx context.Context, filter models.PropertyFilter, limit, offset int) ([]models.Property, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Property{})
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []models.Property
	err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&properties).Error
	return properties, total, err
}

func (r *GormPropertyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
