package repositories

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"aqarpress/models"
)

func newPropertyRepo(t *testing.T) (*GormPropertyRepository, *gorm.DB) {
	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.Property{}, &models.PropertyFeature{}))
	return NewPropertyRepository(db, zap.NewNop()), db
}

func TestCreatePropertyWithFeatures(t *testing.T) {
	repo, _ := newPropertyRepo(t)
	ctx := context.Background()

	req := &models.CreatePropertyRequest{
		Slug:         "villa-al-narjis",
		TitleAr:      "فيلا في النرجس",
		TitleEn:      "Villa in Al Narjis",
		PropertyType: "villa",
		Price:        2500000,
		City:         "Riyadh",
		Bedrooms:     5,
		Amenities:    []string{"pool", "garage"},
		Ar: models.PropertyLanguageContent{
			Description: "وصف الفيلا",
			Features:    []models.FeatureRequest{{FeatureOrder: 1, Name: "مسبح خاص"}},
		},
		En: models.PropertyLanguageContent{
			Features: []models.FeatureRequest{
				{FeatureOrder: 1, Name: "Private pool"},
				{FeatureOrder: 2, Name: "Smart home"},
			},
		},
	}

	id, err := repo.Create(ctx, req, 2)
	require.NoError(t, err)
	require.NotZero(t, id)

	property, err := repo.GetBySlug(ctx, "villa-al-narjis")
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusAvailable, property.Status)
	require.NotNil(t, property.DescriptionAr)
	assert.Nil(t, property.DescriptionEn)

	var amenities []string
	require.NoError(t, json.Unmarshal(property.Amenities, &amenities))
	assert.Equal(t, []string{"pool", "garage"}, amenities)

	require.Len(t, property.Features, 2)
	assert.Equal(t, "مسبح خاص", *property.Features[0].NameAr)
	assert.Equal(t, "Private pool", *property.Features[0].NameEn)
	assert.Nil(t, property.Features[1].NameAr)
	assert.Equal(t, "Smart home", *property.Features[1].NameEn)
}

func TestCreatePropertyDuplicateSlug(t *testing.T) {
	repo, _ := newPropertyRepo(t)
	ctx := context.Background()

	req := &models.CreatePropertyRequest{
		Slug: "apartment-jeddah", TitleAr: "شقة", TitleEn: "Apartment", PropertyType: "apartment",
	}
	_, err := repo.Create(ctx, req, 1)
	require.NoError(t, err)

	_, err = repo.Create(ctx, req, 1)
	require.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestListPropertiesFilters(t *testing.T) {
	repo, _ := newPropertyRepo(t)
	ctx := context.Background()

	seed := []models.CreatePropertyRequest{
		{Slug: "villa-riyadh", TitleAr: "فيلا", TitleEn: "Villa", PropertyType: "villa", City: "Riyadh", Price: 2000000},
		{Slug: "flat-riyadh", TitleAr: "شقة", TitleEn: "Flat", PropertyType: "apartment", City: "Riyadh", Price: 600000},
		{Slug: "villa-jeddah", TitleAr: "فيلا", TitleEn: "Villa", PropertyType: "villa", City: "Jeddah", Price: 1800000},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i], 1)
		require.NoError(t, err)
	}

	villas, total, err := repo.List(ctx, models.PropertyFilter{PropertyType: "villa"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, villas, 2)

	riyadh, total, err := repo.List(ctx, models.PropertyFilter{City: "Riyadh", MinPrice: 1000000}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, riyadh, 1)
	assert.Equal(t, "villa-riyadh", riyadh[0].Slug)
}

func TestDeletePropertyNotFound(t *testing.T) {
	repo, _ := newPropertyRepo(t)
	require.ErrorIs(t, repo.Delete(context.Background(), 777), ErrNotFound)
}
