package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"aqarpress/models"
	"aqarpress/repositories"
	"aqarpress/translations"
)

// PropertyService orchestrates listing creation, the lesser form of the
// bilingual pipeline.
type PropertyService struct {
	repo     repositories.PropertyRepository
	validate *validator.Validate
	log      *zap.Logger
}

func NewPropertyService(repo repositories.PropertyRepository, log *zap.Logger) *PropertyService {
	return &PropertyService{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

func (s *PropertyService) CreateProperty(ctx context.Context, req *models.CreatePropertyRequest, authorID uint) (uint, error) {
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return 0, fmt.Errorf("%w: field %s failed %q validation", ErrInvalidRequest, first.Namespace(), first.Tag())
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !slugPattern.MatchString(req.Slug) {
		return 0, fmt.Errorf("%w: slug %q must be lowercase-kebab", ErrInvalidRequest, req.Slug)
	}
	if _, ok := translations.PropertyType(req.PropertyType); !ok {
		return 0, fmt.Errorf("%w: unknown property type %q", ErrInvalidRequest, req.PropertyType)
	}

	id, err := s.repo.Create(ctx, req, authorID)
	if err != nil {
		return 0, fmt.Errorf("creating property %q: %w", req.Slug, err)
	}

	s.log.Info("property created",
		zap.Uint("property_id", id),
		zap.String("slug", req.Slug),
		zap.Uint("author_id", authorID))
	return id, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, slug string) (*models.Property, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *PropertyService) ListProperties(ctx context.Context, filter models.PropertyFilter, page, perPage int) ([]models.Property, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.repo.List(ctx, filter, perPage, (page-1)*perPage)
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
