package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"aqarpress/models"
	"aqarpress/repositories"
)

// ErrInvalidRequest marks a structurally invalid request. It is detected
// before any write, so a failing request never opens a transaction.
var ErrInvalidRequest = errors.New("invalid request")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// PostService is the creation orchestrator: validate, then hand the request
// to the transactional writer behind the repository port.
type PostService struct {
	repo     repositories.PostRepository
	validate *validator.Validate
	log      *zap.Logger
}

func NewPostService(repo repositories.PostRepository, log *zap.Logger) *PostService {
	return &PostService{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

// CreatePost validates the request and persists the merged bilingual graph.
// Returns the new post id.
func (s *PostService) CreatePost(ctx context.Context, req *models.CreatePostRequest, authorID uint) (uint, error) {
	if err := s.validateRequest(req); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, req, authorID)
	if err != nil {
		return 0, fmt.Errorf("creating post %q: %w", req.Slug, err)
	}

	s.log.Info("post created",
		zap.Uint("post_id", id),
		zap.String("slug", req.Slug),
		zap.Uint("author_id", authorID))
	return id, nil
}

func (s *PostService) validateRequest(req *models.CreatePostRequest) error {
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return fmt.Errorf("%w: field %s failed %q validation", ErrInvalidRequest, first.Namespace(), first.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !slugPattern.MatchString(req.Slug) {
		return fmt.Errorf("%w: slug %q must be lowercase-kebab", ErrInvalidRequest, req.Slug)
	}
	for _, category := range append(req.Ar.Categories, req.En.Categories...) {
		if !slugPattern.MatchString(category.Slug) {
			return fmt.Errorf("%w: category slug %q must be lowercase-kebab", ErrInvalidRequest, category.Slug)
		}
	}
	for _, tag := range append(req.Ar.Tags, req.En.Tags...) {
		if !slugPattern.MatchString(tag.Slug) {
			return fmt.Errorf("%w: tag slug %q must be lowercase-kebab", ErrInvalidRequest, tag.Slug)
		}
	}
	return nil
}

func (s *PostService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *PostService) ListPosts(ctx context.Context, status string, page, perPage int) ([]models.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.repo.List(ctx, status, perPage, (page-1)*perPage)
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
